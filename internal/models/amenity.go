package models

// Amenity is a named facility a place can offer. Names are unique.
type Amenity struct {
	Base
	Name string `json:"name" db:"name"`
}

func (*Amenity) TableName() string { return "amenities" }

// PlaceAmenity links a place to an amenity.
type PlaceAmenity struct {
	PlaceID   string `json:"place_id" db:"place_id"`
	AmenityID string `json:"amenity_id" db:"amenity_id"`
}

func (*PlaceAmenity) TableName() string { return "place_amenities" }

func (pa *PlaceAmenity) Key() map[string]any {
	return map[string]any{"place_id": pa.PlaceID, "amenity_id": pa.AmenityID}
}
