package models

// Place is a listing hosted by a user in a city.
type Place struct {
	Base
	Name          string  `json:"name" db:"name"`
	Description   string  `json:"description" db:"description"`
	Address       string  `json:"address" db:"address"`
	Latitude      float64 `json:"latitude" db:"latitude"`
	Longitude     float64 `json:"longitude" db:"longitude"`
	NumRooms      int     `json:"num_rooms" db:"num_rooms"`
	NumBathrooms  int     `json:"num_bathrooms" db:"num_bathrooms"`
	PricePerNight float64 `json:"price_per_night" db:"price_per_night"`
	MaxGuests     int     `json:"max_guests" db:"max_guests"`
	HostID        string  `json:"host_id" db:"host_id"`
	CityID        string  `json:"city_id" db:"city_id"`
}

func (*Place) TableName() string { return "places" }
