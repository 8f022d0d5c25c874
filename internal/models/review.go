package models

// Review is a user's rating of a place. One review per (user, place).
type Review struct {
	Base
	Rating  int    `json:"rating" db:"rating"` // 1 to 5
	Comment string `json:"comment" db:"comment"`
	UserID  string `json:"user_id" db:"user_id"`
	PlaceID string `json:"place_id" db:"place_id"`
}

func (*Review) TableName() string { return "reviews" }
