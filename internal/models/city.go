package models

// City belongs to a country; (city_name, country_code) is unique.
type City struct {
	Base
	CityName    string `json:"city_name" db:"city_name"`
	CountryCode string `json:"country_code" db:"country_code"`
}

func (*City) TableName() string { return "cities" }
