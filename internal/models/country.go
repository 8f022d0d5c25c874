package models

// Country is an ISO 3166 country registered locally. Code is the primary key.
type Country struct {
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

func (*Country) TableName() string { return "countries" }

func (c *Country) Key() map[string]any {
	return map[string]any{"code": c.Code}
}
