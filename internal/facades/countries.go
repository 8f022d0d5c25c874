package facades

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/sbilibin2017/hbnb/internal/models"
)

// Codes CLDR knows as regions that are not ISO 3166-1 countries.
var nonCountryCodes = map[string]struct{}{
	"AC": {}, "CP": {}, "CQ": {}, "DG": {}, "EA": {}, "EU": {}, "EZ": {},
	"IC": {}, "TA": {}, "UN": {},
	// withdrawn codes
	"AN": {}, "BU": {}, "CS": {}, "DD": {}, "FX": {}, "NT": {}, "SU": {},
	"TP": {}, "YD": {}, "YU": {}, "ZR": {},
}

// CountryCatalogue is the read-only ISO 3166-1 alpha-2 reference dataset,
// built from the CLDR data bundled with golang.org/x/text.
type CountryCatalogue struct {
	countries []models.Country
	byCode    map[string]models.Country
}

// NewCountryCatalogue builds the catalogue.
func NewCountryCatalogue() *CountryCatalogue {
	namer := display.English.Regions()
	c := &CountryCatalogue{byCode: make(map[string]models.Country)}

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			if _, skip := nonCountryCodes[code]; skip {
				continue
			}
			region, err := language.ParseRegion(code)
			if err != nil || region.String() != code || !region.IsCountry() || region.IsPrivateUse() {
				continue
			}
			name := namer.Name(region)
			if name == "" {
				continue
			}
			country := models.Country{Name: name, Code: code}
			c.countries = append(c.countries, country)
			c.byCode[code] = country
		}
	}
	return c
}

// List returns every country ordered by code.
func (c *CountryCatalogue) List(ctx context.Context) ([]models.Country, error) {
	out := make([]models.Country, len(c.countries))
	copy(out, c.countries)
	return out, nil
}

// Lookup finds a country by its alpha-2 code, ignoring case. It returns nil
// when the code is unknown.
func (c *CountryCatalogue) Lookup(ctx context.Context, code string) (*models.Country, error) {
	country, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, nil
	}
	return &country, nil
}
