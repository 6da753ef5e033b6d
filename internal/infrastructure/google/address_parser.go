package google

import "github.com/listing-service/internal/domain"

// componentFields - поле адреса по первому типу компонента
var componentFields = map[string]string{
	"street_number":               "street_no",
	"street_address":              "street",
	"route":                       "street",
	"administrative_area_level_1": "region",
	"administrative_area_level_2": "region",
	"administrative_area_level_3": "region",
	"administrative_area_level_4": "region",
	"administrative_area_level_5": "region",
	"locality":                    "city",
	"sublocality":                 "city",
	"sublocality_level_1":         "city",
	"sublocality_level_2":         "city",
	"sublocality_level_3":         "city",
	"sublocality_level_4":         "city",
	"country":                     "country",
	"postal_code":                 "postcode",
}

// ParseAddressComponents раскладывает компоненты по полям адреса.
// Учитывается только первый тип компонента; более поздний компонент
// перезаписывает более ранний для того же поля. Страна берется в short_name.
func ParseAddressComponents(components []AddressComponent) domain.AddressComponents {
	var out domain.AddressComponents

	for _, c := range components {
		if len(c.Types) == 0 {
			continue
		}
		switch componentFields[c.Types[0]] {
		case "street_no":
			out.StreetNo = c.LongName
		case "street":
			out.Street = c.LongName
		case "region":
			out.Region = c.LongName
		case "city":
			out.City = c.LongName
		case "country":
			out.Country = c.ShortName
		case "postcode":
			out.Postcode = c.LongName
		}
	}

	return out
}
