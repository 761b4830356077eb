package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// InvalidOrder is returned by DateOrder for tags it cannot interpret.
// Callers check for it before using the result.
const InvalidOrder = "-1"

// Date field orders returned by DateOrder.
const (
	OrderYMD = "y-M-d"
	OrderMDY = "M-d-y"
	OrderDMY = "d-M-y"
)

var (
	ymdLanguages = map[string]bool{
		"zh": true, "ja": true, "ko": true, "hu": true, "lt": true,
		"mn": true, "fa": true, "ug": true, "bo": true, "ii": true,
	}
	mdyRegions = map[string]bool{
		"US": true, "PH": true, "FM": true, "MH": true, "PW": true, "GU": true,
		"AS": true, "MP": true, "PR": true, "VI": true, "UM": true,
	}
	ymdRegions = map[string]bool{"CA": true, "ZA": true, "SE": true}
)

// DateOrder reports the conventional order of year, month and day columns
// for a locale tag, or InvalidOrder when the tag does not parse.
func DateOrder(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return InvalidOrder
	}
	t, err := language.Parse(tag)
	if err != nil || t == language.Und {
		return InvalidOrder
	}
	base, _ := t.Base()
	region, _ := t.Region()
	switch {
	case ymdLanguages[base.String()]:
		return OrderYMD
	case ymdRegions[region.String()] && base.String() != "fr":
		return OrderYMD
	case mdyRegions[region.String()]:
		return OrderMDY
	default:
		return OrderDMY
	}
}

// FieldIndices splits an order into the column positions of year, month
// and day. ok is false for InvalidOrder or malformed input.
func FieldIndices(order string) (year, month, day int, ok bool) {
	parts := strings.Split(order, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, month, day = -1, -1, -1
	for i, p := range parts {
		switch p {
		case "y":
			year = i
		case "M":
			month = i
		case "d":
			day = i
		}
	}
	ok = year >= 0 && month >= 0 && day >= 0
	return year, month, day, ok
}
