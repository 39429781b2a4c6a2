package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value looks like #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color of a palette. Field names are
// reported as prefix.name.
func ValidatePaletteHex(prefix string, colors map[string]string) []string {
	var errs []string
	for _, name := range sortedKeys(colors) {
		if !IsHexColor(colors[name]) {
			errs = append(errs, prefix+"."+name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
