package dwgsvg

import "strings"

// fontEntry is one row of the fixed family/cap-height table (§4.3).
type fontEntry struct {
	substr        string
	family        string
	capHeightRatio float64
}

// fontTable is checked in order; the first case-insensitive substring
// match wins.
var fontTable = []fontEntry{
	{"arial", "Arial", 0.716},
	{"times", "Times New Roman", 0.662},
	{"swissek", "Swis721 BlkEx BT, Helvetica, Arial", 0.716},
	{"swiss", "Swis721 BT, Helvetica, Arial", 0.716},
	{"lucon", "Lucida Console", 0.692},
}

const defaultTTFFamily = "Verdana"
const defaultTTFCapHeight = 0.727
const defaultFallbackFamily = "Courier"
const defaultFallbackCapHeight = 0.616

// resolveFont maps a STYLE's font_file to an SVG font family and cap
// height ratio (§4.3).
func resolveFont(fontFile, override string) (family string, capHeightRatio float64) {
	fallbackFamily := defaultFallbackFamily
	if override != "" {
		fallbackFamily = override
	}

	lower := strings.ToLower(fontFile)
	for _, e := range fontTable {
		if strings.Contains(lower, e.substr) {
			return e.family, e.capHeightRatio
		}
	}
	if fontFile == "" || strings.HasSuffix(lower, ".shx") {
		return fallbackFamily, defaultFallbackCapHeight
	}
	if strings.HasSuffix(lower, ".ttf") {
		return defaultTTFFamily, defaultTTFCapHeight
	}
	return fallbackFamily, defaultFallbackCapHeight
}

// fontSize converts a DWG text height (capital-letter height) into an
// SVG font-size (em height).
func fontSize(textHeight, capHeightRatio float64) float64 {
	return textHeight / capHeightRatio
}
