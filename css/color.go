package css

import "regexp"

// Color is a parsed CSS 3 color value (§4.7): R, G, B, A each in [0, 1].
// Special keywords ("transparent", "currentColor") are represented as
// ordinary RGBA values except CurrentColor, which carries no fixed color
// at all and must be resolved by the caller against the element it
// applies to.
type Color struct {
	R, G, B, A float64
	// CurrentColor is true for the "currentColor" keyword: R/G/B/A are
	// meaningless and the caller must substitute the used value of the
	// "color" property instead.
	CurrentColor bool
}

var (
	hashShortRe = regexp.MustCompile(`(?i)^#([0-9a-f])([0-9a-f])([0-9a-f])$`)
	hashLongRe  = regexp.MustCompile(`(?i)^#([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
)

// ParseColorString tokenizes css and parses it as a single color value
// (§4.7 parse_color_string): nil if it isn't exactly one token, or that
// token isn't a valid color.
func ParseColorString(css string) *Color {
	tokens := Regroup(TokenizeFlat(trimSpace(css), true))
	if len(tokens) != 1 {
		return nil
	}
	return ParseColor(tokens[0])
}

// ParseColor parses a single token as a color value (§4.7 parse_color):
// an IDENT color keyword or a '#' HASH in 3- or 6-digit hex form. nil if
// token isn't a valid color.
func ParseColor(token Node) *Color {
	t, ok := token.(Token)
	if !ok {
		return nil
	}
	switch t.Type {
	case IDENT:
		if c, found := colorKeywords[lowerASCII(t.Value.Text())]; found {
			return &c
		}
	case HASH:
		// HASH's decoded value already includes the leading '#'.
		hash := t.Value.Text()
		if m := hashShortRe.FindStringSubmatch(hash); m != nil {
			return &Color{
				R: hexPairValue(m[1] + m[1]),
				G: hexPairValue(m[2] + m[2]),
				B: hexPairValue(m[3] + m[3]),
				A: 1,
			}
		}
		if m := hashLongRe.FindStringSubmatch(hash); m != nil {
			return &Color{
				R: hexPairValue(m[1]),
				G: hexPairValue(m[2]),
				B: hexPairValue(m[3]),
				A: 1,
			}
		}
	}
	return nil
}

func hexPairValue(s string) float64 {
	v := 0
	for _, r := range s {
		v *= 16
		switch {
		case r >= '0' && r <= '9':
			v += int(r - '0')
		case r >= 'a' && r <= 'f':
			v += int(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v += int(r-'A') + 10
		}
	}
	return float64(v) / 255.
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func rgb255(r, g, b int) Color {
	return Color{R: float64(r) / 255., G: float64(g) / 255., B: float64(b) / 255., A: 1}
}

// colorKeywords is the full CSS 3 keyword table (§4.7): 16 basic + 147
// extended SVG color names, plus the two specials "transparent" and
// "currentColor".
var colorKeywords = buildColorKeywords()

func buildColorKeywords() map[string]Color {
	m := map[string]Color{
		"transparent": {R: 0, G: 0, B: 0, A: 0},
		"currentcolor": {CurrentColor: true},
	}
	basic := [][2]any{
		{"black", [3]int{0, 0, 0}}, {"silver", [3]int{192, 192, 192}},
		{"gray", [3]int{128, 128, 128}}, {"white", [3]int{255, 255, 255}},
		{"maroon", [3]int{128, 0, 0}}, {"red", [3]int{255, 0, 0}},
		{"purple", [3]int{128, 0, 128}}, {"fuchsia", [3]int{255, 0, 255}},
		{"green", [3]int{0, 128, 0}}, {"lime", [3]int{0, 255, 0}},
		{"olive", [3]int{128, 128, 0}}, {"yellow", [3]int{255, 255, 0}},
		{"navy", [3]int{0, 0, 128}}, {"blue", [3]int{0, 0, 255}},
		{"teal", [3]int{0, 128, 128}}, {"aqua", [3]int{0, 255, 255}},
	}
	extended := [][2]any{
		{"aliceblue", [3]int{240, 248, 255}}, {"antiquewhite", [3]int{250, 235, 215}},
		{"aqua", [3]int{0, 255, 255}}, {"aquamarine", [3]int{127, 255, 212}},
		{"azure", [3]int{240, 255, 255}}, {"beige", [3]int{245, 245, 220}},
		{"bisque", [3]int{255, 228, 196}}, {"black", [3]int{0, 0, 0}},
		{"blanchedalmond", [3]int{255, 235, 205}}, {"blue", [3]int{0, 0, 255}},
		{"blueviolet", [3]int{138, 43, 226}}, {"brown", [3]int{165, 42, 42}},
		{"burlywood", [3]int{222, 184, 135}}, {"cadetblue", [3]int{95, 158, 160}},
		{"chartreuse", [3]int{127, 255, 0}}, {"chocolate", [3]int{210, 105, 30}},
		{"coral", [3]int{255, 127, 80}}, {"cornflowerblue", [3]int{100, 149, 237}},
		{"cornsilk", [3]int{255, 248, 220}}, {"crimson", [3]int{220, 20, 60}},
		{"cyan", [3]int{0, 255, 255}}, {"darkblue", [3]int{0, 0, 139}},
		{"darkcyan", [3]int{0, 139, 139}}, {"darkgoldenrod", [3]int{184, 134, 11}},
		{"darkgray", [3]int{169, 169, 169}}, {"darkgreen", [3]int{0, 100, 0}},
		{"darkgrey", [3]int{169, 169, 169}}, {"darkkhaki", [3]int{189, 183, 107}},
		{"darkmagenta", [3]int{139, 0, 139}}, {"darkolivegreen", [3]int{85, 107, 47}},
		{"darkorange", [3]int{255, 140, 0}}, {"darkorchid", [3]int{153, 50, 204}},
		{"darkred", [3]int{139, 0, 0}}, {"darksalmon", [3]int{233, 150, 122}},
		{"darkseagreen", [3]int{143, 188, 143}}, {"darkslateblue", [3]int{72, 61, 139}},
		{"darkslategray", [3]int{47, 79, 79}}, {"darkslategrey", [3]int{47, 79, 79}},
		{"darkturquoise", [3]int{0, 206, 209}}, {"darkviolet", [3]int{148, 0, 211}},
		{"deeppink", [3]int{255, 20, 147}}, {"deepskyblue", [3]int{0, 191, 255}},
		{"dimgray", [3]int{105, 105, 105}}, {"dimgrey", [3]int{105, 105, 105}},
		{"dodgerblue", [3]int{30, 144, 255}}, {"firebrick", [3]int{178, 34, 34}},
		{"floralwhite", [3]int{255, 250, 240}}, {"forestgreen", [3]int{34, 139, 34}},
		{"fuchsia", [3]int{255, 0, 255}}, {"gainsboro", [3]int{220, 220, 220}},
		{"ghostwhite", [3]int{248, 248, 255}}, {"gold", [3]int{255, 215, 0}},
		{"goldenrod", [3]int{218, 165, 32}}, {"gray", [3]int{128, 128, 128}},
		{"green", [3]int{0, 128, 0}}, {"greenyellow", [3]int{173, 255, 47}},
		{"grey", [3]int{128, 128, 128}}, {"honeydew", [3]int{240, 255, 240}},
		{"hotpink", [3]int{255, 105, 180}}, {"indianred", [3]int{205, 92, 92}},
		{"indigo", [3]int{75, 0, 130}}, {"ivory", [3]int{255, 255, 240}},
		{"khaki", [3]int{240, 230, 140}}, {"lavender", [3]int{230, 230, 250}},
		{"lavenderblush", [3]int{255, 240, 245}}, {"lawngreen", [3]int{124, 252, 0}},
		{"lemonchiffon", [3]int{255, 250, 205}}, {"lightblue", [3]int{173, 216, 230}},
		{"lightcoral", [3]int{240, 128, 128}}, {"lightcyan", [3]int{224, 255, 255}},
		{"lightgoldenrodyellow", [3]int{250, 250, 210}}, {"lightgray", [3]int{211, 211, 211}},
		{"lightgreen", [3]int{144, 238, 144}}, {"lightgrey", [3]int{211, 211, 211}},
		{"lightpink", [3]int{255, 182, 193}}, {"lightsalmon", [3]int{255, 160, 122}},
		{"lightseagreen", [3]int{32, 178, 170}}, {"lightskyblue", [3]int{135, 206, 250}},
		{"lightslategray", [3]int{119, 136, 153}}, {"lightslategrey", [3]int{119, 136, 153}},
		{"lightsteelblue", [3]int{176, 196, 222}}, {"lightyellow", [3]int{255, 255, 224}},
		{"lime", [3]int{0, 255, 0}}, {"limegreen", [3]int{50, 205, 50}},
		{"linen", [3]int{250, 240, 230}}, {"magenta", [3]int{255, 0, 255}},
		{"maroon", [3]int{128, 0, 0}}, {"mediumaquamarine", [3]int{102, 205, 170}},
		{"mediumblue", [3]int{0, 0, 205}}, {"mediumorchid", [3]int{186, 85, 211}},
		{"mediumpurple", [3]int{147, 112, 219}}, {"mediumseagreen", [3]int{60, 179, 113}},
		{"mediumslateblue", [3]int{123, 104, 238}}, {"mediumspringgreen", [3]int{0, 250, 154}},
		{"mediumturquoise", [3]int{72, 209, 204}}, {"mediumvioletred", [3]int{199, 21, 133}},
		{"midnightblue", [3]int{25, 25, 112}}, {"mintcream", [3]int{245, 255, 250}},
		{"mistyrose", [3]int{255, 228, 225}}, {"moccasin", [3]int{255, 228, 181}},
		{"navajowhite", [3]int{255, 222, 173}}, {"navy", [3]int{0, 0, 128}},
		{"oldlace", [3]int{253, 245, 230}}, {"olive", [3]int{128, 128, 0}},
		{"olivedrab", [3]int{107, 142, 35}}, {"orange", [3]int{255, 165, 0}},
		{"orangered", [3]int{255, 69, 0}}, {"orchid", [3]int{218, 112, 214}},
		{"palegoldenrod", [3]int{238, 232, 170}}, {"palegreen", [3]int{152, 251, 152}},
		{"paleturquoise", [3]int{175, 238, 238}}, {"palevioletred", [3]int{219, 112, 147}},
		{"papayawhip", [3]int{255, 239, 213}}, {"peachpuff", [3]int{255, 218, 185}},
		{"peru", [3]int{205, 133, 63}}, {"pink", [3]int{255, 192, 203}},
		{"plum", [3]int{221, 160, 221}}, {"powderblue", [3]int{176, 224, 230}},
		{"purple", [3]int{128, 0, 128}}, {"red", [3]int{255, 0, 0}},
		{"rosybrown", [3]int{188, 143, 143}}, {"royalblue", [3]int{65, 105, 225}},
		{"saddlebrown", [3]int{139, 69, 19}}, {"salmon", [3]int{250, 128, 114}},
		{"sandybrown", [3]int{244, 164, 96}}, {"seagreen", [3]int{46, 139, 87}},
		{"seashell", [3]int{255, 245, 238}}, {"sienna", [3]int{160, 82, 45}},
		{"silver", [3]int{192, 192, 192}}, {"skyblue", [3]int{135, 206, 235}},
		{"slateblue", [3]int{106, 90, 205}}, {"slategray", [3]int{112, 128, 144}},
		{"slategrey", [3]int{112, 128, 144}}, {"snow", [3]int{255, 250, 250}},
		{"springgreen", [3]int{0, 255, 127}}, {"steelblue", [3]int{70, 130, 180}},
		{"tan", [3]int{210, 180, 140}}, {"teal", [3]int{0, 128, 128}},
		{"thistle", [3]int{216, 191, 216}}, {"tomato", [3]int{255, 99, 71}},
		{"turquoise", [3]int{64, 224, 208}}, {"violet", [3]int{238, 130, 238}},
		{"wheat", [3]int{245, 222, 179}}, {"white", [3]int{255, 255, 255}},
		{"whitesmoke", [3]int{245, 245, 245}}, {"yellow", [3]int{255, 255, 0}},
		{"yellowgreen", [3]int{154, 205, 50}},
	}
	for _, group := range [][][2]any{basic, extended} {
		for _, entry := range group {
			name := entry[0].(string)
			rgb := entry[1].([3]int)
			m[name] = rgb255(rgb[0], rgb[1], rgb[2])
		}
	}
	return m
}
