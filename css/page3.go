package css

// marginBoxKeywords are the sixteen margin-box at-rule names defined by
// the Paged Media 3 module (§4.6): each names one of the margins around
// the page box's content area.
var marginBoxKeywords = map[string]bool{
	"@top-left-corner":     true,
	"@top-left":            true,
	"@top-center":          true,
	"@top-right":           true,
	"@top-right-corner":    true,
	"@bottom-left-corner":  true,
	"@bottom-left":         true,
	"@bottom-center":       true,
	"@bottom-right":        true,
	"@bottom-right-corner": true,
	"@left-top":            true,
	"@left-middle":         true,
	"@left-bottom":         true,
	"@right-top":           true,
	"@right-middle":        true,
	"@right-bottom":        true,
}

func isMarginBoxKeyword(keyword string) bool {
	return marginBoxKeywords[keyword]
}

// parsePageSelectorPage3 extends the CSS 2.1 @page selector with an
// optional leading page name (§4.6): [IDENT] [S* ':' IDENT]. Whitespace
// is tolerated around the page name but never between ':' and the
// pseudo-class identifier, matching the CSS 2.1 grammar's own strictness
// there.
func parsePageSelectorPage3(head []Node) (PageSelector, [4]int, *ParseError) {
	i := 0
	var name string
	if i < len(head) {
		if t, ok := head[i].(Token); ok && t.Type == IDENT {
			name = t.Value.Text()
			i++
		}
	}
	for i < len(head) && typeOf(head[i]) == S {
		i++
	}

	nameBit := 0
	if name != "" {
		nameBit = 1
	}

	if i >= len(head) {
		return PageSelector{Name: name}, [4]int{nameBit, 0, 0, 0}, nil
	}

	if typeOf(head[i]) != COLON {
		return PageSelector{}, [4]int{}, invalidPageSelector(head)
	}
	i++
	if i >= len(head) {
		return PageSelector{}, [4]int{}, invalidPageSelector(head)
	}
	t, ok := head[i].(Token)
	if !ok || t.Type != IDENT {
		return PageSelector{}, [4]int{}, invalidPageSelector(head)
	}
	pseudo := t.Value.Text()
	var pseudoBits [4]int
	switch pseudo {
	case "first":
		pseudoBits = [4]int{nameBit, 0, 1, 0}
	case "left", "right":
		pseudoBits = [4]int{nameBit, 0, 0, 1}
	default:
		return PageSelector{}, [4]int{}, invalidPageSelector(head)
	}
	i++
	for i < len(head) && typeOf(head[i]) == S {
		i++
	}
	if i != len(head) {
		return PageSelector{}, [4]int{}, invalidPageSelector(head)
	}
	return PageSelector{Name: name, Pseudo: pseudo}, pseudoBits, nil
}

func invalidPageSelector(head []Node) *ParseError {
	if len(head) == 0 {
		return newError(1, 1, "invalid @page selector")
	}
	return newErrorAt(head[0], "invalid @page selector")
}
