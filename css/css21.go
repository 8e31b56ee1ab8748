package css

import (
	"fmt"
	"strings"
)

// ImportRule is a parsed @import (§3).
type ImportRule struct {
	URI    string
	Media  []string
	Line   int
	Column int
}

func (r *ImportRule) Pos() (int, int)  { return r.Line, r.Column }
func (r *ImportRule) AtKeyword() string { return "@import" }
func (r *ImportRule) isStatement()      {}

// Dump renders the import as a single line: its URI and media list.
func (r *ImportRule) Dump() string {
	return fmt.Sprintf("@import %q %s;", r.URI, strings.Join(r.Media, ", "))
}

// MediaRule is a parsed @media, its body recursively parsed as nested
// rules (§3).
type MediaRule struct {
	Media  []string
	Rules  []Statement
	Line   int
	Column int
}

func (r *MediaRule) Pos() (int, int)  { return r.Line, r.Column }
func (r *MediaRule) AtKeyword() string { return "@media" }
func (r *MediaRule) isStatement()      {}

// Dump renders the media list, then each nested rule's Dump indented
// between braces.
func (r *MediaRule) Dump() string {
	lines := []string{"@media " + strings.Join(r.Media, ", "), "{"}
	for _, stmt := range r.Rules {
		lines = append(lines, indentLines(stmt.Dump())...)
	}
	lines = append(lines, "}")
	return joinLines(lines)
}

// PageSelector is a parsed @page selector (§3): Pseudo is "first", "left"
// or "right" under plain CSS 2.1; Name is only ever non-empty when the
// Paged Media 3 extension (WithPage3) is enabled.
type PageSelector struct {
	Name   string
	Pseudo string
}

// PageRule is a parsed @page (§3). Specificity is the four-component
// tuple from §4.6: (page-name present, reserved, :first, :left/:right).
// AtRules is always empty unless WithPage3 is enabled.
type PageRule struct {
	Selector     PageSelector
	Specificity  [4]int
	Declarations []Declaration
	AtRules      []Statement
	Line         int
	Column       int
}

func (r *PageRule) Pos() (int, int)  { return r.Line, r.Column }
func (r *PageRule) AtKeyword() string { return "@page" }
func (r *PageRule) isStatement()      {}

// Dump renders "@page" plus the page name/pseudo-class if present, then
// each declaration and nested margin-box rule indented between braces.
func (r *PageRule) Dump() string {
	header := "@page"
	if r.Selector.Name != "" {
		header += " " + r.Selector.Name
	}
	if r.Selector.Pseudo != "" {
		if r.Selector.Name == "" {
			header += " :" + r.Selector.Pseudo
		} else {
			header += ":" + r.Selector.Pseudo
		}
	}
	lines := []string{header, "{"}
	for _, d := range r.Declarations {
		lines = append(lines, indentLines(d.Dump())...)
	}
	for _, a := range r.AtRules {
		lines = append(lines, indentLines(a.Dump())...)
	}
	lines = append(lines, "}")
	return joinLines(lines)
}

// MarginBoxRule is a parsed margin-box at-rule nested inside @page (§4.6),
// e.g. @top-center. Only reachable when WithPage3 is enabled; under plain
// CSS 2.1 any at-rule inside @page is an "unknown at-rule" error.
type MarginBoxRule struct {
	Keyword      string
	Declarations []Declaration
	Line         int
	Column       int
}

func (r *MarginBoxRule) Pos() (int, int)  { return r.Line, r.Column }
func (r *MarginBoxRule) AtKeyword() string { return r.Keyword }
func (r *MarginBoxRule) isStatement()      {}

// Dump renders the margin-box keyword, then each declaration's Dump
// indented between braces.
func (r *MarginBoxRule) Dump() string {
	lines := []string{r.Keyword, "{"}
	for _, d := range r.Declarations {
		lines = append(lines, indentLines(d.Dump())...)
	}
	lines = append(lines, "}")
	return joinLines(lines)
}

// parseAtRule dispatches an at-rule's unparsed head/body (§4.5) to the
// handler for its keyword: @page, @media, @import and @charset are
// recognized; @charset is always an error here because a legitimate
// @charset only ever appears as the very first four tokens of a
// stylesheet and is stripped before parseRules ever sees it
// (removeAtCharset in parser.go). Everything else is "unknown at-rule",
// except a margin-box keyword nested in a @page block when WithPage3 is
// enabled.
func (p *Parser) parseAtRule(rule *AtRule, previousRules []Statement, errors *[]*ParseError, context string) (Statement, *ParseError) {
	switch rule.Keyword {
	case "@page":
		return p.parsePageRule(rule, context, errors)
	case "@media":
		return p.parseMediaRule(rule, context, errors)
	case "@import":
		return p.parseImportRule(rule, previousRules, context)
	case "@charset":
		return nil, newError(rule.Line, rule.Column, "mis-placed or malformed @charset rule")
	default:
		if context == "@page" && p.page3 && isMarginBoxKeyword(rule.Keyword) {
			return p.parseMarginBoxRule(rule, errors)
		}
		return nil, newError(rule.Line, rule.Column, "unknown at-rule in %s context: %s", context, rule.Keyword)
	}
}

func (p *Parser) parsePageRule(rule *AtRule, context string, errors *[]*ParseError) (Statement, *ParseError) {
	if context != "stylesheet" {
		return nil, newError(rule.Line, rule.Column, "@page rule not allowed in %s", context)
	}
	selector, specificity, err := p.parsePageSelector(rule.Head)
	if err != nil {
		return nil, err
	}
	if rule.Body == nil {
		return nil, newError(rule.Line, rule.Column, "invalid %s rule: missing block", rule.Keyword)
	}
	declarations, atRules := p.parsePageBlock(rule.Body, errors)
	return &PageRule{
		Selector: selector, Specificity: specificity,
		Declarations: declarations, AtRules: atRules,
		Line: rule.Line, Column: rule.Column,
	}, nil
}

func (p *Parser) parseMediaRule(rule *AtRule, context string, errors *[]*ParseError) (Statement, *ParseError) {
	if context != "stylesheet" {
		return nil, newError(rule.Line, rule.Column, "@media rule not allowed in %s", context)
	}
	if len(rule.Head) == 0 {
		return nil, newError(rule.Line, rule.Column, "expected media types for @media")
	}
	media, err := p.parseMedia(rule.Head)
	if err != nil {
		return nil, err
	}
	if rule.Body == nil {
		return nil, newError(rule.Line, rule.Column, "invalid %s rule: missing block", rule.Keyword)
	}
	cursor := &tokenCursor{nodes: rule.Body.Content}
	rules := p.parseRules(cursor, errors, "@media")
	return &MediaRule{Media: media, Rules: rules, Line: rule.Line, Column: rule.Column}, nil
}

func (p *Parser) parseImportRule(rule *AtRule, previousRules []Statement, context string) (Statement, *ParseError) {
	if context != "stylesheet" {
		return nil, newError(rule.Line, rule.Column, "@import rule not allowed in %s", context)
	}
	for _, prev := range previousRules {
		if kw := prev.AtKeyword(); kw != "@charset" && kw != "@import" {
			what := "a ruleset"
			if kw != "" {
				what = fmt.Sprintf("an %s rule", kw)
			}
			pLine, pCol := prev.Pos()
			return nil, newError(pLine, pCol, "@import rule not allowed after %s", what)
		}
	}
	if len(rule.Head) == 0 {
		return nil, newError(rule.Line, rule.Column, "expected URI or STRING for @import rule")
	}
	first, isTok := rule.Head[0].(Token)
	if !isTok || (first.Type != URI && first.Type != STRING) {
		return nil, newErrorAt(rule.Head[0], "expected URI or STRING for @import rule, got %s", typeOf(rule.Head[0]))
	}
	uri := first.Value.Text()

	media := []string{"all"}
	if len(rule.Head) > 1 {
		i := 1
		for i < len(rule.Head) && typeOf(rule.Head[i]) == S {
			i++
		}
		if i < len(rule.Head) {
			m, err := p.parseMedia(rule.Head[i:])
			if err != nil {
				return nil, err
			}
			media = m
		}
	}

	if rule.Body != nil {
		bLine, bCol := rule.Body.Pos()
		return nil, newError(bLine, bCol, "expected ';', got a block")
	}
	return &ImportRule{URI: uri, Media: media, Line: rule.Line, Column: rule.Column}, nil
}

func (p *Parser) parseMarginBoxRule(rule *AtRule, errors *[]*ParseError) (Statement, *ParseError) {
	if rule.Body == nil {
		return nil, newError(rule.Line, rule.Column, "invalid %s rule: missing block", rule.Keyword)
	}
	declarations, declErrors := p.parseDeclarationList(rule.Body.Content)
	for _, declErr := range declErrors {
		p.logRecovered(declErr)
	}
	*errors = append(*errors, declErrors...)
	return &MarginBoxRule{Keyword: rule.Keyword, Declarations: declarations, Line: rule.Line, Column: rule.Column}, nil
}

// parseMedia parses a comma-separated media type list (§4.5 parse_media):
// IDENT (',' S* IDENT)*, lower-cased.
func (p *Parser) parseMedia(tokens []Node) ([]string, *ParseError) {
	var types []string
	i := 0
	for {
		tok := tokens[i]
		t, isTok := tok.(Token)
		if !isTok || t.Type != IDENT {
			return nil, newErrorAt(tok, "expected a media type, got %s", typeOf(tok))
		}
		types = append(types, lowerASCII(t.Value.Text()))
		i++
		if i >= len(tokens) {
			return types, nil
		}
		comma := tokens[i]
		if !isCommaDelim(comma) {
			return nil, newErrorAt(comma, "expected a comma, got %s", typeOf(comma))
		}
		for {
			i++
			if i >= len(tokens) {
				return nil, newErrorAt(comma, "expected a media type")
			}
			if typeOf(tokens[i]) != S {
				break
			}
		}
	}
}

func isCommaDelim(n Node) bool {
	t, ok := n.(Token)
	return ok && t.Type == DELIM && t.Value.Text() == ","
}

// parsePageSelector dispatches to the CSS 2.1 or Paged Media 3 selector
// grammar depending on whether WithPage3 is enabled.
func (p *Parser) parsePageSelector(head []Node) (PageSelector, [4]int, *ParseError) {
	if p.page3 {
		return parsePageSelectorPage3(head)
	}
	return parsePageSelectorCSS21(head)
}

// parsePageSelectorCSS21 accepts only an empty head or exactly [':' IDENT]
// where IDENT is one of first/left/right (§4.5 parse_page_selector).
func parsePageSelectorCSS21(head []Node) (PageSelector, [4]int, *ParseError) {
	if len(head) == 0 {
		return PageSelector{}, [4]int{}, nil
	}
	if len(head) == 2 && typeOf(head[0]) == COLON {
		if t, ok := head[1].(Token); ok && t.Type == IDENT {
			switch t.Value.Text() {
			case "first":
				return PageSelector{Pseudo: "first"}, [4]int{0, 0, 1, 0}, nil
			case "left":
				return PageSelector{Pseudo: "left"}, [4]int{0, 0, 0, 1}, nil
			case "right":
				return PageSelector{Pseudo: "right"}, [4]int{0, 0, 0, 1}, nil
			}
		}
	}
	return PageSelector{}, [4]int{}, newErrorAt(head[0], "invalid @page selector")
}

// parsePageBlock walks an @page block's content (§4.5 parse_page_block):
// nested at-rules (margin boxes under Paged Media 3, otherwise always an
// "unknown at-rule" error) and ';'-terminated declarations, each error
// recovered independently.
func (p *Parser) parsePageBlock(body *ContainerToken, errors *[]*ParseError) ([]Declaration, []Statement) {
	var declarations []Declaration
	var atRules []Statement
	content := body.Content
	i := 0
	for i < len(content) {
		tok := content[i]
		if t, ok := tok.(Token); ok && t.Type == ATKEYWORD {
			cursor := &tokenCursor{nodes: content, pos: i + 1}
			rule, err := p.readAtRule(t, cursor)
			i = cursor.pos
			if err != nil {
				p.logRecovered(err)
				*errors = append(*errors, err)
				continue
			}
			stmt, err := p.parseAtRule(rule, atRules, errors, "@page")
			if err != nil {
				p.logRecovered(err)
				*errors = append(*errors, err)
				continue
			}
			atRules = append(atRules, stmt)
			continue
		}
		if typeOf(tok) == S {
			i++
			continue
		}
		var declTokens []Node
		for i < len(content) && typeOf(content[i]) != SEMICOLON {
			declTokens = append(declTokens, content[i])
			i++
		}
		if i < len(content) {
			i++ // consume the ';'
		}
		if len(declTokens) > 0 {
			decl, err := p.parseDeclaration(declTokens)
			if err != nil {
				p.logRecovered(err)
				*errors = append(*errors, err)
			} else {
				declarations = append(declarations, *decl)
			}
		}
	}
	return declarations, atRules
}

// parseValuePriority pops a trailing "! important" (whitespace-tolerant
// between '!' and the ident, but both matched literally and case-sensitively
// — "!Important" is not recognized) off a declaration value (§4.5
// parse_value_priority), walking from the end the way the source does.
func (p *Parser) parseValuePriority(value []Node) ([]Node, string, *ParseError) {
	if len(value) == 0 {
		return value, "", nil
	}
	last, isLastTok := value[len(value)-1].(Token)
	if !isLastTok || last.Type != IDENT || last.Value.Text() != "important" {
		return value, "", nil
	}
	rest := value[:len(value)-1]
	for len(rest) > 0 {
		tok := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		if t, ok := tok.(Token); ok && t.Type == DELIM && t.Value.Text() == "!" {
			for len(rest) > 0 && typeOf(rest[len(rest)-1]) == S {
				rest = rest[:len(rest)-1]
			}
			if len(rest) == 0 {
				return nil, "", newErrorAt(tok, "expected a value before !important")
			}
			return rest, "important", nil
		}
		if typeOf(tok) != S {
			break
		}
	}
	return value, "", nil
}
