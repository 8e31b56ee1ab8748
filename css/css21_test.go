package css

import "testing"

func TestParseImportRule(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@import "foo.css"; @import url(bar.css) screen, print;`)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	first := sheet.Rules[0].(*ImportRule)
	if first.URI != "foo.css" || len(first.Media) != 1 || first.Media[0] != "all" {
		t.Errorf("first import = %+v", first)
	}
	second := sheet.Rules[1].(*ImportRule)
	if second.URI != "bar.css" {
		t.Errorf("second import URI = %q", second.URI)
	}
	if len(second.Media) != 2 || second.Media[0] != "screen" || second.Media[1] != "print" {
		t.Errorf("second import media = %v", second.Media)
	}
}

func TestImportRuleNotAllowedAfterRuleset(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`a { color: red } @import "foo.css";`)
	if len(sheet.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(sheet.Errors), sheet.Errors)
	}
	want := "@import rule not allowed after a ruleset"
	if sheet.Errors[0].Reason != want {
		t.Errorf("reason = %q, want %q", sheet.Errors[0].Reason, want)
	}
}

func TestImportRuleAllowedAfterCharset(t *testing.T) {
	p := NewParser()
	sheet, err := p.ParseStylesheetBytes([]byte(`@charset "utf-8"; @import "foo.css";`), "", "", "")
	if err != nil {
		t.Fatalf("ParseStylesheetBytes error: %v", err)
	}
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
}

func TestParseMediaRule(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@media screen, print { a { color: red } }`)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	mr := sheet.Rules[0].(*MediaRule)
	if len(mr.Media) != 2 || mr.Media[0] != "screen" || mr.Media[1] != "print" {
		t.Errorf("media = %v", mr.Media)
	}
	if len(mr.Rules) != 1 {
		t.Fatalf("expected 1 nested rule, got %d", len(mr.Rules))
	}
}

func TestParseMediaRuleNotAllowedInMedia(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@media screen { @media print { a { color: red } } }`)
	if len(sheet.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(sheet.Errors), sheet.Errors)
	}
	want := "@media rule not allowed in @media"
	if sheet.Errors[0].Reason != want {
		t.Errorf("reason = %q, want %q", sheet.Errors[0].Reason, want)
	}
}

func TestParseMediaMissingTypes(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@media { a { color: red } }`)
	if len(sheet.Errors) != 1 || sheet.Errors[0].Reason != "expected media types for @media" {
		t.Fatalf("expected 'expected media types for @media', got %v", sheet.Errors)
	}
}

func TestParseMediaTrailingComma(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@media screen, { a { color: red } }`)
	if len(sheet.Errors) != 1 || sheet.Errors[0].Reason != "expected a media type" {
		t.Fatalf("expected 'expected a media type', got %v", sheet.Errors)
	}
}

func TestParseImportantPriority(t *testing.T) {
	decls, errs := NewParser().ParseStyleAttr(`color: red !important; margin: 0`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if decls[0].Priority != "important" {
		t.Errorf("priority = %q, want important", decls[0].Priority)
	}
	if len(decls[0].Value.Content) != 1 {
		t.Fatalf("expected !important stripped from the value, got %d tokens", len(decls[0].Value.Content))
	}
	if decls[1].Priority != "" {
		t.Errorf("second declaration priority = %q, want empty", decls[1].Priority)
	}
}

func TestParseImportantSpacedBang(t *testing.T) {
	decls, errs := NewParser().ParseStyleAttr(`color: red ! important`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if decls[0].Priority != "important" {
		t.Errorf("priority = %q, want important", decls[0].Priority)
	}
}

func TestParseImportantEmptyValueErrors(t *testing.T) {
	_, errs := NewParser().ParseStyleAttr(`color: !important`)
	if len(errs) != 1 || errs[0].Reason != "expected a value before !important" {
		t.Fatalf("expected 'expected a value before !important', got %v", errs)
	}
}

func TestParsePageRuleCSS21(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@page :first { margin: 1in }`)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	pr := sheet.Rules[0].(*PageRule)
	if pr.Selector.Pseudo != "first" {
		t.Errorf("pseudo = %q", pr.Selector.Pseudo)
	}
	if pr.Specificity != [4]int{0, 0, 1, 0} {
		t.Errorf("specificity = %v", pr.Specificity)
	}
	if len(pr.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(pr.Declarations))
	}
}

func TestParsePageSelectorInvalidWithoutPage3(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@page foo { margin: 1in }`)
	if len(sheet.Errors) != 1 || sheet.Errors[0].Reason != "invalid @page selector" {
		t.Fatalf("expected 'invalid @page selector', got %v", sheet.Errors)
	}
}

func TestParsePageRuleNotAllowedInMedia(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@media print { @page { margin: 0 } }`)
	if len(sheet.Errors) != 1 || sheet.Errors[0].Reason != "@page rule not allowed in @media" {
		t.Fatalf("expected '@page rule not allowed in @media', got %v", sheet.Errors)
	}
}

func TestParsePageMarginBoxUnknownWithoutPage3(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@page { @top-center { content: "x" } margin: 0 }`)
	if len(sheet.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(sheet.Errors), sheet.Errors)
	}
	want := "unknown at-rule in @page context: @top-center"
	if sheet.Errors[0].Reason != want {
		t.Errorf("reason = %q, want %q", sheet.Errors[0].Reason, want)
	}
	pr := sheet.Rules[0].(*PageRule)
	if len(pr.Declarations) != 1 {
		t.Fatalf("expected the margin declaration to survive, got %d", len(pr.Declarations))
	}
}
