package css

import (
	"strings"
	"testing"
)

func TestStylesheetDumpRuleset(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`a { color: red }`)
	out := sheet.Dump()
	for _, want := range []string{"SELECTOR", "{", "color:", "IDENT", "red", "}"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() = %q, missing %q", out, want)
		}
	}
}

func TestStylesheetDumpIncludesErrors(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`a { color: }`)
	out := sheet.Dump()
	if !strings.Contains(out, "Parse error at") {
		t.Errorf("Dump() = %q, expected it to include the recovered error", out)
	}
}

func TestStylesheetDumpAtRules(t *testing.T) {
	sheet := NewParser().ParseStylesheet(`@import "foo.css"; @media screen { a { color: red } } @page :first { margin: 0 }`)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	out := sheet.Dump()
	for _, want := range []string{`@import "foo.css" all;`, "@media screen", "@page :first", "margin:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() = %q, missing %q", out, want)
		}
	}
}

func TestPage3MarginBoxDump(t *testing.T) {
	sheet := NewParser(WithPage3()).ParseStylesheet(`@page { @top-center { content: "x" } }`)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	out := sheet.Dump()
	if !strings.Contains(out, "@top-center") || !strings.Contains(out, "content:") {
		t.Errorf("Dump() = %q, expected the margin box rule rendered", out)
	}
}
