package css

import "testing"

func TestPage3Selectors(t *testing.T) {
	tests := []struct {
		css        string
		wantName   string
		wantPseudo string
		wantErr    bool
	}{
		{`@page {}`, "", "", false},
		{`@page :first {}`, "", "first", false},
		{`@page:left{}`, "", "left", false},
		{`@page :right {}`, "", "right", false},
		{`@page :last {}`, "", "", true},
		{`@page : first {}`, "", "", true},
		{`@page foo:first {}`, "foo", "first", false},
		{`@page bar :left {}`, "bar", "left", false},
		{"@page \\26:right {}", "&", "right", false},
		{`@page foo {}`, "foo", "", false},
		{"@page \\26 {}", "&", "", false},
		{`@page foo fist {}`, "", "", true},
		{`@page foo, bar {}`, "", "", true},
		{`@page foo&first {}`, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			sheet := NewParser(WithPage3()).ParseStylesheet(tt.css)
			if tt.wantErr {
				if len(sheet.Errors) != 1 || sheet.Errors[0].Reason != "invalid @page selector" {
					t.Fatalf("expected 'invalid @page selector', got %v (rules=%d)", sheet.Errors, len(sheet.Rules))
				}
				return
			}
			if len(sheet.Errors) != 0 {
				t.Fatalf("unexpected errors: %v", sheet.Errors)
			}
			pr := sheet.Rules[0].(*PageRule)
			if pr.Selector.Name != tt.wantName || pr.Selector.Pseudo != tt.wantPseudo {
				t.Errorf("selector = %+v, want name=%q pseudo=%q", pr.Selector, tt.wantName, tt.wantPseudo)
			}
		})
	}
}

func TestPage3Specificity(t *testing.T) {
	sheet := NewParser(WithPage3()).ParseStylesheet(`@page foo:first {}`)
	pr := sheet.Rules[0].(*PageRule)
	if pr.Specificity != [4]int{1, 0, 1, 0} {
		t.Errorf("specificity = %v, want [1 0 1 0]", pr.Specificity)
	}
}

func TestPage3MarginBoxes(t *testing.T) {
	css := `@page { foo: 4;
		@top-center { content: "Awesome Title" }
		@bottom-left { content: counter(page) }
		bar: z
	}`
	sheet := NewParser(WithPage3()).ParseStylesheet(css)
	if len(sheet.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", sheet.Errors)
	}
	pr := sheet.Rules[0].(*PageRule)
	if len(pr.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(pr.Declarations))
	}
	if len(pr.AtRules) != 2 {
		t.Fatalf("expected 2 margin-box at-rules, got %d", len(pr.AtRules))
	}
	top := pr.AtRules[0].(*MarginBoxRule)
	if top.Keyword != "@top-center" || len(top.Declarations) != 1 {
		t.Errorf("top margin box = %+v", top)
	}
	bottom := pr.AtRules[1].(*MarginBoxRule)
	if bottom.Keyword != "@bottom-left" || len(bottom.Declarations) != 1 {
		t.Errorf("bottom margin box = %+v", bottom)
	}
}

func TestPage3UnknownMarginBoxStillErrors(t *testing.T) {
	css := `@page { foo: 4;
		@bottom-top { content: counter(page) }
		bar: z
	}`
	sheet := NewParser(WithPage3()).ParseStylesheet(css)
	if len(sheet.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(sheet.Errors), sheet.Errors)
	}
	want := "unknown at-rule in @page context: @bottom-top"
	if sheet.Errors[0].Reason != want {
		t.Errorf("reason = %q, want %q", sheet.Errors[0].Reason, want)
	}
	pr := sheet.Rules[0].(*PageRule)
	if len(pr.Declarations) != 2 || len(pr.AtRules) != 0 {
		t.Errorf("declarations/at-rules = %d/%d, want 2/0", len(pr.Declarations), len(pr.AtRules))
	}
}
