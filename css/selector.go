package css

// Selector is not implemented by this package: matching the token tree a
// RuleSet's Selector field carries against an actual element is full CSS
// 3 selector syntax plus a DOM, both explicitly out of scope (§6). This
// file only documents the extension point.
//
// A caller that needs real matching plugs in a SelectorValidator (see
// options.go's WithSelectorValidator) that parses and validates the
// SELECTOR container's token sequence however it likes — commonly by
// calling AsCSS() on it and handing the resulting text to a dedicated
// selector-parsing library — and returns a value of its own choosing,
// which ends up on RuleSet.ParsedSelector.
