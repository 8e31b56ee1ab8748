// Package css is a standalone CSS parser: it turns a byte stream of CSS
// source into a structured tree of rules, declarations, and token trees.
//
// It follows the CSS 2.1 core grammar (https://www.w3.org/TR/CSS21/syndata.html)
// extended with:
//   - @import, @media, @page and !important (CSS 2.1 §4.1.5, §6.4.2)
//   - CSS 3 Paged Media page selectors and margin-box at-rules
//     (https://www.w3.org/TR/css3-page/)
//   - a CSS 3 color-keyword/hash helper (https://www.w3.org/TR/css3-color/)
//
// Pipeline, leaves first: bytes are decoded to text (Decode), text is
// scanned into a flat token stream (TokenizeFlat), the flat stream is
// regrouped into a tree of matched brackets and function calls (Regroup),
// and the tree is walked by a recursive-descent parser into a Stylesheet
// of statements.
//
// Selector matching against a DOM, full CSS 3 selectors, and evaluating
// property values beyond splitting off !important are explicitly out of
// scope: selector tokens are preserved verbatim and handed to an optional
// external SelectorValidator (see selector.go); property values remain as
// token sequences for the caller to interpret.
package css
