package css

import "go.uber.org/zap"

// SelectorValidator lets a caller plug in real selector matching (full
// CSS 3 selector syntax, matching against a DOM) without this package
// depending on a DOM or a selector-matching library itself (§6, Non-goal:
// this package never interprets selector tokens beyond the core "any"
// production). It receives the SELECTOR container built for a ruleset and
// returns whatever representation the caller wants attached to
// RuleSet.ParsedSelector, or an error to reject the selector as if the
// core grammar itself had rejected it.
type SelectorValidator func(selector *ContainerToken) (any, error)

// Parser holds the configuration a Stylesheet is parsed under: the CSS
// 2.1 core grammar plus !important, @import, @media, @page always apply;
// Paged Media 3 page-name/pseudo-class selectors and margin-box at-rules,
// an external selector validator, logging and comment handling are each
// opt-in. The zero value is not usable directly — build one with
// NewParser.
type Parser struct {
	page3             bool
	selectorValidator SelectorValidator
	logger            *zap.Logger
	ignoreComments    bool
}

// Option configures a Parser built by NewParser.
type Option func(*Parser)

// NewParser builds a Parser. Defaults: comments are discarded during
// tokenization, Paged Media 3 is off, no selector validator, and a no-op
// logger.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		ignoreComments: true,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithPage3 enables the CSS 3 Paged Media extension (§4.6): page-name and
// pseudo-class page selectors, four-component specificity, and the
// margin-box at-rule whitelist inside @page.
func WithPage3() Option {
	return func(p *Parser) { p.page3 = true }
}

// WithSelectorValidator attaches an external selector collaborator (§6).
func WithSelectorValidator(v SelectorValidator) Option {
	return func(p *Parser) { p.selectorValidator = v }
}

// WithLogger routes Debug-level diagnostic traces (encoding candidates
// tried/accepted, mainly) to l instead of discarding them.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIgnoreComments controls whether COMMENT tokens are dropped during
// tokenization (the default) or kept in the token stream.
func WithIgnoreComments(ignore bool) Option {
	return func(p *Parser) { p.ignoreComments = ignore }
}

// logRecovered emits a Debug trace for a ParseError at the moment it is
// recovered from and appended to a Stylesheet's Errors, so a caller with a
// logger attached can observe recoveries as they happen rather than only
// after the fact by reading Errors.
func (p *Parser) logRecovered(err *ParseError) {
	p.logger.Debug("recovered parse error",
		zap.Int("line", err.Line),
		zap.Int("column", err.Column),
		zap.String("reason", err.Reason),
	)
}
