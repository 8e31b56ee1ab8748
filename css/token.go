package css

import "fmt"

// TokenType identifies the lexical class of a Token or ContainerToken.
//
// See CSS 2.1 §4.1.1 Tokenization.
type TokenType int

const (
	// S is a run of whitespace.
	S TokenType = iota
	IDENT
	HASH
	ATKEYWORD
	URI
	UNICODE_RANGE
	INTEGER
	NUMBER
	DIMENSION
	PERCENTAGE
	STRING
	BAD_STRING
	BAD_URI
	COMMENT
	BAD_COMMENT
	DELIM
	CDO
	CDC
	COLON
	SEMICOLON

	// Container types below: these appear as bare Tokens only in
	// TokenizeFlat's flat output; Regroup turns each into a ContainerToken.

	LPAREN   // (
	LBRACKET // [
	LBRACE   // {
	FUNCTION // ident(

	// RPAREN/RBRACKET/RBRACE close the container types above during flat
	// tokenization and regrouping. They are consumed into a container's
	// Close field and normally never appear as a Node in the final tree —
	// except when stray (§4.3), where they are left in place verbatim for
	// the grammar parser to report as "unmatched".
	RPAREN
	RBRACKET
	RBRACE

	// SELECTOR and VALUES are synthesized by the parser: they do not come
	// from the tokenizer but wrap a selector group or a declaration's
	// value tokens respectively, so the rest of the tree has a uniform
	// container shape to walk.
	SELECTOR
	VALUES
)

func (t TokenType) String() string {
	switch t {
	case S:
		return "S"
	case IDENT:
		return "IDENT"
	case HASH:
		return "HASH"
	case ATKEYWORD:
		return "ATKEYWORD"
	case URI:
		return "URI"
	case UNICODE_RANGE:
		return "UNICODE-RANGE"
	case INTEGER:
		return "INTEGER"
	case NUMBER:
		return "NUMBER"
	case DIMENSION:
		return "DIMENSION"
	case PERCENTAGE:
		return "PERCENTAGE"
	case STRING:
		return "STRING"
	case BAD_STRING:
		return "BAD_STRING"
	case BAD_URI:
		return "BAD_URI"
	case COMMENT:
		return "COMMENT"
	case BAD_COMMENT:
		return "BAD_COMMENT"
	case DELIM:
		return "DELIM"
	case CDO:
		return "CDO"
	case CDC:
		return "CDC"
	case COLON:
		return ":"
	case SEMICOLON:
		return ";"
	case LPAREN:
		return "("
	case LBRACKET:
		return "["
	case LBRACE:
		return "{"
	case RPAREN:
		return ")"
	case RBRACKET:
		return "]"
	case RBRACE:
		return "}"
	case FUNCTION:
		return "FUNCTION"
	case SELECTOR:
		return "SELECTOR"
	case VALUES:
		return "VALUES"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// valueKind discriminates the payload actually held by a Value: exactly
// one of int, float or text is meaningful, chosen by the owning Token's
// Type at construction time, never inferred later.
type valueKind uint8

const (
	valueNone valueKind = iota
	valueInt
	valueFloat
	valueText
)

// Value is the parsed payload of a Token (§3): a numeric value for
// INTEGER/NUMBER/PERCENTAGE/DIMENSION, decoded text for everything else.
type Value struct {
	kind valueKind
	i    int
	f    float64
	s    string
}

func intValue(i int) Value     { return Value{kind: valueInt, i: i} }
func floatValue(f float64) Value { return Value{kind: valueFloat, f: f} }
func textValue(s string) Value { return Value{kind: valueText, s: s} }

// IsInt reports whether the value was parsed as an integer (an INTEGER
// token with no decimal point).
func (v Value) IsInt() bool { return v.kind == valueInt }

// IsFloat reports whether the value was parsed as a floating-point number.
func (v Value) IsFloat() bool { return v.kind == valueFloat }

// IsText reports whether the value is decoded text rather than a number.
func (v Value) IsText() bool { return v.kind == valueText }

// Int returns the integer payload, or 0 if the value is not an integer.
func (v Value) Int() int {
	if v.kind == valueInt {
		return v.i
	}
	return 0
}

// Float returns the numeric payload as a float64, whether it was parsed
// as an integer or a floating-point number. Returns 0 for text values.
func (v Value) Float() float64 {
	switch v.kind {
	case valueInt:
		return float64(v.i)
	case valueFloat:
		return v.f
	default:
		return 0
	}
}

// Text returns the decoded text payload, or "" if the value is numeric.
func (v Value) Text() string {
	if v.kind == valueText {
		return v.s
	}
	return ""
}

func (v Value) String() string {
	switch v.kind {
	case valueInt:
		return fmt.Sprintf("%d", v.i)
	case valueFloat:
		return fmt.Sprintf("%v", v.f)
	case valueText:
		return v.s
	default:
		return ""
	}
}

// Node is implemented by Token and *ContainerToken: the two shapes that
// can appear in a token tree. It is a closed sum type by convention (no
// other package should implement it).
type Node interface {
	// Pos returns the 1-based line and column where this node starts in
	// the original source.
	Pos() (line, column int)
	// AsCSS returns the verbatim CSS text this node was parsed from. For
	// a ContainerToken whose closer was implicit (never matched), this is
	// only the opener and content, not a round-trippable fragment.
	AsCSS() string
	// Dump returns an indented, multi-line string representation for
	// debugging — not meant for round-tripping, just for eyeballing a
	// token tree.
	Dump() string
	nodeType() TokenType
}

// Token is a single atomic lexical unit (§3).
//
// Tokens are value types: each one carries its own Source string, so a
// Stylesheet can be held and inspected long after the caller drops the
// source string that produced it.
type Token struct {
	Type   TokenType
	Source string // verbatim text as it appeared in the source
	Value  Value
	Unit   string // DIMENSION's normalized unit, or "%" for PERCENTAGE; "" otherwise
	Line   int
	Column int
}

func (t Token) Pos() (int, int)    { return t.Line, t.Column }
func (t Token) AsCSS() string      { return t.Source }
func (t Token) nodeType() TokenType { return t.Type }

func (t Token) String() string {
	return fmt.Sprintf("<Token %s %d:%d %q>", t.Type, t.Line, t.Column, t.Value)
}

// Dump renders a Token as a single line: type, position, decoded value and
// (for DIMENSION/PERCENTAGE) its unit.
func (t Token) Dump() string {
	if t.Unit != "" {
		return fmt.Sprintf("<Token %s at %d:%d %q %s>", t.Type, t.Line, t.Column, t.Value.String(), t.Unit)
	}
	return fmt.Sprintf("<Token %s at %d:%d %q>", t.Type, t.Line, t.Column, t.Value.String())
}

// ContainerToken is a token that owns nested children: one of '(', '[',
// '{', FUNCTION, or the synthetic SELECTOR/VALUES wrappers.
//
// Invariant: AsCSS, the recursive concatenation of Open + each child's
// AsCSS + Close, equals the original source slice whenever the container
// was closed explicitly (Close != "").
type ContainerToken struct {
	Type  TokenType
	Open  string // opening delimiter text, e.g. "(" or "foo("
	Close string // closing delimiter text, or "" if implicitly closed at EOF
	// FunctionName is the unescaped function name (without the trailing
	// "("), set only when Type == FUNCTION.
	FunctionName string
	Content      []Node
	Line         int
	Column       int
}

func (c *ContainerToken) Pos() (int, int)    { return c.Line, c.Column }
func (c *ContainerToken) nodeType() TokenType { return c.Type }

func (c *ContainerToken) AsCSS() string {
	var b []byte
	b = append(b, c.Open...)
	for _, node := range c.Content {
		b = append(b, node.AsCSS()...)
	}
	b = append(b, c.Close...)
	return string(b)
}

func (c *ContainerToken) String() string {
	return fmt.Sprintf("<ContainerToken %s %d:%d %d children>",
		c.Type, c.Line, c.Column, len(c.Content))
}

// Dump renders a ContainerToken as a header line naming its type (and, for
// FUNCTION, its name) followed by each child's Dump, indented one level.
func (c *ContainerToken) Dump() string {
	header := fmt.Sprintf("<ContainerToken %s at %d:%d>", c.Type, c.Line, c.Column)
	if c.Type == FUNCTION {
		header = fmt.Sprintf("<ContainerToken FUNCTION %s() at %d:%d>", c.FunctionName, c.Line, c.Column)
	}
	lines := []string{header}
	for _, child := range c.Content {
		lines = append(lines, indentLines(child.Dump())...)
	}
	return joinLines(lines)
}

// newContainer is a small constructor helper shared by the regrouper and
// the parser's synthetic SELECTOR/VALUES wrappers.
func newContainer(t TokenType, open, close string, content []Node, line, col int) *ContainerToken {
	return &ContainerToken{
		Type:    t,
		Open:    open,
		Close:   close,
		Content: content,
		Line:    line,
		Column:  col,
	}
}
