package css

// Regroup turns a flat token stream into a tree by matching '(', '[', '{'
// and FUNCTION( against their closers (§4.3), using an explicit stack since
// Go has no generators to drive this recursively.
//
// Any container still open at end of input is closed implicitly with an
// empty Close string, innermost first — this is what lets "a[b{\"d" parse
// at all: three nested containers close in turn as EOF is reached.
// Stray closers that don't match the container currently being built are
// left in place as plain Tokens for the grammar parser to flag as
// "unmatched".
func Regroup(tokens []Token) []Node {
	var root []Node
	var stack []*ContainerToken

	appendNode := func(n Node) {
		if len(stack) == 0 {
			root = append(root, n)
			return
		}
		top := stack[len(stack)-1]
		top.Content = append(top.Content, n)
	}

	for _, tok := range tokens {
		switch tok.Type {
		case LPAREN, LBRACKET, LBRACE:
			stack = append(stack, newContainer(tok.Type, tok.Source, "", nil, tok.Line, tok.Column))

		case FUNCTION:
			name := tok.Value.Text()
			if len(name) > 0 {
				name = name[:len(name)-1] // drop the trailing "("
			}
			stack = append(stack, &ContainerToken{
				Type:         FUNCTION,
				Open:         tok.Source,
				FunctionName: name,
				Line:         tok.Line,
				Column:       tok.Column,
			})

		case RPAREN, RBRACKET, RBRACE:
			if len(stack) > 0 && closerMatches(stack[len(stack)-1].Type, tok.Type) {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				c.Close = tok.Source
				appendNode(c)
			} else {
				appendNode(tok)
			}

		default:
			appendNode(tok)
		}
	}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		appendNode(c)
	}

	return root
}

func closerMatches(openType, closeType TokenType) bool {
	switch openType {
	case LPAREN, FUNCTION:
		return closeType == RPAREN
	case LBRACKET:
		return closeType == RBRACKET
	case LBRACE:
		return closeType == RBRACE
	default:
		return false
	}
}
