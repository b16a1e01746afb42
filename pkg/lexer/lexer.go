// Package lexer implements the FibLang tokenizer.
package lexer

import "fmt"

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	// Keywords
	TokDef TokenType = iota
	TokFor
	TokFrom
	TokTo

	// Literals and identifiers
	TokNumber
	TokIdent

	// Punctuation
	TokLParen   // (
	TokRParen   // )
	TokQuestion // ?
	TokColon    // :
	TokLess     // <
	TokPlus     // +
	TokMinus    // -

	TokEOF
)

func (t TokenType) String() string {
	switch t {
	case TokDef:
		return "'def'"
	case TokFor:
		return "'for'"
	case TokFrom:
		return "'from'"
	case TokTo:
		return "'to'"
	case TokNumber:
		return "number"
	case TokIdent:
		return "identifier"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokQuestion:
		return "'?'"
	case TokColon:
		return "':'"
	case TokLess:
		return "'<'"
	case TokPlus:
		return "'+'"
	case TokMinus:
		return "'-'"
	case TokEOF:
		return "end of input"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Token is a single lexeme with its 1-based source position.
type Token struct {
	Type TokenType
	Text string
	Line int
	Col  int
}

// LexError reports an unexpected character with a 1-based position.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

var keywords = map[string]TokenType{
	"def":  TokDef,
	"for":  TokFor,
	"from": TokFrom,
	"to":   TokTo,
}

// Tokenize splits source into tokens, always ending with a TokEOF
// token carrying the final position.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	line, col := 1, 1
	i := 0
	for i < len(source) {
		c := source[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
			col++
		case c == '\n':
			i++
			line++
			col = 1
		case isDigit(c):
			start, startCol := i, col
			for i < len(source) && isDigit(source[i]) {
				i++
				col++
			}
			tokens = append(tokens, Token{Type: TokNumber, Text: source[start:i], Line: line, Col: startCol})
		case isAlpha(c):
			start, startCol := i, col
			for i < len(source) && isWordChar(source[i]) {
				i++
				col++
			}
			text := source[start:i]
			typ := TokIdent
			if kw, ok := keywords[text]; ok {
				typ = kw
			}
			tokens = append(tokens, Token{Type: typ, Text: text, Line: line, Col: startCol})
		default:
			var typ TokenType
			switch c {
			case '(':
				typ = TokLParen
			case ')':
				typ = TokRParen
			case '?':
				typ = TokQuestion
			case ':':
				typ = TokColon
			case '<':
				typ = TokLess
			case '+':
				typ = TokPlus
			case '-':
				typ = TokMinus
			default:
				return nil, &LexError{Line: line, Col: col, Msg: fmt.Sprintf("unexpected character %q", c)}
			}
			tokens = append(tokens, Token{Type: typ, Text: string(c), Line: line, Col: col})
			i++
			col++
		}
	}
	tokens = append(tokens, Token{Type: TokEOF, Line: line, Col: col})
	return tokens, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }
