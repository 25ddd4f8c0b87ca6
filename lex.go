package shunting

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Tokenize scans src and returns the complete token sequence. The sequence is
// materialized, not streamed; the first invalid token aborts the scan with a
// *MalformedTokenError.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := &lexer{src: src, rune: 1}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is a zero token with a nil error.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{}, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNumber
			tok.Value = numValue(tok.Text)
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenLeftParen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenRightParen
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.Text = string(r)
				tok.Kind = TokenOperator
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a number literal into the buffer: digits, at most one dot,
// and an optional e/E exponent whose sign may follow the marker directly.
func (l *lexer) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators+"()", r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return l.error("number")
	}
	return nil
}

// numValue converts a scanned literal to float64. scanNum has already
// validated the syntax; out-of-range literals saturate to ±Inf.
func numValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("shunting: invalid number: " + s + " (" + err.Error() + ")")
	}
	return v
}

func (l *lexer) error(kind string) error {
	return &MalformedTokenError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// MalformedTokenError indicates text that is neither a number, an operator,
// nor a parenthesis. It implements InputError.
type MalformedTokenError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *MalformedTokenError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *MalformedTokenError) Pos() int {
	return err.Col
}
