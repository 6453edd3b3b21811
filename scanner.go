package main

import (
	"strings"
	"unicode"

	"xoomonk/internal/fileinput"
)

// TokenKind discriminates the scanner's token alphabet (§4.1).
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokOperator
	TokInt
	TokString
	TokIdent
	TokUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokOperator:
		return "operator"
	case TokInt:
		return "integer literal"
	case TokString:
		return "string literal"
	case TokIdent:
		return "identifier"
	default:
		return "unknown token"
	}
}

// Token is a single (kind, lexeme) pair together with its source location.
// For TokInt, Lexeme is the decimal text (Int carries the parsed value). For
// TokString, Lexeme is the string content with delimiting quotes stripped.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Int    int64
	Loc    string
}

// singleCharOps lists the scanner's one-character operators. The only
// two-character operator, ":=", is matched separately in scan; a lone ":"
// isn't itself a defined operator and falls through to TokUnknown.
var singleCharOps = ";{}*.^$"

// Scanner produces tokens lazily, left to right, from a fileinput.Input.
type Scanner struct {
	in   *fileinput.Input
	cur  Token
	peek rune
	hasPeek bool
	atEOF   bool
}

// NewScanner returns a scanner reading from in, positioned on the first
// token.
func NewScanner(in *fileinput.Input) *Scanner {
	sc := &Scanner{in: in}
	sc.Advance()
	return sc
}

// Cur returns the current token without consuming it.
func (sc *Scanner) Cur() Token { return sc.cur }

// Advance consumes the current token and scans the next one into position,
// returning the token that is now current.
func (sc *Scanner) Advance() Token {
	sc.cur = sc.scan()
	return sc.cur
}

// Expect advances past the current token if its lexeme matches lexeme,
// otherwise returns a SyntaxError naming what was expected.
func (sc *Scanner) Expect(lexeme string) (Token, error) {
	if sc.cur.Lexeme != lexeme || sc.cur.Kind == TokEOF {
		return Token{}, &SyntaxError{Loc: sc.cur.Loc, Lexeme: sc.cur.Lexeme, Expected: "\"" + lexeme + "\""}
	}
	tok := sc.cur
	sc.Advance()
	return tok, nil
}

// Consume is a boolean try-advance: if the current token's lexeme matches,
// it consumes it and returns true.
func (sc *Scanner) Consume(lexeme string) bool {
	if sc.cur.Lexeme == lexeme && sc.cur.Kind != TokEOF {
		sc.Advance()
		return true
	}
	return false
}

// CheckKind asserts the current token's kind, returning a SyntaxError
// otherwise.
func (sc *Scanner) CheckKind(kind TokenKind) error {
	if sc.cur.Kind != kind {
		return &SyntaxError{Loc: sc.cur.Loc, Lexeme: sc.cur.Lexeme, Expected: kind.String()}
	}
	return nil
}

func (sc *Scanner) readRune() (rune, bool) {
	if sc.hasPeek {
		r := sc.peek
		sc.hasPeek = false
		return r, true
	}
	if sc.atEOF {
		return 0, false
	}
	r, _, err := sc.in.ReadRune()
	if err != nil {
		sc.atEOF = true
		return 0, false
	}
	return r, true
}

func (sc *Scanner) peekRune() (rune, bool) {
	if !sc.hasPeek {
		r, ok := sc.readRune()
		if !ok {
			return 0, false
		}
		sc.peek, sc.hasPeek = r, true
	}
	return sc.peek, true
}

func (sc *Scanner) loc() string { return sc.in.Scan.Location.String() }

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func (sc *Scanner) scan() Token {
	for {
		r, ok := sc.peekRune()
		if !ok {
			return Token{Kind: TokEOF, Loc: sc.loc()}
		}
		if !isSpaceRune(r) {
			break
		}
		sc.readRune()
	}

	loc := sc.loc()
	r, _ := sc.peekRune()

	switch {
	case r == ':':
		sc.readRune()
		if r2, ok := sc.peekRune(); ok && r2 == '=' {
			sc.readRune()
			return Token{Kind: TokOperator, Lexeme: ":=", Loc: loc}
		}
		return Token{Kind: TokUnknown, Lexeme: ":", Loc: loc}

	case strings.ContainsRune(singleCharOps, r):
		sc.readRune()
		return Token{Kind: TokOperator, Lexeme: string(r), Loc: loc}

	case r == '"':
		return sc.scanString(loc)

	case isWordRune(r):
		return sc.scanWord(loc)

	default:
		sc.readRune()
		return Token{Kind: TokUnknown, Lexeme: string(r), Loc: loc}
	}
}

func (sc *Scanner) scanString(loc string) Token {
	sc.readRune() // opening quote
	var sb strings.Builder
	for {
		r, ok := sc.readRune()
		if !ok {
			return Token{Kind: TokUnknown, Lexeme: sb.String(), Loc: loc}
		}
		if r == '"' {
			return Token{Kind: TokString, Lexeme: sb.String(), Loc: loc}
		}
		sb.WriteRune(r)
	}
}

func (sc *Scanner) scanWord(loc string) Token {
	var sb strings.Builder
	allDigits := true
	for {
		r, ok := sc.peekRune()
		if !ok || !isWordRune(r) {
			break
		}
		sc.readRune()
		if !unicode.IsDigit(r) {
			allDigits = false
		}
		sb.WriteRune(r)
	}
	lexeme := sb.String()
	if allDigits {
		var n int64
		for _, r := range lexeme {
			n = n*10 + int64(r-'0')
		}
		return Token{Kind: TokInt, Lexeme: lexeme, Int: n, Loc: loc}
	}
	return Token{Kind: TokIdent, Lexeme: lexeme, Loc: loc}
}
