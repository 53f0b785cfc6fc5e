// Package parser turns an LTL formula string into a canonical, normalized
// ltlsyntax.Node: the token stream → tree → NNF → canonical-form pipeline of
// spec.md §4.1 (C3), grounded on `original_source/lex.c` and `parse.c` for
// the token set and on `rewrt.c` for negation push-down and
// canonicalization.
package parser

import (
	"fmt"
	"strings"
)

// TokenKind identifies a lexical token, mirroring the enum in
// `original_source/ltl2ba.h` (ALWAYS, AND, EQUIV, ...).
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokTrue
	TokFalse
	TokPredicate
	TokNot
	TokAnd
	TokOr
	TokImplies
	TokEquiv
	TokNext
	TokAlways
	TokEventually
	TokUntil
	TokRelease
	TokLParen
	TokRParen
	TokSemi
)

// tok is one lexical unit: kind, source text, and column (for the
// caret-under-column diagnostics spec.md §7 requires).
type tok struct {
	kind TokenKind
	text string
	col  int
}

// Error reports a lexical or syntactic problem together with the column at
// which it occurred, per spec.md §7's caret-under-column requirement.
type Error struct {
	Message string
	Column  int
	Source  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at column %d\n%s\n%s^", e.Message, e.Column, e.Source, strings.Repeat(" ", e.Column))
}

// Lexer tokenizes an LTL formula string.
type Lexer struct {
	src  string
	pos  int
	peek *tok
}

// NewLexer returns a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func isIdentStart(b byte) bool { return b >= 'a' && b <= 'z' }
func isIdentCont(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (tok, error) {
	if l.peek == nil {
		t, err := l.lex()
		if err != nil {
			return tok{}, err
		}
		l.peek = &t
	}
	return *l.peek, nil
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (tok, error) {
	if l.peek != nil {
		t := *l.peek
		l.peek = nil
		return t, nil
	}
	return l.lex()
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			l.pos++
			continue
		}
		break
	}
}

func (l *Lexer) lex() (tok, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return tok{kind: TokEOF, col: start}, nil
	}
	c := l.src[l.pos]

	switch {
	case c == '(':
		l.pos++
		return tok{kind: TokLParen, col: start}, nil
	case c == ')':
		l.pos++
		return tok{kind: TokRParen, col: start}, nil
	case c == ';':
		l.pos++
		return tok{kind: TokSemi, col: start}, nil
	case c == '!':
		l.pos++
		return tok{kind: TokNot, col: start}, nil
	case c == '{':
		return l.lexBraceExpr(start)
	case c == 'X':
		l.pos++
		return tok{kind: TokNext, col: start}, nil
	case c == 'G':
		l.pos++
		return tok{kind: TokAlways, col: start}, nil
	case c == 'F':
		l.pos++
		return tok{kind: TokEventually, col: start}, nil
	case c == 'U':
		l.pos++
		return tok{kind: TokUntil, col: start}, nil
	case c == 'V':
		l.pos++
		return tok{kind: TokRelease, col: start}, nil
	case c == '[' && l.hasPrefix("[]"):
		l.pos += 2
		return tok{kind: TokAlways, col: start}, nil
	case c == '<' && l.hasPrefix("<->"):
		l.pos += 3
		return tok{kind: TokEquiv, col: start}, nil
	case c == '<' && l.hasPrefix("<>"):
		l.pos += 2
		return tok{kind: TokEventually, col: start}, nil
	case c == '-' && l.hasPrefix("->"):
		l.pos += 2
		return tok{kind: TokImplies, col: start}, nil
	case c == '&' && l.hasPrefix("&&"):
		l.pos += 2
		return tok{kind: TokAnd, col: start}, nil
	case c == '|' && l.hasPrefix("||"):
		l.pos += 2
		return tok{kind: TokOr, col: start}, nil
	case c == '/' && l.hasPrefix(`/\`):
		l.pos += 2
		return tok{kind: TokAnd, col: start}, nil
	case c == '\\' && l.hasPrefix(`\/`):
		l.pos += 2
		return tok{kind: TokOr, col: start}, nil
	case c == 'N' && l.hasPrefix("NOT"):
		l.pos += 3
		return tok{kind: TokNot, text: "NOT", col: start}, nil
	case isIdentStart(c):
		return l.lexIdent(start)
	default:
		return tok{}, &Error{Message: fmt.Sprintf("unexpected character %q", c), Column: start, Source: l.src}
	}
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.src[l.pos:], s)
}

func (l *Lexer) lexIdent(start int) (tok, error) {
	end := start
	for end < len(l.src) && isIdentCont(l.src[end]) {
		end++
	}
	text := l.src[start:end]
	l.pos = end
	switch text {
	case "true":
		return tok{kind: TokTrue, text: text, col: start}, nil
	case "false":
		return tok{kind: TokFalse, text: text, col: start}, nil
	case "U":
		return tok{kind: TokUntil, text: text, col: start}, nil
	case "V":
		return tok{kind: TokRelease, text: text, col: start}, nil
	case "NOT":
		return tok{kind: TokNot, text: text, col: start}, nil
	default:
		return tok{kind: TokPredicate, text: text, col: start}, nil
	}
}

// lexBraceExpr consumes a balanced `{...}` opaque C-expression predicate
// (spec.md §6 grammar; semantics per SPEC_FULL.md D9). Braces may not
// nest inside the expression text, matching the reference lexer's
// single-pass scan for the closing brace.
func (l *Lexer) lexBraceExpr(start int) (tok, error) {
	end := start + 1
	for end < len(l.src) && l.src[end] != '}' {
		if l.src[end] == '{' {
			return tok{}, &Error{Message: "nested '{' inside C-expression", Column: end, Source: l.src}
		}
		end++
	}
	if end >= len(l.src) {
		return tok{}, &Error{Message: "unterminated '{...}' expression", Column: start, Source: l.src}
	}
	text := l.src[start+1 : end]
	l.pos = end + 1
	return tok{kind: TokPredicate, text: "{" + text + "}", col: start}, nil
}
