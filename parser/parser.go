package parser

import (
	"fmt"

	"github.com/esbmc/libltl2ba/ltlsyntax"
)

// Parser builds a raw (pre-normalization) formula tree by recursive
// descent over the grammar in spec.md §6:
//
//	Formula := Equiv
//	Equiv   := Impl ('<->' Impl)*
//	Impl    := Or   ('->'  Or  )*
//	Or      := And  (('||'|'\/') And )*
//	And     := UntRel(('&&'|'/\') UntRel)*
//	UntRel  := Unary (('U'|'V') Unary)*
//	Unary   := ('!'|'X'|'G'|'F'|'<>'|'[]'|'NOT') Unary | '(' Formula ')'
//	         | 'true' | 'false' | Ident | '{' C-text '}'
type Parser struct {
	lex   *Lexer
	preds *ltlsyntax.PredicateTable
}

// New returns a parser for src, interning predicate names into preds.
func New(src string, preds *ltlsyntax.PredicateTable) *Parser {
	return &Parser{lex: NewLexer(src), preds: preds}
}

// Parse parses a single formula and returns its raw tree (derived operators
// and NOT still present; call Desugar/NNF/Canonical/Simplify to
// normalize it).
func Parse(src string, preds *ltlsyntax.PredicateTable) (*ltlsyntax.Node, error) {
	p := New(src, preds)
	n, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	t, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	// A trailing ';' or EOF both terminate a single formula; anything else
	// is a syntax error (no positional arguments, no multi-formula input).
	if t.kind != TokEOF && t.kind != TokSemi {
		return nil, &Error{Message: fmt.Sprintf("unexpected trailing token %v", t.kind), Column: t.col, Source: src}
	}
	return n, nil
}

func (p *Parser) parseEquiv() (*ltlsyntax.Node, error) {
	left, err := p.parseImpl()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if t.kind != TokEquiv {
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseImpl()
		if err != nil {
			return nil, err
		}
		left = ltlsyntax.Bin(ltlsyntax.KindEquiv, left, right)
	}
}

func (p *Parser) parseImpl() (*ltlsyntax.Node, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if t.kind != TokImplies {
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = ltlsyntax.Bin(ltlsyntax.KindImplies, left, right)
	}
}

func (p *Parser) parseOr() (*ltlsyntax.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if t.kind != TokOr {
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ltlsyntax.Bin(ltlsyntax.KindOr, left, right)
	}
}

func (p *Parser) parseAnd() (*ltlsyntax.Node, error) {
	left, err := p.parseUntilRelease()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if t.kind != TokAnd {
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseUntilRelease()
		if err != nil {
			return nil, err
		}
		left = ltlsyntax.Bin(ltlsyntax.KindAnd, left, right)
	}
}

// parseUntilRelease implements the spec's explicitly left-associative U/V
// binding (spec.md §4.1: "binary U, V (left-associative)").
func (p *Parser) parseUntilRelease() (*ltlsyntax.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		var kind ltlsyntax.Kind
		switch t.kind {
		case TokUntil:
			kind = ltlsyntax.KindUntil
		case TokRelease:
			kind = ltlsyntax.KindRelease
		default:
			return left, nil
		}
		p.lex.Next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ltlsyntax.Bin(kind, left, right)
	}
}

func (p *Parser) parseUnary() (*ltlsyntax.Node, error) {
	t, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case TokNot:
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ltlsyntax.Un(ltlsyntax.KindNot, child), nil
	case TokNext:
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ltlsyntax.Un(ltlsyntax.KindNext, child), nil
	case TokAlways:
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ltlsyntax.Un(ltlsyntax.KindAlways, child), nil
	case TokEventually:
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ltlsyntax.Un(ltlsyntax.KindEventually, child), nil
	case TokLParen:
		inner, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		close, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		if close.kind != TokRParen {
			return nil, &Error{Message: "expected ')'", Column: close.col, Source: p.lex.src}
		}
		return inner, nil
	case TokTrue:
		return ltlsyntax.True, nil
	case TokFalse:
		return ltlsyntax.False, nil
	case TokPredicate:
		isExpr := len(t.text) > 0 && t.text[0] == '{'
		id := p.preds.Intern(t.text, isExpr)
		return ltlsyntax.Lit(id, false), nil
	case TokEOF:
		return nil, &Error{Message: "unexpected end of input, operand expected", Column: t.col, Source: p.lex.src}
	default:
		return nil, &Error{Message: fmt.Sprintf("unexpected token %v, operand expected", t.kind), Column: t.col, Source: p.lex.src}
	}
}
