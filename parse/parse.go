package parse

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/token"
)

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

// Parse parses a single JSON value.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	p := &parser{toks: toks, opts: pOpts}
	node, err := p.value()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if p.i < len(p.toks) {
		tok := &p.toks[p.i]
		return nil, fmt.Errorf("%w: %w: %s at %s", ErrParse, ErrTrailing, tok.Bytes, tok.Pos)
	}
	return node, nil
}

// ParseObject parses a document whose root must be an object.
func ParseObject(d []byte, opts ...ParseOption) (*ir.Node, error) {
	node, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: document root is %s, not an object", ErrParse, node.Type)
	}
	return node, nil
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) endPos() *token.Pos {
	last := &p.toks[len(p.toks)-1]
	return last.Pos.D.End()
}

func (p *parser) next(what string) (*token.Token, error) {
	tok := p.peek()
	if tok == nil {
		return nil, token.NewTokenizeErr(fmt.Errorf("%w: expected %s", token.ErrUnterminated, what), p.endPos())
	}
	p.i++
	return tok, nil
}

func (p *parser) value() (*ir.Node, error) {
	tok, err := p.next("value")
	if err != nil {
		return nil, err
	}
	var node *ir.Node
	switch tok.Type {
	case token.TLCurl:
		node, err = p.object(tok)
	case token.TLSquare:
		node, err = p.array(tok)
	case token.TString:
		var s string
		s, err = unquote(tok)
		node = ir.FromString(s)
	case token.TNumber:
		var f float64
		f, err = number(tok)
		node = ir.FromNumber(f)
	case token.TTrue:
		node = ir.FromBool(true)
	case token.TFalse:
		node = ir.FromBool(false)
	case token.TNull:
		node = ir.Null()
	case token.TRCurl, token.TRSquare:
		return nil, &token.ErrImbalancedStructure{Close: tok}
	default:
		return nil, token.UnexpectedErr(string(tok.Bytes), tok.Pos)
	}
	if err != nil {
		return nil, err
	}
	if p.opts.positions != nil {
		p.opts.positions[node] = tok.Pos
	}
	return node, nil
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	res := ir.EmptyObject()
	tok := p.peek()
	if tok != nil && tok.Type == token.TRCurl {
		p.i++
		return res, nil
	}
	for {
		keyTok, err := p.next("key")
		if err != nil {
			return nil, &token.ErrImbalancedStructure{Open: open}
		}
		if keyTok.Type != token.TString {
			return nil, token.ExpectedErr("string key", keyTok.Pos)
		}
		key, err := unquote(keyTok)
		if err != nil {
			return nil, err
		}
		colon, err := p.next("':'")
		if err != nil {
			return nil, err
		}
		if colon.Type != token.TColon {
			return nil, token.ExpectedErr("':'", colon.Pos)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if p.opts.keyPositions != nil {
			p.opts.keyPositions[v] = keyTok.Pos
		}
		if i := res.IndexOf(key); i >= 0 {
			res.Values[i] = v
		} else {
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, v)
		}
		sep, err := p.next("',' or '}'")
		if err != nil {
			return nil, &token.ErrImbalancedStructure{Open: open}
		}
		switch sep.Type {
		case token.TComma:
		case token.TRCurl:
			return res, nil
		case token.TRSquare:
			return nil, &token.ErrImbalancedStructure{Open: open, Close: sep}
		default:
			return nil, token.ExpectedErr("',' or '}'", sep.Pos)
		}
	}
}

func (p *parser) array(open *token.Token) (*ir.Node, error) {
	res := ir.FromSlice(nil)
	tok := p.peek()
	if tok != nil && tok.Type == token.TRSquare {
		p.i++
		return res, nil
	}
	for {
		if p.peek() == nil {
			return nil, &token.ErrImbalancedStructure{Open: open}
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		sep, err := p.next("',' or ']'")
		if err != nil {
			return nil, &token.ErrImbalancedStructure{Open: open}
		}
		switch sep.Type {
		case token.TComma:
		case token.TRSquare:
			return res, nil
		case token.TRCurl:
			return nil, &token.ErrImbalancedStructure{Open: open, Close: sep}
		default:
			return nil, token.ExpectedErr("',' or ']'", sep.Pos)
		}
	}
}

func unquote(tok *token.Token) (string, error) {
	var s string
	if err := json.Unmarshal(tok.Bytes, &s); err != nil {
		return "", token.NewTokenizeErr(fmt.Errorf("%w: %w", token.ErrBadEscape, err), tok.Pos)
	}
	return s, nil
}

func number(tok *token.Token) (float64, error) {
	f, err := strconv.ParseFloat(string(tok.Bytes), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, token.NewTokenizeErr(fmt.Errorf("%w: %s out of range", token.ErrNumber, tok.Bytes), tok.Pos)
	}
	return f, nil
}
