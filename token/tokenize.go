package token

import (
	"fmt"
	"unicode/utf8"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Tokenize splits d into JSON tokens.  A leading UTF-8 byte order mark is
// skipped.
func Tokenize(d []byte) ([]Token, error) {
	posDoc := NewPosDoc(d)
	var res []Token
	i, n := 0, len(d)
	if n >= 3 && d[0] == bom[0] && d[1] == bom[1] && d[2] == bom[2] {
		i = 3
	}
	for i < n {
		c := d[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		}
		var (
			tt TokenType
			sz int
		)
		switch c {
		case '{':
			tt, sz = TLCurl, 1
		case '}':
			tt, sz = TRCurl, 1
		case '[':
			tt, sz = TLSquare, 1
		case ']':
			tt, sz = TRSquare, 1
		case ':':
			tt, sz = TColon, 1
		case ',':
			tt, sz = TComma, 1
		case '"':
			m, err := scanString(d[i:], posDoc, i)
			if err != nil {
				return nil, err
			}
			tt, sz = TString, m
		case 't':
			tt, sz = TTrue, 4
			if err := keyword(d[i:], "true", posDoc.Pos(i)); err != nil {
				return nil, err
			}
		case 'f':
			tt, sz = TFalse, 5
			if err := keyword(d[i:], "false", posDoc.Pos(i)); err != nil {
				return nil, err
			}
		case 'n':
			tt, sz = TNull, 4
			if err := keyword(d[i:], "null", posDoc.Pos(i)); err != nil {
				return nil, err
			}
		default:
			if c == '-' || isDigit(c) {
				m, err := scanNumber(d[i:], posDoc.Pos(i))
				if err != nil {
					return nil, err
				}
				tt, sz = TNumber, m
				break
			}
			r, _ := utf8.DecodeRune(d[i:])
			return nil, UnexpectedErr(fmt.Sprintf("%q", r), posDoc.Pos(i))
		}
		res = append(res, Token{Type: tt, Bytes: d[i : i+sz], Pos: posDoc.Pos(i)})
		i += sz
	}
	if len(res) == 0 {
		return nil, NewTokenizeErr(ErrEmptyDoc, posDoc.End())
	}
	return res, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func keyword(d []byte, kw string, pos *Pos) error {
	if len(d) < len(kw) || string(d[:len(kw)]) != kw {
		return NewTokenizeErr(fmt.Errorf("%w: expected %s", ErrLiteral, kw), pos)
	}
	if len(d) > len(kw) && isWordByte(d[len(kw)]) {
		return NewTokenizeErr(fmt.Errorf("%w: trailing characters after %s", ErrLiteral, kw), pos)
	}
	return nil
}

// scanString returns the length of the string token at the start of d,
// quotes included.  off is the offset of d in the document.
func scanString(d []byte, posDoc *PosDoc, off int) (int, error) {
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			if !utf8.Valid(d[1:i]) {
				return 0, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(off))
			}
			return i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return 0, NewTokenizeErr(ErrUnterminated, posDoc.Pos(off))
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(d) || !isHex4(d[i+2:i+6]) {
					return 0, NewTokenizeErr(ErrBadEscape, posDoc.Pos(off+i))
				}
				i += 6
			default:
				return 0, NewTokenizeErr(ErrBadEscape, posDoc.Pos(off+i))
			}
		case c < 0x20:
			if c == '\n' {
				return 0, NewTokenizeErr(ErrUnterminated, posDoc.Pos(off))
			}
			return 0, NewTokenizeErr(ErrUnicodeControl, posDoc.Pos(off+i))
		default:
			i++
		}
	}
	return 0, NewTokenizeErr(ErrUnterminated, posDoc.Pos(off))
}

func isHex4(d []byte) bool {
	for _, c := range d {
		switch {
		case isDigit(c), c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// scanNumber returns the length of the number at the start of d following
// the JSON grammar -?(0|[1-9][0-9]*)(.[0-9]+)?([eE][+-]?[0-9]+)?
func scanNumber(d []byte, pos *Pos) (int, error) {
	i, n := 0, len(d)
	if d[i] == '-' {
		i++
	}
	switch {
	case i < n && d[i] == '0':
		i++
		if i < n && isDigit(d[i]) {
			return 0, LeadingZeroErr(pos)
		}
	case i < n && isDigit(d[i]):
		for i < n && isDigit(d[i]) {
			i++
		}
	default:
		return 0, NewTokenizeErr(fmt.Errorf("%w: missing digits", ErrNumber), pos)
	}
	if i < n && d[i] == '.' {
		i++
		j := i
		for i < n && isDigit(d[i]) {
			i++
		}
		if i == j {
			return 0, NewTokenizeErr(fmt.Errorf("%w: missing fraction digits", ErrNumber), pos)
		}
	}
	if i < n && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		j := i
		for i < n && isDigit(d[i]) {
			i++
		}
		if i == j {
			return 0, NewTokenizeErr(fmt.Errorf("%w: missing exponent digits", ErrNumber), pos)
		}
	}
	if i < n && isWordByte(d[i]) {
		return 0, NewTokenizeErr(fmt.Errorf("%w: trailing characters", ErrNumber), pos)
	}
	return i, nil
}
