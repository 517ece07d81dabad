package kpath

import (
	"strconv"
	"strings"
)

type Kind int

const (
	FieldKind Kind = iota
	IndexKind
)

func (k Kind) String() string {
	switch k {
	case FieldKind:
		return "Field"
	case IndexKind:
		return "Index"
	}
	return "<unknown kind>"
}

// Segment is one step of a path.  Field is meaningful for FieldKind, Index
// for IndexKind.
type Segment struct {
	Kind  Kind
	Field string
	Index int
}

func Field(name string) Segment {
	return Segment{Kind: FieldKind, Field: name}
}

func Index(i int) Segment {
	return Segment{Kind: IndexKind, Index: i}
}

func (s Segment) String() string {
	if s.Kind == IndexKind {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Field
}

// KPath is a path from the document root.  The nil (or empty) KPath is the
// root.
type KPath []Segment

// String renders p in canonical form; it is the inverse of Parse.
func (p KPath) String() string {
	var buf strings.Builder
	for i, s := range p {
		switch s.Kind {
		case IndexKind:
			buf.WriteByte('[')
			buf.WriteString(strconv.Itoa(s.Index))
			buf.WriteByte(']')
		default:
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(s.Field)
		}
	}
	return buf.String()
}

// Parse parses the canonical path text.  The empty string is the root.
func Parse(text string) (KPath, error) {
	if text == "" {
		return nil, nil
	}
	var res KPath
	start := 0
	for start <= len(text) {
		end := strings.IndexByte(text[start:], '.')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		segs, err := parsePart(text, start, end)
		if err != nil {
			return nil, err
		}
		res = append(res, segs...)
		start = end + 1
	}
	return res, nil
}

// parsePart parses text[start:end], one dot delimited part: an optional
// name followed by zero or more bracketed indices.  A name cannot contain
// '[', so the first '[' ends it; '.' never occurs inside a part because
// brackets may only hold digits.
func parsePart(text string, start, end int) ([]Segment, error) {
	part := text[start:end]
	lb := strings.IndexByte(part, '[')
	if lb < 0 {
		lb = len(part)
	}
	if len(part) == 0 {
		return nil, &MalformedPathError{Path: text, Offset: start, Reason: "empty segment"}
	}
	var res []Segment
	if lb > 0 {
		res = append(res, Field(part[:lb]))
	}
	i := lb
	for i < len(part) {
		if part[i] != '[' {
			return nil, &MalformedPathError{Path: text, Offset: start + i, Reason: "expected '[' after index"}
		}
		rb := strings.IndexByte(part[i:], ']')
		if rb < 0 {
			return nil, &MalformedPathError{Path: text, Offset: start + i, Reason: "unterminated index"}
		}
		digits := part[i+1 : i+rb]
		n, err := parseIndex(digits)
		if err != nil {
			return nil, &MalformedPathError{Path: text, Offset: start + i + 1, Reason: err.Error()}
		}
		res = append(res, Index(n))
		i += rb + 1
	}
	return res, nil
}

func parseIndex(digits string) (int, error) {
	if digits == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &strconv.NumError{Func: "index", Num: digits, Err: strconv.ErrSyntax}
		}
	}
	return strconv.Atoi(digits)
}

// MustParse is Parse which panics on error, for literals.
func MustParse(text string) KPath {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}
