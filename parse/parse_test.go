package parse

import (
	"errors"
	"testing"

	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-0.3`},
		{in: `1e14`},
		{in: `"hello"`},
		{in: `"é\t\"q\""`},
		{in: `[]`},
		{in: `{}`},
		{in: `[[]]`},
		{in: `[1,[2,[3]]]`},
		{in: `{"z": 1, "a": 2, "m": {"y": [true, null]}}`},
		{in: "\xEF\xBB\xBF{\"name\": \"x\"}"},
		{in: `{"idleAnimation": [0, 5, 20, true], "startingItems": [["WoodenAxe", 1]]}`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatal(err)
			}
			for _, wire := range []bool{false, true} {
				d, err := encode.Bytes(node, encode.EncodeWire(wire))
				if err != nil {
					t.Fatal(err)
				}
				again, err := Parse(d)
				if err != nil {
					t.Fatalf("re-parse %s: %v", d, err)
				}
				if !ir.Equal(node, again) {
					t.Errorf("round trip changed the tree:\n%s", d)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: token.ErrEmptyDoc},
		{in: `{`, e: token.ErrDocBalance},
		{in: `[1, 2`, e: token.ErrDocBalance},
		{in: `{"a": 1]`, e: token.ErrDocBalance},
		{in: `]`, e: token.ErrDocBalance},
		{in: `{"a" 1}`, e: token.ErrExpected},
		{in: `{1: 2}`, e: token.ErrExpected},
		{in: `{"a": 1,}`, e: token.ErrExpected},
		{in: `[1 2]`, e: token.ErrExpected},
		{in: `{} {}`, e: ErrTrailing},
		{in: `1e400`, e: token.ErrNumber},
		{in: `{"a": tru}`, e: token.ErrLiteral},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			_, err := Parse([]byte(pt.in))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("got %v, want a parse error", err)
			}
			if !errors.Is(err, pt.e) {
				t.Errorf("got %v, want %v", err, pt.e)
			}
		})
	}
}

func TestParseKeyOrderAndDuplicates(t *testing.T) {
	node, err := Parse([]byte(`{"b": 1, "a": 2, "b": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromInt(3)},
		{Key: "a", Val: ir.FromInt(2)},
	})
	if !ir.Equal(want, node) {
		t.Errorf("got %s", encode.MustString(node))
	}
}

func TestParseObject(t *testing.T) {
	if _, err := ParseObject([]byte(`[1]`)); !errors.Is(err, ErrParse) {
		t.Errorf("array root: %v", err)
	}
	if _, err := ParseObject([]byte(`{"Base": {}}`)); err != nil {
		t.Error(err)
	}
}

func TestParsePositions(t *testing.T) {
	in := "{\n    \"name\": \"Hornet\",\n    \"stats\": {\n        \"hp\": 10\n    }\n}"
	pos := map[*ir.Node]*token.Pos{}
	keyPos := map[*ir.Node]*token.Pos{}
	node, err := Parse([]byte(in), ParsePositions(pos), ParseKeyPositions(keyPos))
	if err != nil {
		t.Fatal(err)
	}
	hp := ir.Get(ir.Get(node, "stats"), "hp")
	if l, c := keyPos[hp].LineCol(); l != 3 || c != 8 {
		t.Errorf("hp key at %d:%d", l, c)
	}
	if l, c := pos[hp].LineCol(); l != 3 || c != 14 {
		t.Errorf("hp value at %d:%d", l, c)
	}
	if _, ok := keyPos[node]; ok {
		t.Error("root has a key position")
	}
	if pos[node].I != 0 {
		t.Errorf("root at %d", pos[node].I)
	}
}
