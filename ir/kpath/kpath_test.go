package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/earthedit/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want KPath
	}{
		{"", nil},
		{"name", KPath{Field("name")}},
		{"stats.hp", KPath{Field("stats"), Field("hp")}},
		{"items[0]", KPath{Field("items"), Index(0)}},
		{"items[0].tags[2]", KPath{Field("items"), Index(0), Field("tags"), Index(2)}},
		{"grid[1][3]", KPath{Field("grid"), Index(1), Index(3)}},
		{"[0]", KPath{Index(0)}},
		{"[0][12].a", KPath{Index(0), Index(12), Field("a")}},
		{"odd]name", KPath{Field("odd]name")}},
		{"with space.x", KPath{Field("with space"), Field("x")}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if s := got.String(); s != tc.in {
				t.Errorf("render %q, want %q", s, tc.in)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{
		"a[",
		"a[0",
		"a[x]",
		"a[-1]",
		"a[]",
		"a[0]b",
		"a..b",
		".a",
		"a.",
		"a[1.5]",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrMalformedPath) {
				t.Fatalf("Parse(%q) err = %v, want malformed", in, err)
			}
			var me *MalformedPathError
			if !errors.As(err, &me) || me.Path != in {
				t.Errorf("error does not carry path: %v", err)
			}
		})
	}
}

func TestIsAncestor(t *testing.T) {
	tests := []struct {
		candidate, of string
		want          bool
	}{
		{"", "a.b", true},
		{"outer", "outer.inner", true},
		{"outer", "outer", true},
		{"out", "outer.inner", false},
		{"items", "items[3].name", true},
		{"items[1]", "items[10]", false},
		{"a.b", "a", false},
	}
	for _, tc := range tests {
		got := IsAncestor(MustParse(tc.candidate), MustParse(tc.of))
		if got != tc.want {
			t.Errorf("IsAncestor(%q, %q) = %v, want %v", tc.candidate, tc.of, got, tc.want)
		}
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(KPath, 1, 4)
	base[0] = Field("a")
	x := base.Child("x")
	y := base.Child("y")
	if x.String() != "a.x" || y.String() != "a.y" {
		t.Errorf("children alias: %q %q", x, y)
	}
	p := MustParse("a.b.c").Parent()
	q := p.Child("z")
	if q.String() != "a.b.z" {
		t.Errorf("parent append: %q", q)
	}
}

func testDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Hornet")},
		{Key: "idleAnimation", Val: ir.FromSlice([]*ir.Node{ir.FromInt(0), ir.FromInt(5), ir.FromInt(20), ir.FromBool(true)})},
		{Key: "startingItems", Val: ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{ir.FromString("WoodenAxe"), ir.FromInt(1)}),
		})},
		{Key: "stats", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "hp", Val: ir.FromInt(10)}})},
	})
}

func TestResolve(t *testing.T) {
	root := testDoc()
	tests := []struct {
		path string
		want *ir.Node
	}{
		{"", root},
		{"name", ir.FromString("Hornet")},
		{"idleAnimation[3]", ir.FromBool(true)},
		{"startingItems[0][0]", ir.FromString("WoodenAxe")},
		{"stats.hp", ir.FromInt(10)},
		{"stats.mp", nil},
		{"idleAnimation[4]", nil},
		{"name[0]", nil},
		{"stats[0]", nil},
		{"idleAnimation.x", nil},
		{"stats.hp[", nil},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := ResolveText(root, tc.path)
			if tc.want == nil {
				if ok {
					t.Fatalf("resolved %q to %v", tc.path, got)
				}
				return
			}
			if !ok || !ir.Equal(tc.want, got) {
				t.Fatalf("resolve %q = %v %v", tc.path, got, ok)
			}
		})
	}
}

func TestWalkRoundTrip(t *testing.T) {
	root := testDoc()
	n := 0
	Walk(root, func(p KPath, node *ir.Node) bool {
		n++
		q, err := Parse(p.String())
		if err != nil {
			t.Fatalf("parse %q: %v", p, err)
		}
		if !q.Equal(p) && !(len(q) == 0 && len(p) == 0) {
			t.Errorf("round trip %q -> %v", p, q)
		}
		got, ok := Resolve(root, q)
		if !ok || got != node {
			t.Errorf("resolve %q did not return the enumerated node", p)
		}
		return true
	})
	if n != 13 {
		t.Errorf("walked %d nodes, want 13", n)
	}
}
