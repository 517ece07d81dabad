package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/parse"
)

type tips map[string]string

func (t tips) Tooltip(name string) (string, bool) {
	s, ok := t[name]
	return s, ok
}

func TestFind(t *testing.T) {
	root, err := parse.Parse([]byte(`{"name":"Hornet","hp":10,"Stats":{"hp":3,"alive":true},"loot":["a","b"],"boss":false}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want []string
	}{
		{`key == "hp"`, []string{"hp", "Stats.hp"}},
		{`type == "Number" && value > 5`, []string{"hp"}},
		{`index >= 1`, []string{"loot[1]"}},
		{`depth == 0`, []string{""}},
		{`!isLeaf && depth > 0`, []string{"Stats", "loot"}},
		{`tooltip != ""`, []string{"name"}},
		{`isLeaf && getpath("Stats.alive") == true && path startsWith "Stats"`, []string{"Stats.hp", "Stats.alive"}},
		{`has("boss") && key == "boss"`, []string{"boss"}},
		{`getpath("missing") == nil && key == "name"`, []string{"name"}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			q, err := Compile(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			paths, err := q.Find(root, tips{"name": "The display name."})
			if err != nil {
				t.Fatal(err)
			}
			got := make([]string, len(paths))
			for i, p := range paths {
				got[i] = p.String()
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`key ==`, `key`, `nosuch == 1`, `has(1)`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: got %v, want ErrQuery", src, err)
		}
	}
}

func TestFindNilTooltips(t *testing.T) {
	root, err := parse.Parse([]byte(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	q, err := Compile(`isLeaf`)
	if err != nil {
		t.Fatal(err)
	}
	paths, err := q.Find(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]kpath.KPath{kpath.MustParse("a.b")}, paths); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
