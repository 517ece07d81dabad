package edit

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/parse"
	"github.com/signadot/earthedit/schema"
)

func testSchema(t *testing.T) *schema.Registry {
	t.Helper()
	r := schema.NewRegistry()
	err := r.Register(&schema.Preset{
		Name: "Potion",
		Fields: []schema.Field{
			{Name: "name", Type: ir.StringType},
			{Name: "rarity", Type: ir.StringType, Default: ir.FromString("White"), Enum: []string{"White", "Blue"}},
			{Name: "tags", Type: ir.ArrayType, Default: ir.FromSlice([]*ir.Node{ir.FromString("brew")})},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	r.SetTooltip("rarity", "How rare the item is.")
	return r
}

func newEngine(t *testing.T, text string, opts ...Option) *Engine {
	t.Helper()
	root, err := parse.ParseObject([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	d, err := doc.FromNode(root)
	if err != nil {
		t.Fatal(err)
	}
	return New(d, append([]Option{WithSchema(testSchema(t))}, opts...)...)
}

func checkDoc(t *testing.T, e *Engine, want string) {
	t.Helper()
	if err := e.Document().Check(); err != nil {
		t.Fatalf("document invariants: %v", err)
	}
	if diff := cmp.Diff(want, encode.MustString(e.Document().Root())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func p(text string) kpath.KPath {
	return kpath.MustParse(text)
}

func TestAddRenameRemove(t *testing.T) {
	e := newEngine(t, `{}`)
	for _, want := range []string{"Name", "Name1"} {
		got, err := e.AddProperty(AddRequest{FreeEdit: true, Type: ir.NumberType})
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != want {
			t.Errorf("added %q, want %q", got, want)
		}
		if sel, _ := e.Selection(); !sel.Equal(got) {
			t.Errorf("selection %q, want %q", sel, got)
		}
	}
	checkDoc(t, e, `{"Name":0,"Name1":0}`)

	if res, ok := e.RenameProperty(p("Name1"), " Count "); !ok || res.String() != "Count" {
		t.Fatalf("rename: %q %t", res, ok)
	}
	checkDoc(t, e, `{"Name":0,"Count":0}`)

	if !e.RemoveNode(p("Name")) {
		t.Fatal("remove failed")
	}
	checkDoc(t, e, `{"Count":0}`)
}

func TestAddFreeTypes(t *testing.T) {
	e := newEngine(t, `{"Name":1}`)
	for _, typ := range ir.Types() {
		if _, err := e.AddProperty(AddRequest{Type: typ}); err != nil {
			t.Fatal(err)
		}
	}
	checkDoc(t, e, `{"Name":1,"Name1":"","Name2":0,"Name3":false,"Name4":null,"Name5":{},"Name6":[]}`)
	if _, err := e.AddProperty(AddRequest{Type: ir.Type(42)}); !errors.Is(err, ir.ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
}

func TestAddTarget(t *testing.T) {
	e := newEngine(t, `{"Stats":{"hp":1},"list":[1]}`)
	got, err := e.AddProperty(AddRequest{Parent: p("Stats.hp"), Type: ir.StringType})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Stats.Name" {
		t.Errorf("got %q", got)
	}
	got, err = e.AddProperty(AddRequest{Parent: p("list"), Type: ir.NullType})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Name" {
		t.Errorf("got %q", got)
	}
	for _, target := range []string{"list[0]", "nope"} {
		if _, err := e.AddProperty(AddRequest{Parent: p(target)}); !errors.Is(err, ErrCannotAddProperty) {
			t.Errorf("%s: got %v, want ErrCannotAddProperty", target, err)
		}
	}
	checkDoc(t, e, `{"Stats":{"hp":1,"Name":""},"list":[1],"Name":null}`)
}

func TestAddGuided(t *testing.T) {
	var offered []string
	choice := "tags"
	e := newEngine(t, `{"name":"x"}`, WithChooser(ChooserFunc(func(_ string, c []string) (string, bool) {
		offered = c
		return choice, choice != ""
	})))
	got, err := e.AddProperty(AddRequest{Preset: "Potion"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"rarity", "tags"}, offered); diff != "" {
		t.Errorf("offered mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "tags" {
		t.Errorf("got %q", got)
	}
	checkDoc(t, e, `{"name":"x","tags":["brew"]}`)

	// the default is copied, never shared
	if !e.SetValue(p("tags[0]"), "stew") {
		t.Fatal("set failed")
	}
	f, _ := e.Schema().Lookup("Potion").Field("tags")
	if f.Default.Values[0].String != "brew" {
		t.Errorf("preset default modified: %s", encode.MustString(f.Default))
	}

	choice = "nope"
	if _, err := e.AddProperty(AddRequest{Preset: "Potion"}); !errors.Is(err, ErrCancelled) {
		t.Errorf("got %v, want ErrCancelled", err)
	}
	choice = ""
	if _, err := e.AddProperty(AddRequest{Preset: "Potion"}); !errors.Is(err, ErrCancelled) {
		t.Errorf("got %v, want ErrCancelled", err)
	}
	choice = "rarity"
	if _, err := e.AddProperty(AddRequest{Preset: "Potion"}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.AddProperty(AddRequest{Preset: "Potion"}); !errors.Is(err, ErrNothingToAdd) {
		t.Errorf("got %v, want ErrNothingToAdd", err)
	}
	if _, err := e.AddProperty(AddRequest{Preset: "Elixir"}); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("got %v, want ErrUnknownPreset", err)
	}
	checkDoc(t, e, `{"name":"x","tags":["stew"],"rarity":"White"}`)

	// free editing turns guidance off
	if got, err := e.AddProperty(AddRequest{FreeEdit: true, Preset: "Potion", Type: ir.BoolType}); err != nil || got.String() != "Name" {
		t.Errorf("got %q %v", got, err)
	}
}

func TestAddGuidedComplete(t *testing.T) {
	const full = `{"name":"","rarity":"White","tags":[]}`
	e := newEngine(t, full, WithChooser(ChooserFunc(func(string, []string) (string, bool) {
		t.Error("chooser called with every field present")
		return "", false
	})))
	got, err := e.AddProperty(AddRequest{Preset: "Potion"})
	if !errors.Is(err, ErrNothingToAdd) {
		t.Errorf("got %q %v, want ErrNothingToAdd", got, err)
	}
	checkDoc(t, e, full)
}

func TestRenameRejected(t *testing.T) {
	tests := []struct {
		path, name string
	}{
		{"b", ""},
		{"b", "   "},
		{"b", "[0]"},
		{"b", "x.y"},
		{"b", "x[1]"},
		{"b", "x]"},
		{"b", "a"},
		{"b", "b"},
		{"list[0]", "x"},
		{"", "x"},
		{"nope", "x"},
	}
	for _, tc := range tests {
		t.Run(tc.path+"->"+tc.name, func(t *testing.T) {
			e := newEngine(t, `{"a":1,"b":2,"list":[3]}`)
			if _, ok := e.RenameProperty(p(tc.path), tc.name); ok {
				t.Error("rename accepted")
			}
			checkDoc(t, e, `{"a":1,"b":2,"list":[3]}`)
		})
	}
}

func TestRenameRebasesHandles(t *testing.T) {
	e := newEngine(t, `{"a":1,"Stats":{"hp":{"max":3}},"z":0}`)
	hp := e.Track(p("Stats.hp"))
	hpMax := e.Track(p("Stats.hp.max"))
	other := e.Track(p("z"))
	e.Select(p("Stats.hp.max"))

	res, ok := e.RenameProperty(p("Stats"), "Attrs")
	if !ok || res.String() != "Attrs" {
		t.Fatalf("rename: %q %t", res, ok)
	}
	checkDoc(t, e, `{"a":1,"Attrs":{"hp":{"max":3}},"z":0}`)
	for _, tc := range []struct {
		h    *Handle
		want string
	}{
		{hp, "Attrs.hp"},
		{hpMax, "Attrs.hp.max"},
		{other, "z"},
	} {
		got, ok := tc.h.Path()
		if !ok || got.String() != tc.want {
			t.Errorf("handle at %q %t, want %q", got, ok, tc.want)
		}
	}
	if sel, _ := e.Selection(); sel.String() != "Attrs.hp.max" {
		t.Errorf("selection %q", sel)
	}
}

func TestRemove(t *testing.T) {
	e := newEngine(t, `{"list":["a","b","c"],"o":{"x":1}}`)
	first := e.Track(p("list[0]"))
	last := e.Track(p("list[2]"))
	x := e.Track(p("o.x"))

	if e.RemoveNode(nil) {
		t.Error("removed the root")
	}
	if e.RemoveNode(p("list[3]")) {
		t.Error("removed a missing element")
	}
	if !e.RemoveNode(p("list[0]")) {
		t.Fatal("remove failed")
	}
	checkDoc(t, e, `{"list":["b","c"],"o":{"x":1}}`)
	if first.Valid() {
		t.Error("handle on removed element still valid")
	}
	if got, _ := last.Path(); got.String() != "list[1]" {
		t.Errorf("shifted handle at %q", got)
	}
	if !e.RemoveNode(p("o")) {
		t.Fatal("remove failed")
	}
	if x.Valid() {
		t.Error("handle inside removed subtree still valid")
	}
	if diff := cmp.Diff(1, len(e.Tracked())); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name           string
		doc            string
		dragged, drop  string
		want, wantPath string
	}{
		{
			name:    "into object",
			doc:     `{"dmg":1,"Weapon":{"x":0}}`,
			dragged: "dmg", drop: "Weapon",
			want:     `{"Weapon":{"x":0,"dmg":1}}`,
			wantPath: "Weapon.dmg",
		},
		{
			name:    "collision suffix",
			doc:     `{"dmg":1,"Weapon":{"dmg":0,"dmg_1":0}}`,
			dragged: "dmg", drop: "Weapon",
			want:     `{"Weapon":{"dmg":0,"dmg_1":0,"dmg_2":1}}`,
			wantPath: "Weapon.dmg_2",
		},
		{
			name:    "into array",
			doc:     `{"a":{"b":1},"list":[0]}`,
			dragged: "a", drop: "list",
			want:     `{"list":[0,{"b":1}]}`,
			wantPath: "list[1]",
		},
		{
			name:    "element into object",
			doc:     `{"list":[1,2],"o":{}}`,
			dragged: "list[1]", drop: "o",
			want:     `{"list":[1],"o":{"list_1":2}}`,
			wantPath: "o.list_1",
		},
		{
			name:    "nested element into object",
			doc:     `{"m":[[5]],"o":{}}`,
			dragged: "m[0][0]", drop: "o",
			want:     `{"m":[[]],"o":{"item_0":5}}`,
			wantPath: "o.item_0",
		},
		{
			name:    "before top-level sibling",
			doc:     `{"a":1,"b":2,"o":{"c":3}}`,
			dragged: "o.c", drop: "b",
			want:     `{"a":1,"c":3,"b":2,"o":{}}`,
			wantPath: "c",
		},
		{
			name:    "reorder at top level",
			doc:     `{"a":1,"b":2,"c":3}`,
			dragged: "c", drop: "a",
			want:     `{"c":3,"a":1,"b":2}`,
			wantPath: "c",
		},
		{
			name:    "unresolved target appends to root",
			doc:     `{"o":{"c":3},"z":0}`,
			dragged: "o.c", drop: "nowhere.at.all",
			want:     `{"o":{},"z":0,"c":3}`,
			wantPath: "c",
		},
		{
			name:    "onto root",
			doc:     `{"o":{"c":3},"c":0}`,
			dragged: "o.c", drop: "",
			want:     `{"o":{},"c":0,"c_1":3}`,
			wantPath: "c_1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var notified []string
			e := newEngine(t, tc.doc, WithNotifier(NotifierFunc(func(a kpath.KPath) {
				notified = append(notified, a.String())
			})))
			h := e.Track(p(tc.dragged))
			got, ok := e.Move(p(tc.dragged), p(tc.drop))
			if !ok {
				t.Fatal("move rejected")
			}
			if got.String() != tc.wantPath {
				t.Errorf("moved to %q, want %q", got, tc.wantPath)
			}
			if hp, _ := h.Path(); hp.String() != tc.wantPath {
				t.Errorf("handle at %q, want %q", hp, tc.wantPath)
			}
			if len(notified) != 1 {
				t.Errorf("notified %v", notified)
			}
			checkDoc(t, e, tc.want)
		})
	}
}

func TestMoveRejected(t *testing.T) {
	const text = `{"a":{"b":{"c":1}},"list":[{"d":2}]}`
	tests := []struct {
		dragged, drop string
	}{
		{"a", "a.b"},
		{"a", "a"},
		{"a", "a.b.c"},
		{"list", "list[0]"},
		{"", "a"},
		{"nope", "a"},
	}
	for _, tc := range tests {
		t.Run(tc.dragged+"->"+tc.drop, func(t *testing.T) {
			e := newEngine(t, text)
			if _, ok := e.Move(p(tc.dragged), p(tc.drop)); ok {
				t.Error("move accepted")
			}
			checkDoc(t, e, text)
		})
	}
}

func TestPaste(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		target   string
		clip     string
		want     string
		wantPath string
	}{
		{
			name:   "merge skips existing",
			doc:    `{"o":{"a":1}}`,
			target: "o", clip: `{"a":2,"b":3}`,
			want:     `{"o":{"a":1,"b":3}}`,
			wantPath: "o",
		},
		{
			name:   "named property",
			doc:    `{"o":{"a":1}}`,
			target: "o", clip: `"b": [1, 2]`,
			want:     `{"o":{"a":1,"b":[1,2]}}`,
			wantPath: "o.b",
		},
		{
			name:   "named property present",
			doc:    `{"o":{"a":1}}`,
			target: "o", clip: `"a": 2`,
			want:     `{"o":{"a":1}}`,
			wantPath: "o.a",
		},
		{
			name:   "append to array",
			doc:    `{"list":[1]}`,
			target: "list", clip: `{"x":true}`,
			want:     `{"list":[1,{"x":true}]}`,
			wantPath: "list[1]",
		},
		{
			name:   "scalar onto object falls back to root",
			doc:    `{"o":{}}`,
			target: "o", clip: `42`,
			want:     `{"o":{},"o_copy":42}`,
			wantPath: "o_copy",
		},
		{
			name:   "collision suffix",
			doc:    `{"hp":1,"hp_copy":2,"hp_copy_1":3}`,
			target: "hp", clip: `"s"`,
			want:     `{"hp":1,"hp_copy":2,"hp_copy_1":3,"hp_copy_2":"s"}`,
			wantPath: "hp_copy_2",
		},
		{
			name:   "element target",
			doc:    `{"list":[1]}`,
			target: "list[0]", clip: `[true]`,
			want:     `{"list":[1],"Pasted_copy":[true]}`,
			wantPath: "Pasted_copy",
		},
		{
			name:   "named property onto leaf",
			doc:    `{"hp":1}`,
			target: "hp", clip: `"mp": 2`,
			want:     `{"hp":1,"mp_copy":2}`,
			wantPath: "mp_copy",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, tc.doc)
			got, err := e.PasteMerge(p(tc.target), tc.clip)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tc.wantPath {
				t.Errorf("pasted at %q, want %q", got, tc.wantPath)
			}
			checkDoc(t, e, tc.want)
		})
	}
}

func TestPasteInvalid(t *testing.T) {
	e := newEngine(t, `{"a":1}`)
	changed := false
	e.SetNotifier(NotifierFunc(func(kpath.KPath) { changed = true }))
	for _, clip := range []string{``, `{"a":`, `"a": 1, "b": 2`, `nope`} {
		if _, err := e.PasteMerge(p("a"), clip); !errors.Is(err, ErrInvalidClipboardJSON) {
			t.Errorf("%q: got %v, want ErrInvalidClipboardJSON", clip, err)
		}
	}
	if changed {
		t.Error("notified after failed paste")
	}
	checkDoc(t, e, `{"a":1}`)
}

func TestPasteNoAliasing(t *testing.T) {
	e := newEngine(t, `{"list":[]}`)
	clip, err := ParseClip(`{"v":1}`)
	if err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if _, err := e.Paste(p("list"), clip); err != nil {
			t.Fatal(err)
		}
	}
	if !e.SetValue(p("list[0].v"), 2) {
		t.Fatal("set failed")
	}
	checkDoc(t, e, `{"list":[{"v":2},{"v":1}]}`)
	if diff := cmp.Diff(`{"v":1}`, encode.MustString(clip.Value)); diff != "" {
		t.Errorf("clip modified (-want +got):\n%s", diff)
	}
}

func TestCopyRoundTrip(t *testing.T) {
	e := newEngine(t, `{"Stats":{"hp":10,"tags":["a","b"]},"other":{}}`)
	text, ok := e.CopyNode(p("Stats"))
	if !ok {
		t.Fatal("copy failed")
	}
	if diff := cmp.Diff(`{"hp":10,"tags":["a","b"]}`, text); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := e.PasteMerge(p("other"), text); err != nil {
		t.Fatal(err)
	}
	a, _ := e.Resolve(p("Stats"))
	b, _ := e.Resolve(p("other"))
	if !ir.Equal(a, b) {
		t.Errorf("copy differs: %s", encode.MustString(b))
	}
	if _, ok := e.CopyNode(p("missing")); ok {
		t.Error("copied a missing node")
	}
}

func TestCut(t *testing.T) {
	e := newEngine(t, `{"a":[1,2],"b":true}`)
	text, ok := e.Cut(p("a[0]"))
	if !ok || text != "1" {
		t.Fatalf("cut: %q %t", text, ok)
	}
	if _, ok := e.Cut(nil); ok {
		t.Error("cut the root")
	}
	checkDoc(t, e, `{"a":[2],"b":true}`)
}

func TestSetValue(t *testing.T) {
	e := newEngine(t, `{"n":1,"s":"x","b":false,"z":null,"list":[1],"o":{}}`)
	sel := e.Track(p("n"))
	for _, tc := range []struct {
		path string
		v    any
	}{
		{"n", 2.5},
		{"s", 7},
		{"b", true},
		{"z", nil},
		{"list[0]", "one"},
		{"o", ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromInt(1)}})},
	} {
		if !e.SetValue(p(tc.path), tc.v) {
			t.Errorf("set %s failed", tc.path)
		}
	}
	if e.SetValue(nil, 1) {
		t.Error("set the root")
	}
	checkDoc(t, e, `{"n":2.5,"s":7,"b":true,"z":null,"list":["one"],"o":{"k":1}}`)
	if got, ok := sel.Path(); !ok || got.String() != "n" {
		t.Errorf("handle at %q %t", got, ok)
	}
}

func TestSetValueText(t *testing.T) {
	e := newEngine(t, `{"n":1,"s":"x","b":false,"z":null,"o":{}}`)
	tests := []struct {
		path, text string
		ok         bool
	}{
		{"n", " 12 ", true},
		{"n", "twelve", false},
		{"n", "NaN", false},
		{"b", "true", true},
		{"b", "yes", false},
		{"s", "hello", true},
		{"z", "now text", true},
		{"o", "{}", false},
	}
	for _, tc := range tests {
		if got := e.SetValueText(p(tc.path), tc.text); got != tc.ok {
			t.Errorf("%s=%q: got %t, want %t", tc.path, tc.text, got, tc.ok)
		}
	}
	checkDoc(t, e, `{"n":12,"s":"hello","b":true,"z":"now text","o":{}}`)
}

func TestChangeType(t *testing.T) {
	e := newEngine(t, `{"o":{"x":1},"n":3}`)
	x := e.Track(p("o.x"))
	if !e.ChangeType(p("o"), ir.ArrayType) {
		t.Fatal("change type failed")
	}
	if e.ChangeType(p("n"), ir.NumberType) {
		t.Error("same type changed")
	}
	if x.Valid() {
		t.Error("handle inside replaced object still valid")
	}
	checkDoc(t, e, `{"o":[],"n":3}`)
}

func TestEditorFor(t *testing.T) {
	e := newEngine(t, `{"rarity":"Blue","name":"x","hp":1,"ok":true,"z":null,"list":[1],"o":{}}`)
	tests := []struct {
		path   string
		preset string
		want   Editor
	}{
		{"rarity", "Potion", Editor{Kind: EnumEditor, Type: ir.StringType, Name: "rarity", Options: []string{"White", "Blue"}, Tooltip: "How rare the item is."}},
		{"rarity", "", Editor{Kind: TextEditor, Type: ir.StringType, Name: "rarity", Tooltip: "How rare the item is."}},
		{"name", "Potion", Editor{Kind: TextEditor, Type: ir.StringType, Name: "name"}},
		{"hp", "", Editor{Kind: NumberEditor, Type: ir.NumberType, Name: "hp"}},
		{"ok", "", Editor{Kind: BoolEditor, Type: ir.BoolType, Name: "ok"}},
		{"z", "", Editor{Kind: TextEditor, Type: ir.NullType, Name: "z"}},
		{"list[0]", "", Editor{Kind: NumberEditor, Type: ir.NumberType, Name: "[0]", NameReadOnly: true}},
		{"o", "", Editor{Kind: NoEditor, Type: ir.ObjectType, Name: "o"}},
		{"", "", Editor{Kind: NoEditor, Type: ir.ObjectType, NameReadOnly: true}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, ok := e.EditorFor(p(tc.path), tc.preset)
			if !ok {
				t.Fatal("no editor")
			}
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateFromRaw(t *testing.T) {
	e := newEngine(t, `{"a":{"b":1},"c":2}`)
	e.Select(p("a.b"))
	c := e.Track(p("c"))

	for _, text := range []string{`{"a":`, `[1]`, `{"a":1} x`} {
		if err := e.UpdateFromRaw(text); !errors.Is(err, ErrInvalidRawJSON) {
			t.Errorf("%q: got %v, want ErrInvalidRawJSON", text, err)
		}
	}
	checkDoc(t, e, `{"a":{"b":1},"c":2}`)

	if err := e.UpdateFromRaw(`{"a":{"b":5}}`); err != nil {
		t.Fatal(err)
	}
	checkDoc(t, e, `{"a":{"b":5}}`)
	if sel, ok := e.Selection(); !ok || sel.String() != "a.b" {
		t.Errorf("selection %q %t", sel, ok)
	}
	if c.Valid() {
		t.Error("handle on dropped member still valid")
	}
}

func TestApplyPatch(t *testing.T) {
	e := newEngine(t, `{"z":1,"a":{"b":2}}`)
	if err := e.ApplyPatch([]byte(`[{"op":"replace","path":"/z","value":3},{"op":"add","path":"/a/c","value":4}]`)); err != nil {
		t.Fatal(err)
	}
	checkDoc(t, e, `{"z":3,"a":{"b":2,"c":4}}`)
	if err := e.ApplyPatch([]byte(`[{"op":"replace","path":"/z","value":9},{"op":"remove","path":"/nope"}]`)); !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("got %v, want ErrInvalidPatch", err)
	}
	if err := e.MergePatch([]byte(`{"a":null}`)); err != nil {
		t.Fatal(err)
	}
	checkDoc(t, e, `{"z":3}`)
}

func TestDisplayLabel(t *testing.T) {
	e := newEngine(t, `{"s":"x","n":1.5,"o":{},"list":[{}]}`)
	for path, want := range map[string]string{
		"s":       `"x"`,
		"n":       "1.5",
		"o":       "o",
		"list[0]": "[0]",
		"":        "",
	} {
		got, ok := e.DisplayLabel(p(path))
		if !ok || got != want {
			t.Errorf("%q: got %q %t, want %q", path, got, ok, want)
		}
	}
}

func TestSelection(t *testing.T) {
	e := newEngine(t, `{"a":1}`)
	if _, ok := e.Selection(); ok {
		t.Error("selection on a new engine")
	}
	if !e.Select(p("a")) {
		t.Fatal("select failed")
	}
	if e.Select(p("b")) {
		t.Error("selected a missing node")
	}
	if _, ok := e.Selection(); ok {
		t.Error("failed select kept the old selection")
	}
	e.Select(p("a"))
	e.ClearSelection()
	if _, ok := e.Selection(); ok {
		t.Error("selection survived clear")
	}
}

func TestNoticeTitle(t *testing.T) {
	wrapped := errors.Join(errors.New("ctx"), ErrNothingToAdd)
	if got := NoticeTitle(wrapped); got != "Nothing To Add" {
		t.Errorf("got %q", got)
	}
	if got := NoticeTitle(errors.New("boom")); got != "" {
		t.Errorf("got %q", got)
	}
}
