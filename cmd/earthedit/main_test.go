package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/earthedit/edit"

	"github.com/scott-cotton/cli"
)

func compact() *MainConfig {
	return &MainConfig{X: true}
}

func TestEditCommands(t *testing.T) {
	tests := []struct {
		name string
		in   string
		run  func(in io.Reader, w io.Writer) error
		want string
	}{
		{
			name: "rename",
			in:   `{"Base":{"hp":1,"mp":2}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doRename(compact(), in, w, []string{"Base.hp", "health"})
			},
			want: `{"Base":{"health":1,"mp":2}}` + "\n",
		},
		{
			name: "rm",
			in:   `{"Base":{"hp":1,"mp":2}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doRm(compact(), in, w, []string{"Base.hp"})
			},
			want: `{"Base":{"mp":2}}` + "\n",
		},
		{
			name: "mv element into object",
			in:   `{"list":["a","b"],"Base":{}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doMv(compact(), in, w, []string{"list[0]", "Base"})
			},
			want: `{"list":["b"],"Base":{"list_0":"a"}}` + "\n",
		},
		{
			name: "paste merges missing keys",
			in:   `{"Base":{"hp":1}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doPaste(&PasteConfig{MainConfig: compact()}, in, w, []string{"Base", `{"hp":5,"mp":3}`})
			},
			want: `{"Base":{"hp":1,"mp":3}}` + "\n",
		},
		{
			name: "set number",
			in:   `{"Base":{"hp":1}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doSet(&SetConfig{MainConfig: compact()}, in, w, []string{"Base.hp", "7"})
			},
			want: `{"Base":{"hp":7}}` + "\n",
		},
		{
			name: "set with type change",
			in:   `{"Base":{"hp":1}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doSet(&SetConfig{MainConfig: compact(), Type: "Boolean"}, in, w, []string{"Base.hp", "true"})
			},
			want: `{"Base":{"hp":true}}` + "\n",
		},
		{
			name: "set enum option",
			in:   `{"rarity":"White"}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &SetConfig{MainConfig: compact()}
				cfg.Preset = "Item"
				return doSet(cfg, in, w, []string{"rarity", "Blue"})
			},
			want: `{"rarity":"Blue"}` + "\n",
		},
		{
			name: "add free",
			in:   `{"Base":{"hp":1}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doAdd(&AddConfig{MainConfig: compact(), Type: "Number"}, in, w, []string{"Base"})
			},
			want: `{"Base":{"hp":1,"Name":0}}` + "\n",
		},
		{
			name: "add guided",
			in:   `{"name":"x"}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &AddConfig{MainConfig: compact(), Type: "String", Field: "Base"}
				cfg.Preset = "Empty"
				return doAdd(cfg, in, w, []string{""})
			},
			want: `{"name":"x","Base":{}}` + "\n",
		},
		{
			name: "add free with preset",
			in:   `{"Base":{}}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &AddConfig{MainConfig: compact(), Type: "Bool", Free: true}
				cfg.Preset = "Empty"
				return doAdd(cfg, in, w, []string{""})
			},
			want: `{"Base":{},"Name":false}` + "\n",
		},
		{
			name: "cut prints the clip",
			in:   `{"Base":{"hp":1}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doCut(compact(), in, w, []string{"Base"})
			},
			want: `{"hp":1}` + "\n",
		},
		{
			name: "get",
			in:   `{"Base":{"list":[1,{"a":true}]}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doGet(compact(), in, w, []string{"Base.list[1]"})
			},
			want: `{"a":true}` + "\n",
		},
		{
			name: "copy",
			in:   `{"Base":{"name":"Sword"}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doCopy(&MainConfig{}, in, w, []string{"Base"})
			},
			want: `{"name":"Sword"}` + "\n",
		},
		{
			name: "find",
			in:   `{"Base":{"hp":1,"name":"x"},"list":[2]}`,
			run: func(in io.Reader, w io.Writer) error {
				return doFind(&FindConfig{MainConfig: compact()}, in, w, []string{`isLeaf && type == "Number"`})
			},
			want: "Base.hp\nlist[0]\n",
		},
		{
			name: "find with labels",
			in:   `{"Base":{"hp":1,"name":"x"},"list":[2]}`,
			run: func(in io.Reader, w io.Writer) error {
				return doFind(&FindConfig{MainConfig: compact(), Labels: true}, in, w, []string{`type == "Number"`})
			},
			want: "Base.hp\t1\nlist[0]\t2\n",
		},
		{
			name: "tree",
			in:   `{"Base":{"hp":1},"list":[true]}`,
			run: func(in io.Reader, w io.Writer) error {
				return doTree(&TreeConfig{MainConfig: compact(), Depth: -1}, in, w, nil)
			},
			want: "Base\n  hp: 1\nlist\n  [0]: true\n",
		},
		{
			name: "tree collapsed",
			in:   `{"Base":{"hp":1},"list":[true],"n":null}`,
			run: func(in io.Reader, w io.Writer) error {
				return doTree(&TreeConfig{MainConfig: compact(), Depth: 0}, in, w, nil)
			},
			want: "Base ...\nlist ...\nn: null\n",
		},
		{
			name: "fmt",
			in:   `{"a":[1,2]}`,
			run: func(in io.Reader, w io.Writer) error {
				return doFmt(&MainConfig{}, in, w, nil)
			},
			want: "{\n    \"a\": [\n        1,\n        2\n    ]\n}\n",
		},
		{
			name: "diff shows changed lines",
			in:   `{"a": 1}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &MainConfig{D: true}
				return doRename(cfg, in, w, []string{"a", "b"})
			},
			want: "  {\n-     \"a\": 1\n+     \"b\": 1\n  }\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := tc.run(strings.NewReader(tc.in), &out); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		run  func(in io.Reader, w io.Writer) error
		want error
	}{
		{
			name: "rename root",
			in:   `{"a":1}`,
			run: func(in io.Reader, w io.Writer) error {
				return doRename(compact(), in, w, []string{"", "b"})
			},
			want: errRejected,
		},
		{
			name: "malformed path",
			in:   `{"a":1}`,
			run: func(in io.Reader, w io.Writer) error {
				return doRm(compact(), in, w, []string{"a["})
			},
			want: cli.ErrUsage,
		},
		{
			name: "invalid clip",
			in:   `{"a":{}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doPaste(&PasteConfig{MainConfig: compact()}, in, w, []string{"a", "{"})
			},
			want: edit.ErrInvalidClipboardJSON,
		},
		{
			name: "guided add lists candidates",
			in:   `{"name":"x"}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &AddConfig{MainConfig: compact(), Type: "String"}
				cfg.Preset = "Empty"
				return doAdd(cfg, in, w, []string{""})
			},
			want: cli.ErrUsage,
		},
		{
			name: "guided add nothing missing",
			in:   `{"Base":{}}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &AddConfig{MainConfig: compact(), Type: "String"}
				cfg.Preset = "Empty"
				return doAdd(cfg, in, w, []string{""})
			},
			want: edit.ErrNothingToAdd,
		},
		{
			name: "enum rejects other values",
			in:   `{"rarity":"White"}`,
			run: func(in io.Reader, w io.Writer) error {
				cfg := &SetConfig{MainConfig: compact()}
				cfg.Preset = "Item"
				return doSet(cfg, in, w, []string{"rarity", "Gold"})
			},
			want: cli.ErrUsage,
		},
		{
			name: "set container",
			in:   `{"Base":{}}`,
			run: func(in io.Reader, w io.Writer) error {
				return doSet(&SetConfig{MainConfig: compact()}, in, w, []string{"Base", "1"})
			},
			want: errRejected,
		},
		{
			name: "write stdin",
			in:   `{"a":1}`,
			run: func(in io.Reader, w io.Writer) error {
				return doRm(&MainConfig{W: true}, in, w, []string{"a"})
			},
			want: cli.ErrUsage,
		},
		{
			name: "query",
			in:   `{}`,
			run: func(in io.Reader, w io.Writer) error {
				return doFind(&FindConfig{MainConfig: compact()}, in, w, []string{"key"})
			},
			want: cli.ErrUsage,
		},
		{
			name: "unknown preset",
			run: func(in io.Reader, w io.Writer) error {
				return doFields(compact(), in, w, []string{"Nope"})
			},
			want: edit.ErrUnknownPreset,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run(strings.NewReader(tc.in), io.Discard)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestWriteBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enemy.json")
	if err := os.WriteFile(path, []byte(`{"Base":{"hp":1}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := doRename(&MainConfig{W: true}, nil, &out, []string{"Base.hp", "health", path}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Base.health\n" {
		t.Errorf("got output %q", got)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"Base\": {\n        \"health\": 1\n    }\n}\n"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestPatch(t *testing.T) {
	dir := t.TempDir()
	patchFile := filepath.Join(dir, "patch.json")
	if err := os.WriteFile(patchFile, []byte(`{"hp":null,"mp":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cfg := &PatchConfig{MainConfig: compact(), Merge: true}
	if err := doPatch(cfg, strings.NewReader(`{"hp":1,"name":"x"}`), &out, []string{patchFile}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"name":"x","mp":2}`+"\n", out.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	err := doPatch(&PatchConfig{MainConfig: compact()}, strings.NewReader(`{}`), io.Discard, []string{patchFile})
	if !errors.Is(err, edit.ErrInvalidPatch) {
		t.Errorf("got %v, want ErrInvalidPatch", err)
	}
}

func TestDiffPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	if err := os.WriteFile(a, []byte(`{"a":1,"b":2}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cfg := &DiffConfig{MainConfig: compact(), Paths: true}
	differs, err := doDiff(cfg, strings.NewReader(`{"a":3,"c":4}`), &out, []string{a, "-"})
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Error("no difference reported")
	}
	want := "- b: 2\n~ a: 1 -> 3\n+ c: 4\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewAndFields(t *testing.T) {
	var out bytes.Buffer
	if err := doNew(&NewConfig{MainConfig: compact()}, &out, []string{"untitled"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != `{"Base":{}}`+"\n" {
		t.Errorf("new: got %q", got)
	}

	t.Setenv("EARTHEDIT_HOME", t.TempDir())
	t.Setenv("EARTHEDIT_RECENT", filepath.Join(t.TempDir(), "recent.json"))
	out.Reset()
	if err := doNew(&NewConfig{MainConfig: compact(), Create: true}, &out, []string{"goblin"}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(strings.TrimSpace(out.String())); err != nil {
		t.Errorf("created file: %v", err)
	}

	out.Reset()
	if err := doFields(compact(), strings.NewReader(`{"Base":{}}`), &out, []string{"Empty", ""}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("fields of complete object: %q", out.String())
	}
	out.Reset()
	if err := doFields(compact(), nil, &out, []string{"Empty"}); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "Base\tObject\t{}\n" {
		t.Errorf("fields: got %q", got)
	}
}
