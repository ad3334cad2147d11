package shapes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinsOrder(t *testing.T) {
	want := []string{"Avatar", "About", "Skills", "Education", "Projects", "Certifications", "Achievements", "Contact"}
	got := Builtins().Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}
}

func TestBuiltinsProduceDistinctCells(t *testing.T) {
	r := Builtins()
	for _, name := range r.Names() {
		gen, _ := r.Lookup(name)
		ds := gen()
		if len(ds) == 0 {
			t.Fatalf("%s: empty dataset", name)
		}
		seen := make(map[[3]int]bool, len(ds))
		for _, d := range ds {
			k := [3]int{d.X, d.Y, d.Z}
			if seen[k] {
				t.Fatalf("%s: duplicate cell %v", name, k)
			}
			seen[k] = true
		}
		again := gen()
		if len(again) != len(ds) || again[0] != ds[0] {
			t.Fatalf("%s: generator not repeatable", name)
		}
	}
}

func TestAvatarPalette(t *testing.T) {
	colors := map[uint32]bool{}
	for _, d := range Avatar() {
		colors[d.Color] = true
	}
	for _, c := range []uint32{Shoes, Trousers, Shirt, Blazer, RedTie, Skin, Black, CyberBlue, NeonPurple} {
		if !colors[c] {
			t.Fatalf("avatar is missing color %06x", c)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	r := Builtins()
	if _, ok := r.Lookup("Nope"); ok {
		t.Fatalf("unknown name resolved")
	}
	name, _, ok := r.Resolve("3")
	if !ok || name != "Skills" {
		t.Fatalf("resolve 3 = %q, %v", name, ok)
	}
	if _, _, ok := r.Resolve("9"); ok {
		t.Fatalf("index past the end resolved")
	}
	if _, _, ok := r.Resolve("0"); ok {
		t.Fatalf("index 0 resolved")
	}

	n := r.Len()
	r.Register("About", Contact)
	if r.Len() != n || r.IndexOf("About") != 1 {
		t.Fatalf("replacing a generator moved it")
	}
	r.Register("", Contact)
	r.Register("Nil", nil)
	if r.Len() != n {
		t.Fatalf("empty registrations accepted")
	}
}

const tower = `
name: Tower
primitives:
  - box: [-2, 0, -2, 2, 8, 2]
    color: "#94a3b8"
  - sphere: {center: [0, 12, 0], radius: 3, scale_y: 1}
    color: gold_cert
  - voxel: [0, 16, 0]
    color: "#ef4444"
`

func TestParseAndBuild(t *testing.T) {
	doc, err := Parse([]byte(tower))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Name != "Tower" || len(doc.Primitives) != 3 {
		t.Fatalf("doc = %+v", doc)
	}
	ds, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 5x9x5 box, then the sphere, then the tip.
	if len(ds) <= 5*9*5 {
		t.Fatalf("voxels = %d", len(ds))
	}
	if ds[0].Color != Metal {
		t.Fatalf("first color = %06x", ds[0].Color)
	}
	last := ds[len(ds)-1]
	if last.X != 0 || last.Y != 16 || last.Z != 0 || last.Color != RedTie {
		t.Fatalf("tip = %+v", last)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"no name":       "primitives:\n  - voxel: [0,0,0]\n    color: white\n",
		"no primitives": "name: X\nprimitives: []\n",
		"short box":     "name: X\nprimitives:\n  - box: [0,0,0]\n    color: white\n",
		"two shapes":    "name: X\nprimitives:\n  - box: [0,0,0,1,1,1]\n    voxel: [0,0,0]\n    color: white\n",
		"bad color":     "name: X\nprimitives:\n  - voxel: [0,0,0]\n    color: \"#12\"\n",
		"extra field":   "name: X\nsize: 3\nprimitives:\n  - voxel: [0,0,0]\n    color: white\n",
		"not yaml":      "name: [",
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); !errors.Is(err, ErrInvalidShape) {
			t.Fatalf("%s: err = %v, want ErrInvalidShape", name, err)
		}
	}
}

func TestBuildRejectsUnknownPaletteName(t *testing.T) {
	doc, err := Parse([]byte("name: X\nprimitives:\n  - voxel: [0,0,0]\n    color: mauve\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := doc.Build(); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildRejectsHugeBox(t *testing.T) {
	doc, err := Parse([]byte("name: X\nprimitives:\n  - box: [0,0,0,1000,1,1]\n    color: white\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := doc.Build(); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("b_tower.yaml", tower)
	write("a_dot.yml", "name: Dot\nprimitives:\n  - voxel: [1,2,3]\n    color: white\n")
	write("notes.txt", "ignored")

	r := Builtins()
	names, err := LoadDir(r, dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(names) != 2 || names[0] != "Dot" || names[1] != "Tower" {
		t.Fatalf("names = %v", names)
	}
	if r.IndexOf("Dot") != 8 || r.IndexOf("Tower") != 9 {
		t.Fatalf("loaded shapes not after the built-ins: %v", r.Names())
	}
	gen, _ := r.Lookup("Dot")
	ds := gen()
	ds[0].X = 99
	if gen()[0].X != 1 {
		t.Fatalf("generator shares its slice")
	}

	write("c_bad.yaml", "name: Bad\n")
	if _, err := LoadDir(Builtins(), dir); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	src := About()
	out, err := Export("AboutCopy", src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	doc, err := Parse(out)
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	ds, err := doc.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ds) != len(src) {
		t.Fatalf("voxels = %d, want %d", len(ds), len(src))
	}
	for i := range src {
		if ds[i] != src[i] {
			t.Fatalf("voxel %d = %+v, want %+v", i, ds[i], src[i])
		}
	}
}
