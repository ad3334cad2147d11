package shapes

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"voxport/voxel"
)

// ErrInvalidShape marks a shape document that failed validation.
var ErrInvalidShape = errors.New("shapes: invalid shape document")

const (
	schemaURL = "https://voxport.local/schemas/shape.schema.json"

	maxSpan  = 128
	maxCells = 1 << 18
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func shapeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft7
		if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Doc is a decoded shape document.
type Doc struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Primitives  []Primitive `yaml:"primitives" json:"primitives"`
}

// Primitive is one drawing step. Exactly one of Box, Sphere and Voxel is set.
type Primitive struct {
	Color  string      `yaml:"color" json:"color"`
	Box    []float64   `yaml:"box,omitempty" json:"box,omitempty"`
	Sphere *SphereSpec `yaml:"sphere,omitempty" json:"sphere,omitempty"`
	Voxel  []float64   `yaml:"voxel,omitempty" json:"voxel,omitempty"`
}

type SphereSpec struct {
	Center []float64 `yaml:"center" json:"center"`
	Radius float64   `yaml:"radius" json:"radius"`
	ScaleY float64   `yaml:"scale_y,omitempty" json:"scale_y,omitempty"`
}

// Parse validates a YAML shape document and decodes it.
func Parse(src []byte) (Doc, error) {
	var raw any
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	// The validator wants JSON-shaped values.
	js, err := json.Marshal(raw)
	if err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	var v any
	if err := json.Unmarshal(js, &v); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	s, err := shapeSchema()
	if err != nil {
		return Doc{}, fmt.Errorf("shapes: compile schema: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	var doc Doc
	if err := json.Unmarshal(js, &doc); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return doc, nil
}

// ParseColor accepts "#rrggbb" or a palette name such as "cyber_blue".
func ParseColor(s string) (uint32, error) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return uint32(v), nil
		}
	}
	if c, ok := paletteNames[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidShape, s)
}

// Build draws the document into a dataset.
func (d Doc) Build() (voxel.Dataset, error) {
	b := voxel.NewBuilder()
	for i, p := range d.Primitives {
		c, err := ParseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		switch {
		case len(p.Box) == 6:
			x := p.Box
			if math.Abs(x[3]-x[0]) > maxSpan || math.Abs(x[4]-x[1]) > maxSpan || math.Abs(x[5]-x[2]) > maxSpan {
				return nil, fmt.Errorf("%w: primitive %d: box wider than %d", ErrInvalidShape, i, maxSpan)
			}
			b.Box(x[0], x[1], x[2], x[3], x[4], x[5], c)
		case p.Sphere != nil:
			s := p.Sphere
			if s.Radius*max(s.ScaleY, 1) > maxSpan/2 {
				return nil, fmt.Errorf("%w: primitive %d: sphere wider than %d", ErrInvalidShape, i, maxSpan)
			}
			b.Sphere(s.Center[0], s.Center[1], s.Center[2], s.Radius, c, s.ScaleY)
		case len(p.Voxel) == 3:
			b.Set(p.Voxel[0], p.Voxel[1], p.Voxel[2], c)
		default:
			return nil, fmt.Errorf("%w: primitive %d has no geometry", ErrInvalidShape, i)
		}
		if b.Len() > maxCells {
			return nil, fmt.Errorf("%w: more than %d voxels", ErrInvalidShape, maxCells)
		}
	}
	return b.Dataset(), nil
}

// Generator returns a generator over the already validated document.
func (d Doc) Generator() (Generator, error) {
	ds, err := d.Build()
	if err != nil {
		return nil, err
	}
	return func() voxel.Dataset {
		out := make(voxel.Dataset, len(ds))
		copy(out, ds)
		return out
	}, nil
}

// LoadFile reads and validates one shape document.
func LoadFile(path string) (Doc, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}
	doc, err := Parse(src)
	if err != nil {
		return Doc{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if _, err := doc.Build(); err != nil {
		return Doc{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// LoadDir registers every *.yaml and *.yml document in dir, sorted by file
// name, after whatever r already holds. It stops at the first bad document.
func LoadDir(r *Registry, dir string) ([]string, error) {
	var files []string
	for _, pat := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pat))
		if err != nil {
			return nil, err
		}
		files = append(files, m...)
	}
	sort.Strings(files)

	var names []string
	for _, f := range files {
		doc, err := LoadFile(f)
		if err != nil {
			return names, err
		}
		gen, err := doc.Generator()
		if err != nil {
			return names, fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
		r.Register(doc.Name, gen)
		names = append(names, doc.Name)
	}
	return names, nil
}

// Export renders ds as a shape document with one voxel primitive per cell.
func Export(name string, ds voxel.Dataset) ([]byte, error) {
	doc := Doc{Name: name}
	for _, d := range ds {
		doc.Primitives = append(doc.Primitives, Primitive{
			Color: fmt.Sprintf("#%06x", d.Color&0xFFFFFF),
			Voxel: []float64{float64(d.X), float64(d.Y), float64(d.Z)},
		})
	}
	return yaml.Marshal(doc)
}
