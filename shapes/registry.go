// Package shapes produces the voxel datasets the portrait can take: the
// built-in generators and shapes read from YAML documents.
package shapes

import (
	"strconv"

	"voxport/voxel"
)

// Generator builds a dataset. It must return a fresh slice on every call.
type Generator func() voxel.Dataset

type entry struct {
	name string
	gen  Generator
}

// Registry maps shape names to generators, remembering registration order.
type Registry struct {
	entries []entry
	index   map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds or replaces a generator. A replaced name keeps its slot.
func (r *Registry) Register(name string, gen Generator) {
	if gen == nil || name == "" {
		return
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].gen = gen
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry{name: name, gen: gen})
}

func (r *Registry) Lookup(name string) (Generator, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].gen, true
}

// At returns the i-th registered shape, 0-based.
func (r *Registry) At(i int) (string, Generator, bool) {
	if i < 0 || i >= len(r.entries) {
		return "", nil, false
	}
	e := r.entries[i]
	return e.name, e.gen, true
}

// IndexOf returns the registration slot of name, or -1.
func (r *Registry) IndexOf(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	return -1
}

func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.name
	}
	return out
}

func (r *Registry) Len() int { return len(r.entries) }

// Resolve accepts a shape name or a 1-based index as printed by Names.
func (r *Registry) Resolve(s string) (string, Generator, bool) {
	if gen, ok := r.Lookup(s); ok {
		return s, gen, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", nil, false
	}
	return r.At(n - 1)
}

// Builtins returns a registry holding the built-in shapes in their
// presentation order.
func Builtins() *Registry {
	r := NewRegistry()
	r.Register("Avatar", Avatar)
	r.Register("About", About)
	r.Register("Skills", Skills)
	r.Register("Education", Education)
	r.Register("Projects", Projects)
	r.Register("Certifications", Certifications)
	r.Register("Achievements", Achievements)
	r.Register("Contact", Contact)
	return r
}
