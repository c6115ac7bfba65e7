package enums

import (
	"fmt"
	"slices"

	"pinout-generator/internal/diagnostic"
)

// Value is one symbolic name of a category together with its integer index.
type Value struct {
	Name  string
	Index int
}

// MaxIndex bounds enum indices; generated lists have one slot per index.
const MaxIndex = 1 << 16

// Category is an ordered list of symbolic names with unique indices.
type Category struct {
	name    string
	values  []Value
	byName  map[string]int
	byIndex map[int]string
}

// NewCategory builds a category, rejecting duplicate names and indices
// outside [0, MaxIndex].
func NewCategory(name string, values []Value) (*Category, error) {
	c := &Category{
		name:    name,
		values:  slices.Clone(values),
		byName:  make(map[string]int, len(values)),
		byIndex: make(map[int]string, len(values)),
	}

	for _, v := range values {
		if v.Index < 0 || v.Index > MaxIndex {
			return nil, fmt.Errorf("category %s: index %d of %q out of range [0, %d]", name, v.Index, v.Name, MaxIndex)
		}

		if _, ok := c.byName[v.Name]; ok {
			return nil, fmt.Errorf("category %s: duplicate name %q", name, v.Name)
		}

		if prev, ok := c.byIndex[v.Index]; ok {
			return nil, fmt.Errorf("category %s: index %d used by both %q and %q", name, v.Index, prev, v.Name)
		}

		c.byName[v.Name] = v.Index
		c.byIndex[v.Index] = v.Name
	}

	return c, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Len returns the number of symbolic names.
func (c *Category) Len() int { return len(c.values) }

// Lookup returns the index of a symbolic name.
func (c *Category) Lookup(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// ReverseLookup returns the symbolic name at an index, or "" when none is defined.
func (c *Category) ReverseLookup(index int) string {
	return c.byIndex[index]
}

// Index is an immutable set of categories keyed by name.
type Index struct {
	categories map[string]*Category
}

// NewIndex builds an index from categories. Later categories with a repeated
// name are rejected.
func NewIndex(categories ...*Category) (*Index, error) {
	idx := &Index{categories: make(map[string]*Category, len(categories))}

	for _, c := range categories {
		if _, ok := idx.categories[c.name]; ok {
			return nil, fmt.Errorf("duplicate category %s", c.name)
		}

		idx.categories[c.name] = c
	}

	return idx, nil
}

// Category returns a loaded category or a CategoryNotFoundError.
func (x *Index) Category(name string) (*Category, error) {
	c, ok := x.categories[name]
	if !ok {
		return nil, &diagnostic.CategoryNotFoundError{Category: name}
	}

	return c, nil
}

// Has reports whether a category is loaded.
func (x *Index) Has(name string) bool {
	_, ok := x.categories[name]
	return ok
}

// Lookup resolves a symbolic name within a category.
func (x *Index) Lookup(category, name string) (int, bool, error) {
	c, err := x.Category(category)
	if err != nil {
		return 0, false, err
	}

	i, ok := c.Lookup(name)

	return i, ok, nil
}

// ReverseLookup resolves an index within a category to its symbolic name.
func (x *Index) ReverseLookup(category string, index int) (string, error) {
	c, err := x.Category(category)
	if err != nil {
		return "", err
	}

	return c.ReverseLookup(index), nil
}

// Names returns the loaded category names, sorted.
func (x *Index) Names() []string {
	names := make([]string, 0, len(x.categories))
	for name := range x.categories {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
