// SPDX-License-Identifier: MPL-2.0

package commandtree

import (
	"maps"
	"slices"
)

type (
	// Category maps command names to shell command strings.
	Category map[string]string

	// Domain maps category names to their commands.
	Domain map[string]Category

	// Tree is the merged domain -> category -> name -> command namespace.
	// The zero value is an empty tree ready to use.
	Tree struct {
		domains map[string]Domain
	}

	// Entry is a single command together with its full address.
	Entry struct {
		Domain   string
		Category string
		Name     string
		Command  string
	}
)

// New creates an empty Tree.
func New() *Tree {
	return &Tree{domains: make(map[string]Domain)}
}

// FromMap builds a Tree from a decoded nested mapping without duplicate checks.
// The input is copied; later changes to raw do not affect the tree.
// Empty domains and categories are kept so they show up in listings.
func FromMap(raw map[string]map[string]map[string]string) *Tree {
	t := New()
	for domain, categories := range raw {
		d := t.ensureDomain(domain)
		for category, commands := range categories {
			c := d.ensureCategory(category)
			maps.Copy(c, commands)
		}
	}
	return t
}

// Len returns the number of commands in the tree.
func (t *Tree) Len() int {
	n := 0
	for _, d := range t.domains {
		for _, c := range d {
			n += len(c)
		}
	}
	return n
}

// Domains returns the domain names in sorted order.
func (t *Tree) Domains() []string {
	return slices.Sorted(maps.Keys(t.domains))
}

// Domain returns the named domain. The returned map must not be modified.
func (t *Tree) Domain(name string) (Domain, bool) {
	d, ok := t.domains[name]
	return d, ok
}

// Categories returns the category names of a domain in sorted order,
// or nil if the domain does not exist.
func (t *Tree) Categories(domain string) []string {
	d, ok := t.domains[domain]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(d))
}

// Get returns the command stored at the exact (domain, category, name) path.
func (t *Tree) Get(domain, category, name string) (string, bool) {
	cmd, ok := t.domains[domain][category][name]
	return cmd, ok
}

// Add inserts a single command, creating the domain and category as needed.
// It fails with DuplicateCommandError if name is already defined anywhere in
// domain, regardless of category.
func (t *Tree) Add(domain, category, name, command string) error {
	if _, exists := t.domains[domain].lookup(name); exists {
		return &DuplicateCommandError{Domain: domain, Command: name}
	}
	t.ensureDomain(domain).ensureCategory(category)[name] = command
	return nil
}

// Merge copies every command of source into t.
//
// Commands are visited in sorted (domain, category, name) order. The first
// duplicate aborts the merge with a DuplicateCommandError; commands merged
// before it stay in t. Callers that need all-or-nothing semantics must merge
// into a scratch tree first.
func (t *Tree) Merge(source *Tree) error {
	if source == nil {
		return nil
	}
	for _, domain := range source.Domains() {
		d := source.domains[domain]
		// Keep empty domains and categories visible after the merge.
		t.ensureDomain(domain)
		for _, category := range slices.Sorted(maps.Keys(d)) {
			c := d[category]
			t.domains[domain].ensureCategory(category)
			for _, name := range slices.Sorted(maps.Keys(c)) {
				if err := t.Add(domain, category, name, c[name]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// MergeConfigs merges other onto base and returns base. A nil base is treated
// as an empty tree. On error the partially merged base is still returned.
func MergeConfigs(base, other *Tree) (*Tree, error) {
	if base == nil {
		base = New()
	}
	if err := base.Merge(other); err != nil {
		return base, err
	}
	return base, nil
}

// Entries returns every command sorted by domain, category and name.
func (t *Tree) Entries() []Entry {
	entries := make([]Entry, 0, t.Len())
	for _, domain := range t.Domains() {
		d := t.domains[domain]
		for _, category := range slices.Sorted(maps.Keys(d)) {
			c := d[category]
			for _, name := range slices.Sorted(maps.Keys(c)) {
				entries = append(entries, Entry{
					Domain:   domain,
					Category: category,
					Name:     name,
					Command:  c[name],
				})
			}
		}
	}
	return entries
}

func (t *Tree) ensureDomain(name string) Domain {
	if t.domains == nil {
		t.domains = make(map[string]Domain)
	}
	d, ok := t.domains[name]
	if !ok {
		d = make(Domain)
		t.domains[name] = d
	}
	return d
}

func (d Domain) ensureCategory(name string) Category {
	c, ok := d[name]
	if !ok {
		c = make(Category)
		d[name] = c
	}
	return c
}

// lookup returns the first command called name across the domain's categories.
// Categories are visited in sorted order so the result is stable.
func (d Domain) lookup(name string) (string, bool) {
	for _, category := range slices.Sorted(maps.Keys(d)) {
		if cmd, ok := d[category][name]; ok {
			return cmd, true
		}
	}
	return "", false
}
