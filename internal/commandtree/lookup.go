// SPDX-License-Identifier: MPL-2.0

package commandtree

import "strings"

// Find resolves a command address to its shell command string.
// The lookup strategy is chosen by the number of tokens:
//
//   - 1: FindUnique(name)
//   - 2: FindInDomain(domain, name)
//   - 3: FindExact(domain, category, name)
//
// Any other count fails with InvalidCommandStructureError.
func (t *Tree) Find(args []string) (string, error) {
	switch len(args) {
	case 1:
		return t.FindUnique(args[0])
	case 2:
		return t.FindInDomain(args[0], args[1])
	case 3:
		return t.FindExact(args[0], args[1], args[2])
	default:
		return "", &InvalidCommandStructureError{Tokens: len(args)}
	}
}

// FindUnique searches the whole tree for a command called name. The name must
// be defined exactly once; zero or several matches both yield a
// CommandNotFoundError labelled with the bare name.
func (t *Tree) FindUnique(name string) (string, error) {
	var (
		found   string
		matches int
	)
	for _, d := range t.domains {
		for _, c := range d {
			cmd, ok := c[name]
			if !ok {
				continue
			}
			matches++
			if matches > 1 {
				return "", &CommandNotFoundError{Label: name}
			}
			found = cmd
		}
	}
	if matches == 0 {
		return "", &CommandNotFoundError{Label: name}
	}
	return found, nil
}

// FindInDomain searches every category of domain for name.
func (t *Tree) FindInDomain(domain, name string) (string, error) {
	if d, ok := t.domains[domain]; ok {
		if cmd, ok := d.lookup(name); ok {
			return cmd, nil
		}
	}
	return "", &CommandNotFoundError{Label: label(domain, name)}
}

// FindExact returns the command at the exact (domain, category, name) path.
func (t *Tree) FindExact(domain, category, name string) (string, error) {
	if cmd, ok := t.Get(domain, category, name); ok {
		return cmd, nil
	}
	return "", &CommandNotFoundError{Label: label(domain, category, name)}
}

func label(segments ...string) string {
	return strings.Join(segments, ".")
}
