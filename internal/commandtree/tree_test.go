// SPDX-License-Identifier: MPL-2.0

package commandtree

import (
	"errors"
	"slices"
	"testing"
)

func rustTree() *Tree {
	return FromMap(map[string]map[string]map[string]string{
		"rust": {
			"build": {
				"debug":   "cargo build",
				"release": "cargo build --release",
			},
		},
	})
}

func TestFromMap_CopiesInput(t *testing.T) {
	t.Parallel()

	raw := map[string]map[string]map[string]string{
		"A": {"B": {"c": "X"}},
	}
	tree := FromMap(raw)
	raw["A"]["B"]["c"] = "changed"

	got, ok := tree.Get("A", "B", "c")
	if !ok || got != "X" {
		t.Errorf("Get(A, B, c) = %q, %v; want %q, true", got, ok, "X")
	}
}

func TestTree_Len(t *testing.T) {
	t.Parallel()

	if n := New().Len(); n != 0 {
		t.Errorf("New().Len() = %d, want 0", n)
	}
	if n := rustTree().Len(); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
}

func TestTree_Add(t *testing.T) {
	t.Parallel()

	tree := New()
	if err := tree.Add("rust", "build", "debug", "cargo build"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	tests := []struct {
		name     string
		domain   string
		category string
		cmd      string
		wantErr  bool
	}{
		{name: "same path", domain: "rust", category: "build", cmd: "debug", wantErr: true},
		{name: "same domain and name, other category", domain: "rust", category: "test", cmd: "debug", wantErr: true},
		{name: "same name, other domain", domain: "go", category: "build", cmd: "debug"},
		{name: "same category, other name", domain: "rust", category: "build", cmd: "release"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.Add(tt.domain, tt.category, tt.cmd, "true")
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Add() returned unexpected error: %v", err)
				}
				return
			}
			var dupErr *DuplicateCommandError
			if !errors.As(err, &dupErr) {
				t.Fatalf("Add() error = %v, want *DuplicateCommandError", err)
			}
			if dupErr.Domain != tt.domain || dupErr.Command != tt.cmd {
				t.Errorf("DuplicateCommandError = {%s, %s}, want {%s, %s}", dupErr.Domain, dupErr.Command, tt.domain, tt.cmd)
			}
			if !errors.Is(err, ErrDuplicateCommand) {
				t.Error("errors.Is(err, ErrDuplicateCommand) should be true")
			}
		})
	}
}

func TestTree_ZeroValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fill func(tr *Tree) error
		want int
	}{
		{name: "read only", fill: func(*Tree) error { return nil }},
		{name: "add", fill: func(tr *Tree) error { return tr.Add("rust", "build", "debug", "cargo build") }, want: 1},
		{
			name: "merge",
			fill: func(tr *Tree) error {
				return tr.Merge(FromMap(map[string]map[string]map[string]string{
					"go": {"build": {"all": "go build ./..."}, "empty": {}},
				}))
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var tr Tree
			if err := tt.fill(&tr); err != nil {
				t.Fatalf("fill returned error: %v", err)
			}
			if tr.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", tr.Len(), tt.want)
			}
			if len(tr.Entries()) != tt.want {
				t.Errorf("Entries() = %v", tr.Entries())
			}
			if _, err := tr.Find([]string{"missing"}); !errors.Is(err, ErrCommandNotFound) {
				t.Errorf("Find(missing) error = %v, want ErrCommandNotFound", err)
			}
		})
	}
}

func TestMergeConfigs_DisjointTrees(t *testing.T) {
	t.Parallel()

	base := FromMap(map[string]map[string]map[string]string{
		"A": {"B": {"debug": "cmd1"}},
	})
	other := FromMap(map[string]map[string]map[string]string{
		"A":      {"test": {"unit": "cmd2"}},
		"python": {"run": {"script": "cmd3"}},
	})

	merged, err := MergeConfigs(base, other)
	if err != nil {
		t.Fatalf("MergeConfigs() returned error: %v", err)
	}

	want := []Entry{
		{Domain: "A", Category: "B", Name: "debug", Command: "cmd1"},
		{Domain: "A", Category: "test", Name: "unit", Command: "cmd2"},
		{Domain: "python", Category: "run", Name: "script", Command: "cmd3"},
	}
	if got := merged.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if merged != base {
		t.Error("MergeConfigs() should merge into base in place")
	}
}

func TestMergeConfigs_NilBase(t *testing.T) {
	t.Parallel()

	merged, err := MergeConfigs(nil, rustTree())
	if err != nil {
		t.Fatalf("MergeConfigs() returned error: %v", err)
	}
	if merged.Len() != 2 {
		t.Errorf("Len() = %d, want 2", merged.Len())
	}
}

func TestMerge_Duplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		srcCategory string
	}{
		{name: "same category", srcCategory: "B"},
		{name: "different category", srcCategory: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := FromMap(map[string]map[string]map[string]string{
				"A": {"B": {"c": "X"}},
			})
			source := FromMap(map[string]map[string]map[string]string{
				"A": {tt.srcCategory: {"c": "Y"}},
			})

			err := target.Merge(source)

			var dupErr *DuplicateCommandError
			if !errors.As(err, &dupErr) {
				t.Fatalf("Merge() error = %v, want *DuplicateCommandError", err)
			}
			if dupErr.Domain != "A" || dupErr.Command != "c" {
				t.Errorf("DuplicateCommandError = {%s, %s}, want {A, c}", dupErr.Domain, dupErr.Command)
			}
			if got := err.Error(); got != "duplicate command found: A.c" {
				t.Errorf("Error() = %q", got)
			}
			// The original command is never overwritten.
			if got, _ := target.Get("A", "B", "c"); got != "X" {
				t.Errorf("Get(A, B, c) = %q, want X", got)
			}
		})
	}
}

func TestMerge_NoRollback(t *testing.T) {
	t.Parallel()

	target := FromMap(map[string]map[string]map[string]string{
		"m": {"cat": {"clash": "old"}},
	})
	// Sorted visiting order: domain "a" before "m", so "a.cat.first" is applied
	// before the clash in domain "m" aborts the merge; "z" is never reached.
	source := FromMap(map[string]map[string]map[string]string{
		"a": {"cat": {"first": "1"}},
		"m": {"cat": {"clash": "new"}},
		"z": {"cat": {"last": "3"}},
	})

	if err := target.Merge(source); !errors.Is(err, ErrDuplicateCommand) {
		t.Fatalf("Merge() error = %v, want ErrDuplicateCommand", err)
	}

	if _, ok := target.Get("a", "cat", "first"); !ok {
		t.Error("command merged before the duplicate should remain applied")
	}
	if _, ok := target.Get("z", "cat", "last"); ok {
		t.Error("command after the duplicate should not be applied")
	}
	if got, _ := target.Get("m", "cat", "clash"); got != "old" {
		t.Errorf("Get(m, cat, clash) = %q, want old", got)
	}
}

func TestMerge_NilSource(t *testing.T) {
	t.Parallel()

	tree := rustTree()
	if err := tree.Merge(nil); err != nil {
		t.Errorf("Merge(nil) returned error: %v", err)
	}
}

func TestMerge_KeepsEmptyContainers(t *testing.T) {
	t.Parallel()

	tree := New()
	src := FromMap(map[string]map[string]map[string]string{
		"empty": {"nothing": {}},
	})
	if err := tree.Merge(src); err != nil {
		t.Fatalf("Merge() returned error: %v", err)
	}
	if got := tree.Categories("empty"); !slices.Equal(got, []string{"nothing"}) {
		t.Errorf("Categories(empty) = %v, want [nothing]", got)
	}
}

func TestTree_DomainsAndCategories(t *testing.T) {
	t.Parallel()

	tree := FromMap(map[string]map[string]map[string]string{
		"rust":   {"test": {"unit": "cargo test"}, "build": {"debug": "cargo build"}},
		"python": {"run": {"script": "python script.py"}},
	})

	if got := tree.Domains(); !slices.Equal(got, []string{"python", "rust"}) {
		t.Errorf("Domains() = %v", got)
	}
	if got := tree.Categories("rust"); !slices.Equal(got, []string{"build", "test"}) {
		t.Errorf("Categories(rust) = %v", got)
	}
	if got := tree.Categories("java"); got != nil {
		t.Errorf("Categories(java) = %v, want nil", got)
	}
	if _, ok := tree.Domain("java"); ok {
		t.Error("Domain(java) should not exist")
	}
}
