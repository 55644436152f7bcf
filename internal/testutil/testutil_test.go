// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "HUMOR_TESTUTIL_PROBE"
	restore := MustSetenv(t, key, "one")
	if got := os.Getenv(key); got != "one" {
		t.Fatalf("Getenv() = %q, want one", got)
	}
	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Error("variable should be unset after cleanup")
	}
}

func TestSetHomeDir(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(SetHomeDir(t, dir))

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() returned error: %v", err)
	}
	if home != dir {
		t.Errorf("UserHomeDir() = %q, want %q", home, dir)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("a", "b", "humor.yaml"), "commands: {}\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() returned error: %v", err)
	}
	if string(data) != "commands: {}\n" {
		t.Errorf("content = %q", data)
	}
}
