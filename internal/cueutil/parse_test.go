// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cuelang.org/go/cue/cuecontext"
)

const testSchema = `
#Greeting: {
	name:   string
	count?: int
}
`

type greeting struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		res, err := ParseAndDecode[greeting]([]byte(testSchema), []byte(`name: "hi", count: 2`), "#Greeting")
		if err != nil {
			t.Fatalf("ParseAndDecode() returned error: %v", err)
		}
		if res.Name != "hi" || res.Count != 2 {
			t.Errorf("ParseAndDecode() = %+v", *res)
		}
	})

	t.Run("type mismatch names the field", func(t *testing.T) {
		_, err := ParseAndDecode[greeting]([]byte(testSchema), []byte(`name: 42`), "#Greeting", WithFilename("g.cue"))
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "g.cue") || !strings.Contains(err.Error(), "name") {
			t.Errorf("error should mention file and field, got: %v", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseAndDecode[greeting]([]byte(testSchema), []byte(`name: "unterminated`), "#Greeting", WithFilename("g.cue"))
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("file too large", func(t *testing.T) {
		_, err := ParseAndDecode[greeting]([]byte(testSchema), []byte(`name: "hello"`), "#Greeting", WithMaxFileSize(4))
		if err == nil || !strings.Contains(err.Error(), "exceeds limit") {
			t.Errorf("expected size error, got: %v", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		_, err := ParseAndDecode[greeting]([]byte(testSchema), []byte(`name: "x"`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("expected internal error, got: %v", err)
		}
	})
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "x.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	cause := errors.New("boom")
	cueErr := cuecontext.New().CompileString("count: int\ncount: \"x\"").Validate()
	if cueErr == nil {
		t.Fatal("Validate() should fail on conflicting values")
	}

	tests := []struct {
		name      string
		err       error
		wantCause bool
		wantText  string
	}{
		{name: "plain error keeps its chain", err: cause, wantCause: true, wantText: "x.cue: boom"},
		{name: "wrapped plain error", err: fmt.Errorf("reading: %w", cause), wantCause: true, wantText: "x.cue: reading: boom"},
		{name: "cue error names the field", err: cueErr, wantText: "x.cue: count: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := FormatError(tt.err, "x.cue")
			if err == nil {
				t.Fatal("FormatError() returned nil")
			}
			if got := errors.Is(err, cause); got != tt.wantCause {
				t.Errorf("errors.Is(err, cause) = %v, want %v", got, tt.wantCause)
			}
			if !strings.HasPrefix(err.Error(), "x.cue: ") {
				t.Errorf("Error() = %q, want x.cue: prefix", err.Error())
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantText)
			}
		})
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{path: nil, want: ""},
		{path: []string{"commands"}, want: "commands"},
		{path: []string{"commands", "rust", "build"}, want: "commands.rust.build"},
		{path: []string{"import", "0"}, want: "import[0]"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
