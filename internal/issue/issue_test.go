// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGet_EveryIdHasGuide(t *testing.T) {
	if len(issues) != int(InvalidRuntimeTypeId) {
		t.Fatalf("catalog has %d issues, want %d", len(issues), InvalidRuntimeTypeId)
	}
	for id := FileNotFoundId; id <= InvalidRuntimeTypeId; id++ {
		iss := Get(id)
		if iss == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty guide", id)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id      Id
		heading string
	}{
		{id: FileNotFoundId, heading: "Humorfile not found"},
		{id: DuplicateCommandId, heading: "Duplicate command"},
		{id: CommandNotFoundId, heading: "Command not found"},
		{id: ImportCycleId, heading: "Import cycle"},
	}

	for _, tt := range tests {
		iss := Get(tt.id)
		if iss == nil {
			t.Fatalf("Get(%d) returned nil", tt.id)
		}
		if !strings.Contains(string(iss.MarkdownMsg()), tt.heading) {
			t.Errorf("Get(%d) guide should contain %q", tt.id, tt.heading)
		}
	}

	if Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return in, nil
	}

	out, err := Get(CommandNotFoundId).Render("")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if gotStyle != DefaultStyle {
		t.Errorf("style = %q, want %q", gotStyle, DefaultStyle)
	}
	if !strings.HasPrefix(out, "# Command not found!") {
		t.Errorf("Render() = %q", out)
	}
}

func TestIssue_RenderGlamour(t *testing.T) {
	out, err := Get(InvalidCommandStructureId).Render("notty")
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if !strings.Contains(out, "Invalid command structure") {
		t.Errorf("Render() output missing heading: %q", out)
	}
}

func TestIssue_RenderError(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	want := errors.New("bad style")
	render = func(string, string) (string, error) { return "", want }

	if _, err := Get(ParseErrorId).Render("dark"); !errors.Is(err, want) {
		t.Errorf("Render() error = %v, want %v", err, want)
	}
}
