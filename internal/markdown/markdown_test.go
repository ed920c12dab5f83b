package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	if got := Render(80, ""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if got := Render(80, "  \n\n"); got != "" {
		t.Errorf("expected empty output for whitespace, got %q", got)
	}
}

func TestRender_PlainText(t *testing.T) {
	got := Render(80, "buy milk before the store closes")
	if !strings.Contains(got, "buy milk") {
		t.Errorf("expected text to survive rendering, got %q", got)
	}
}

func TestRender_ListItems(t *testing.T) {
	got := Render(80, "- milk\n- eggs")
	if !strings.Contains(got, "milk") || !strings.Contains(got, "eggs") {
		t.Errorf("expected list items in output, got %q", got)
	}
}

func TestRender_NarrowWidthDoesNotPanic(t *testing.T) {
	got := Render(0, "some description text")
	if got == "" {
		t.Error("expected non-empty output at minimal width")
	}
}
