package handlers

import (
	"strings"
	"testing"
)

func TestBuildEmbedSnippet(t *testing.T) {
	snippet := BuildEmbedSnippet("https://app.vouchly.dev", "abc123XYZ0")

	if !strings.Contains(snippet, `data-vouchly-widget="abc123XYZ0"`) {
		t.Errorf("snippet missing share token attribute: %s", snippet)
	}

	if !strings.Contains(snippet, `src="https://app.vouchly.dev/widget.js"`) {
		t.Errorf("snippet missing script source: %s", snippet)
	}

	if !strings.HasPrefix(snippet, "<script") || !strings.HasSuffix(snippet, "</script>") {
		t.Errorf("snippet is not a script tag: %s", snippet)
	}
}
