// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValuesOrderedAndComplete(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != len(issues) {
		t.Fatalf("Values() returned %d pages, want %d", len(values), len(issues))
	}
	for i, page := range values {
		if want := Id(i + 1); page.Id() != want {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, page.Id(), want)
		}
	}
	if values[len(values)-1].Id() != RenderFailedId {
		t.Errorf("last page = %d, want RenderFailedId", values[len(values)-1].Id())
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	t.Parallel()

	for _, page := range Values() {
		if page.Title() == "" {
			t.Errorf("issue %d has no title", page.Id())
		}
		if strings.TrimSpace(string(page.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no body", page.Id())
		}
		if page.Id().String() != page.Title() {
			t.Errorf("Id(%d).String() = %q, want the title", page.Id(), page.Id().String())
		}
	}
	if got := Id(0).String(); got != "unknown issue" {
		t.Errorf("Id(0).String() = %q", got)
	}
	if Get(Id(999)) != nil {
		t.Error("Get(999) should be nil")
	}
}

func TestIssueMarkdown(t *testing.T) {
	t.Parallel()

	page := Get(ConfigLoadFailedId)
	md := page.Markdown()

	if !strings.HasPrefix(md, "# "+page.Title()+"\n") {
		t.Errorf("Markdown() should start with the title heading, got:\n%s", md)
	}
	if !strings.Contains(md, "## See also") || !strings.Contains(md, "cuelang.org") {
		t.Errorf("Markdown() should list external links, got:\n%s", md)
	}

	links := page.ExtLinks()
	links[0] = "mutated"
	if page.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() should return a copy")
	}

	if strings.Contains(Get(InvalidLimitId).Markdown(), "See also") {
		t.Error("pages without links should not render a See also section")
	}
}

// Not parallel: swaps the package-level renderer.
func TestIssueRenderUsesRenderer(t *testing.T) {
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle string
	render = func(in, stylePath string) (string, error) {
		gotStyle = stylePath
		return "RENDERED:" + in, nil
	}

	out, err := Get(InvalidChoiceId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.HasPrefix(out, "RENDERED:# ") {
		t.Errorf("Render() = %q", out)
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	t.Parallel()

	for _, page := range Values() {
		out, err := page.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render() error: %v", page.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered empty", page.Id())
		}
	}
}
