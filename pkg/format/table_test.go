// Copyright 2024-2026 Aiku AI

package format

import (
	"errors"
	"strings"
	"testing"
)

func TestTableFromDataValidation(t *testing.T) {
	t.Parallel()
	_, err := TableFromData([][]string{{"a", "b"}, {"c"}}, []string{"h1", "h2"})
	if !errors.Is(err, ErrColumnCount) {
		t.Errorf("ragged row: got %v, want ErrColumnCount", err)
	}
	_, err = TableFromData([][]string{{"a"}}, []string{"h1", "h2"})
	if !errors.Is(err, ErrColumnCount) {
		t.Errorf("short row vs header: got %v, want ErrColumnCount", err)
	}
	// Without headers the first row sets the column count.
	_, err = TableFromData([][]string{{"a", "b"}, {"c", "d", "e"}}, nil)
	if !errors.Is(err, ErrColumnCount) {
		t.Errorf("ragged headerless: got %v, want ErrColumnCount", err)
	}
	if _, err := TableFromData([][]string{{"a", "b"}, {"c", "d"}}, []string{"h1", "h2"}); err != nil {
		t.Errorf("well-formed: unexpected error %v", err)
	}
}

func TestTableMarkdown(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"Alice", "100"}, {"Bob", "85"}}, []string{"Name", "Score"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	want := strings.Join([]string{
		"| Name | Score |",
		"|---|---|",
		"| Alice | 100 |",
		"| Bob | 85 |",
	}, "\n")
	if got := table.Render(Markdown); got != want {
		t.Errorf("Markdown:\ngot  %q\nwant %q", got, want)
	}
	if got := table.Render(DiscordMarkdown); got != want {
		t.Errorf("DiscordMarkdown:\ngot  %q\nwant %q", got, want)
	}
}

func TestTableMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"a|b", "c"}}, []string{"x|y", "z"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	want := strings.Join([]string{
		`| x\|y | z |`,
		"|---|---|",
		`| a\|b | c |`,
	}, "\n")
	if got := table.Render(Markdown); got != want {
		t.Errorf("Markdown:\ngot  %q\nwant %q", got, want)
	}
	if got := table.Render(DiscordMarkdown); got != want {
		t.Errorf("DiscordMarkdown:\ngot  %q\nwant %q", got, want)
	}
}

func TestTableMarkdownSyntheticHeader(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"a", "b"}}, nil)
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	got := table.Render(Markdown)
	// A separator row is required for valid Markdown, so a headerless
	// table gets an empty header plus separator.
	want := "|  |  |\n|---|---|\n| a | b |"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTablePlaintext(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"Alice", "100"}, {"Bob", "85"}}, []string{"Name", "Score"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	got := table.Render(Plaintext)
	want := strings.Join([]string{
		"Name    Score",
		"Alice   100",
		"Bob     85",
	}, "\n")
	if got != want {
		t.Errorf("Plaintext:\ngot  %q\nwant %q", got, want)
	}
}

func TestTableSlackCodeFence(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"a", "b"}}, []string{"h1", "h2"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	got := table.Render(SlackMarkdown)
	if !strings.HasPrefix(got, "```\n") || !strings.HasSuffix(got, "\n```") {
		t.Errorf("SlackMarkdown: got %q, want code-fenced grid", got)
	}
	if strings.Contains(got, "|---|") {
		t.Errorf("SlackMarkdown: got %q, want no pipe separator row", got)
	}
}

func TestTableHTML(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"a", "b"}}, []string{"h1", "h2"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	got := table.Render(HTML)
	want := "<table><thead><tr><th>h1</th><th>h2</th></tr></thead>" +
		"<tbody><tr><td>a</td><td>b</td></tr></tbody></table>"
	if got != want {
		t.Errorf("HTML:\ngot  %q\nwant %q", got, want)
	}
}

func TestTableMessageMLEscaping(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"${v}", "x<y"}}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	got := table.Render(SymphonyMessageML)
	if !strings.Contains(got, "&#36;{v}") {
		t.Errorf("MessageML: got %q, want template expression escaped", got)
	}
	if !strings.Contains(got, "x&lt;y") {
		t.Errorf("MessageML: got %q, want entity escaping", got)
	}
}

func TestTableEmpty(t *testing.T) {
	t.Parallel()
	var table Table
	for _, f := range Formats() {
		if got := table.Render(f); got != "" {
			t.Errorf("Render(%s): got %q, want empty", f, got)
		}
	}
}

func TestTableCellContentRoundTrip(t *testing.T) {
	t.Parallel()
	table, err := TableFromData([][]string{{"céllule", "データ"}}, []string{"col1", "col2"})
	if err != nil {
		t.Fatalf("TableFromData: %v", err)
	}
	for _, f := range []Format{Plaintext, Markdown, HTML} {
		got := table.Render(f)
		if !strings.Contains(got, "céllule") || !strings.Contains(got, "データ") {
			t.Errorf("Render(%s): got %q, want cell content preserved", f, got)
		}
	}
}
