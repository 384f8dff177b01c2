// Copyright 2024-2026 Aiku AI

package format

import (
	"fmt"
	"strconv"
	"strings"

	"go.mau.fi/util/variationselector"
)

// Node is one element of the rich text document tree. Rendering is a pure
// function of the node and the format: it never mutates the tree and is
// defined for every node/format combination, falling back to a
// plaintext-equivalent output where a format has no native markup.
type Node interface {
	Render(f Format) string
}

// Render renders a node to the given format. It is a convenience wrapper
// for the method form and exists mostly for call sites that hold a Node
// interface value.
func Render(n Node, f Format) string {
	if n == nil {
		return ""
	}
	return n.Render(f)
}

// Text is plain text content. Its content is escaped per the target
// format's escaping rule.
type Text struct {
	Content string
}

func (t Text) Render(f Format) string {
	return escapeText(t.Content, f)
}

// Raw is content inserted verbatim with no escaping. Use it for
// platform-specific markup such as Symphony hash tags.
type Raw struct {
	Content string
}

func (r Raw) Render(Format) string {
	return r.Content
}

// Span is an ordered sequence of inline children rendered back to back.
type Span struct {
	Children []Node
}

func (s Span) Render(f Format) string {
	var b strings.Builder
	for _, child := range s.Children {
		b.WriteString(Render(child, f))
	}
	return b.String()
}

// Bold wraps its child in strong emphasis.
type Bold struct {
	Child Node
}

func (n Bold) Render(f Format) string {
	content := Render(n.Child, f)
	switch {
	case f == Markdown || f == DiscordMarkdown:
		return "**" + content + "**"
	case f == SlackMarkdown:
		return "*" + content + "*"
	case f == HTML:
		return "<strong>" + content + "</strong>"
	case f == SymphonyMessageML:
		return "<b>" + content + "</b>"
	}
	return content
}

// Italic wraps its child in emphasis.
type Italic struct {
	Child Node
}

func (n Italic) Render(f Format) string {
	content := Render(n.Child, f)
	switch {
	case f == Markdown || f == DiscordMarkdown:
		return "*" + content + "*"
	case f == SlackMarkdown:
		return "_" + content + "_"
	case f == HTML:
		return "<em>" + content + "</em>"
	case f == SymphonyMessageML:
		return "<i>" + content + "</i>"
	}
	return content
}

// Strikethrough wraps its child in strikethrough markers.
type Strikethrough struct {
	Child Node
}

func (n Strikethrough) Render(f Format) string {
	content := Render(n.Child, f)
	switch {
	case f == Markdown || f == DiscordMarkdown:
		return "~~" + content + "~~"
	case f == SlackMarkdown:
		return "~" + content + "~"
	case f == HTML:
		return "<del>" + content + "</del>"
	case f == SymphonyMessageML:
		return "<s>" + content + "</s>"
	}
	return content
}

// Underline wraps its child in underline markers. Only Discord and the
// tagged formats have underline syntax; everything else renders the child
// unchanged.
type Underline struct {
	Child Node
}

func (n Underline) Render(f Format) string {
	content := Render(n.Child, f)
	switch f {
	case DiscordMarkdown:
		return "__" + content + "__"
	case HTML, SymphonyMessageML:
		return "<u>" + content + "</u>"
	}
	return content
}

// Code is inline code. The content is rendered verbatim plus escaping,
// never re-parsed for nested markup.
type Code struct {
	Content string
}

func (c Code) Render(f Format) string {
	if f.isMarkdownFamily() {
		return "`" + c.Content + "`"
	}
	if f.isTagged() {
		return "<code>" + escapeText(c.Content, f) + "</code>"
	}
	return c.Content
}

// CodeBlock is a fenced code block with an optional language hint.
type CodeBlock struct {
	Content  string
	Language string
}

func (c CodeBlock) Render(f Format) string {
	switch {
	case f.isMarkdownFamily():
		return "```" + c.Language + "\n" + c.Content + "\n```"
	case f == HTML:
		langAttr := ""
		if c.Language != "" {
			langAttr = ` class="language-` + escapeAttr(c.Language, f) + `"`
		}
		return "<pre><code" + langAttr + ">" + escapeText(c.Content, f) + "</code></pre>"
	case f == SymphonyMessageML:
		// MessageML does not allow <code> inside <pre>.
		return "<pre>" + escapeText(c.Content, f) + "</pre>"
	}
	return c.Content
}

// Link is a hyperlink with display text. A link with an empty URL renders
// as its text alone rather than failing.
type Link struct {
	URL   string
	Text  string
	Title string
}

func (l Link) Render(f Format) string {
	text := l.Text
	if text == "" {
		text = l.URL
	}
	if l.URL == "" {
		return escapeText(text, f)
	}
	switch {
	case f == Markdown || f == DiscordMarkdown:
		if l.Title != "" {
			return "[" + escapeText(text, f) + "](" + l.URL + ` "` + l.Title + `")`
		}
		return "[" + escapeText(text, f) + "](" + l.URL + ")"
	case f == SlackMarkdown:
		return "<" + l.URL + "|" + text + ">"
	case f.isTagged():
		titleAttr := ""
		if l.Title != "" {
			titleAttr = ` title="` + escapeAttr(l.Title, f) + `"`
		}
		return `<a href="` + escapeAttr(l.URL, f) + `"` + titleAttr + ">" + escapeText(text, f) + "</a>"
	}
	return text
}

// Quote is a block quote.
type Quote struct {
	Child Node
}

func (q Quote) Render(f Format) string {
	content := Render(q.Child, f)
	if f.isTagged() {
		return "<blockquote>" + content + "</blockquote>"
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

// Heading is a section heading with level 1-6. Construct with NewHeading
// to get level validation; a directly constructed out-of-range level is
// clamped at render time instead of failing.
type Heading struct {
	Level int
	Child Node
}

// NewHeading returns a Heading, rejecting levels outside [1,6].
func NewHeading(level int, child Node) (Heading, error) {
	if level < 1 || level > 6 {
		return Heading{}, fmt.Errorf("%w: %d", ErrHeadingLevel, level)
	}
	return Heading{Level: level, Child: child}, nil
}

func (h Heading) Render(f Format) string {
	content := Render(h.Child, f)
	level := min(max(h.Level, 1), 6)
	switch {
	case f == Markdown || f == DiscordMarkdown:
		return strings.Repeat("#", level) + " " + content
	case f == SlackMarkdown:
		// Slack has no headings, bold is the conventional stand-in.
		return "*" + content + "*"
	case f.isTagged():
		lvl := strconv.Itoa(level)
		return "<h" + lvl + ">" + content + "</h" + lvl + ">"
	}
	return content
}

// Paragraph is an ordered sequence of inline children.
type Paragraph struct {
	Children []Node
}

func (p Paragraph) Render(f Format) string {
	var b strings.Builder
	for _, child := range p.Children {
		b.WriteString(Render(child, f))
	}
	if f.isTagged() {
		return "<p>" + b.String() + "</p>"
	}
	return b.String()
}

// LineBreak is an explicit line break.
type LineBreak struct{}

func (LineBreak) Render(f Format) string {
	if f.isTagged() {
		return "<br/>"
	}
	return "\n"
}

// HorizontalRule is a divider between blocks.
type HorizontalRule struct{}

func (HorizontalRule) Render(f Format) string {
	if f.isTagged() {
		return "<hr/>"
	}
	if f.isMarkdownFamily() {
		return "---"
	}
	return strings.Repeat("-", 40)
}

// ListItem is a single item of an ordered or unordered list.
type ListItem struct {
	Child Node
}

func (li ListItem) Render(f Format) string {
	return Render(li.Child, f)
}

// UnorderedList is a bulleted list.
type UnorderedList struct {
	Items []ListItem
}

func (ul UnorderedList) Render(f Format) string {
	if f.isTagged() {
		var b strings.Builder
		b.WriteString("<ul>")
		for _, item := range ul.Items {
			b.WriteString("<li>" + item.Render(f) + "</li>")
		}
		b.WriteString("</ul>")
		return b.String()
	}
	lines := make([]string, len(ul.Items))
	for i, item := range ul.Items {
		lines[i] = "- " + item.Render(f)
	}
	return strings.Join(lines, "\n")
}

// OrderedList is a numbered list. A zero Start numbers from 1.
type OrderedList struct {
	Items []ListItem
	Start int
}

func (ol OrderedList) Render(f Format) string {
	start := ol.Start
	if start == 0 {
		start = 1
	}
	if f.isTagged() {
		var b strings.Builder
		if start != 1 {
			b.WriteString(`<ol start="` + strconv.Itoa(start) + `">`)
		} else {
			b.WriteString("<ol>")
		}
		for _, item := range ol.Items {
			b.WriteString("<li>" + item.Render(f) + "</li>")
		}
		b.WriteString("</ol>")
		return b.String()
	}
	lines := make([]string, len(ol.Items))
	for i, item := range ol.Items {
		lines[i] = strconv.Itoa(start+i) + ". " + item.Render(f)
	}
	return strings.Join(lines, "\n")
}

// UserMention is an inline reference to a user. It renders as a leaf
// template per format, independent of any emphasis ancestry.
type UserMention struct {
	UserID      string
	DisplayName string
}

func (m UserMention) Render(f Format) string {
	switch f {
	case SlackMarkdown, DiscordMarkdown:
		return "<@" + m.UserID + ">"
	case SymphonyMessageML:
		return `<mention uid="` + escapeAttr(m.UserID, f) + `"/>`
	case HTML:
		name := m.DisplayName
		if name == "" {
			name = m.UserID
		}
		return `<span class="mention" data-user-id="` + escapeAttr(m.UserID, f) + `">@` + escapeText(name, f) + "</span>"
	}
	name := m.DisplayName
	if name == "" {
		name = m.UserID
	}
	return "@" + escapeText(name, f)
}

// ChannelMention is an inline reference to a channel.
type ChannelMention struct {
	ChannelID   string
	ChannelName string
}

func (m ChannelMention) Render(f Format) string {
	switch f {
	case SlackMarkdown, DiscordMarkdown:
		return "<#" + m.ChannelID + ">"
	case HTML:
		name := m.ChannelName
		if name == "" {
			name = m.ChannelID
		}
		return `<span class="channel-mention" data-channel-id="` + escapeAttr(m.ChannelID, f) + `">#` + escapeText(name, f) + "</span>"
	}
	name := m.ChannelName
	if name == "" {
		name = m.ChannelID
	}
	return "#" + escapeText(name, f)
}

// Emoji is an emoji reference. Unicode content wins over the name and is
// fully qualified with emoji variation selectors so that clients render
// the emoji presentation rather than the text one.
type Emoji struct {
	Name     string
	Unicode  string
	CustomID string
}

func (e Emoji) Render(f Format) string {
	if e.Unicode != "" {
		return variationselector.FullyQualify(e.Unicode)
	}
	switch f {
	case DiscordMarkdown:
		if e.CustomID != "" {
			return "<:" + e.Name + ":" + e.CustomID + ">"
		}
	case HTML, SymphonyMessageML:
		return `<span class="emoji" data-emoji="` + escapeAttr(e.Name, f) + `">:` + escapeText(e.Name, f) + ":</span>"
	}
	return ":" + e.Name + ":"
}

// Attachment is a file attachment reference.
type Attachment struct {
	Filename    string
	URL         string
	ContentType string
}

func (a Attachment) Render(f Format) string {
	switch {
	case f == Markdown || f == DiscordMarkdown:
		return "[" + escapeText(a.Filename, f) + "](" + a.URL + ")"
	case f == SlackMarkdown:
		return "<" + a.URL + "|" + a.Filename + ">"
	case f.isTagged():
		return `<a href="` + escapeAttr(a.URL, f) + `">` + escapeText(a.Filename, f) + "</a>"
	}
	return a.Filename + ": " + a.URL
}

// Image is an inline image. Plaintext falls back to the alt text.
type Image struct {
	URL   string
	Alt   string
	Title string
}

func (img Image) Render(f Format) string {
	switch {
	case f == Markdown || f == DiscordMarkdown:
		if img.Title != "" {
			return "![" + img.Alt + "](" + img.URL + ` "` + img.Title + `")`
		}
		return "![" + img.Alt + "](" + img.URL + ")"
	case f == SlackMarkdown:
		// Slack unfurls a bare image URL.
		return img.URL
	case f == HTML:
		titleAttr := ""
		if img.Title != "" {
			titleAttr = ` title="` + escapeAttr(img.Title, f) + `"`
		}
		return `<img src="` + escapeAttr(img.URL, f) + `" alt="` + escapeAttr(img.Alt, f) + `"` + titleAttr + "/>"
	case f == SymphonyMessageML:
		return "<card><header>" + escapeText(img.Alt, f) + `</header><body><img src="` + escapeAttr(img.URL, f) + `"/></body></card>`
	}
	if img.Alt != "" {
		return img.Alt + ": " + img.URL
	}
	return img.URL
}
