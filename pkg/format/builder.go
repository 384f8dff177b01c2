// Copyright 2024-2026 Aiku AI

package format

// MessageBuilder accumulates nodes through chained calls and freezes them
// into a FormattedMessage with Build. Inline content collects in an
// implicit running paragraph; block-level content flushes it. The builder
// is single-owner mutable state: share the built message, not the
// builder.
type MessageBuilder struct {
	blocks []Node
	inline []Node
	meta   map[string]any
	err    error
}

// NewMessage returns an empty builder.
func NewMessage() *MessageBuilder {
	return &MessageBuilder{}
}

func (b *MessageBuilder) push(n Node) *MessageBuilder {
	b.inline = append(b.inline, n)
	return b
}

// flush moves the running paragraph, if any, into the block list.
func (b *MessageBuilder) flush() {
	if len(b.inline) == 0 {
		return
	}
	b.blocks = append(b.blocks, Paragraph{Children: b.inline})
	b.inline = nil
}

func (b *MessageBuilder) block(n Node) *MessageBuilder {
	b.flush()
	b.blocks = append(b.blocks, n)
	return b
}

// fail records the first construction error; Build surfaces it.
func (b *MessageBuilder) fail(err error) *MessageBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Text appends plain text to the running paragraph.
func (b *MessageBuilder) Text(content string) *MessageBuilder {
	return b.push(Text{Content: content})
}

// Bold appends bold text.
func (b *MessageBuilder) Bold(content string) *MessageBuilder {
	return b.push(Bold{Child: Text{Content: content}})
}

// Italic appends italic text.
func (b *MessageBuilder) Italic(content string) *MessageBuilder {
	return b.push(Italic{Child: Text{Content: content}})
}

// Strikethrough appends struck-through text.
func (b *MessageBuilder) Strikethrough(content string) *MessageBuilder {
	return b.push(Strikethrough{Child: Text{Content: content}})
}

// Underline appends underlined text.
func (b *MessageBuilder) Underline(content string) *MessageBuilder {
	return b.push(Underline{Child: Text{Content: content}})
}

// Code appends inline code.
func (b *MessageBuilder) Code(content string) *MessageBuilder {
	return b.push(Code{Content: content})
}

// Link appends a hyperlink.
func (b *MessageBuilder) Link(text, url string) *MessageBuilder {
	return b.push(Link{Text: text, URL: url})
}

// Mention appends a user mention.
func (b *MessageBuilder) Mention(userID, displayName string) *MessageBuilder {
	return b.push(UserMention{UserID: userID, DisplayName: displayName})
}

// ChannelMention appends a channel mention.
func (b *MessageBuilder) ChannelMention(channelID, channelName string) *MessageBuilder {
	return b.push(ChannelMention{ChannelID: channelID, ChannelName: channelName})
}

// Emoji appends an emoji by name.
func (b *MessageBuilder) Emoji(name string) *MessageBuilder {
	return b.push(Emoji{Name: name})
}

// Raw appends verbatim platform markup that will not be escaped.
func (b *MessageBuilder) Raw(content string) *MessageBuilder {
	return b.push(Raw{Content: content})
}

// LineBreak appends an explicit line break.
func (b *MessageBuilder) LineBreak() *MessageBuilder {
	return b.push(LineBreak{})
}

// Node appends an arbitrary inline node.
func (b *MessageBuilder) Node(n Node) *MessageBuilder {
	return b.push(n)
}

// Paragraph flushes the running paragraph and starts a new block with the
// given text.
func (b *MessageBuilder) Paragraph(content string) *MessageBuilder {
	return b.block(Paragraph{Children: []Node{Text{Content: content}}})
}

// Heading appends a heading block. An out-of-range level is reported by
// Build.
func (b *MessageBuilder) Heading(content string, level int) *MessageBuilder {
	h, err := NewHeading(level, Text{Content: content})
	if err != nil {
		return b.fail(err)
	}
	return b.block(h)
}

// Quote appends a block quote.
func (b *MessageBuilder) Quote(content string) *MessageBuilder {
	return b.block(Quote{Child: Text{Content: content}})
}

// CodeBlock appends a fenced code block.
func (b *MessageBuilder) CodeBlock(content, language string) *MessageBuilder {
	return b.block(CodeBlock{Content: content, Language: language})
}

// BulletList appends an unordered list of plain text items.
func (b *MessageBuilder) BulletList(items []string) *MessageBuilder {
	list := UnorderedList{Items: make([]ListItem, len(items))}
	for i, item := range items {
		list.Items[i] = ListItem{Child: Text{Content: item}}
	}
	return b.block(list)
}

// NumberedList appends an ordered list of plain text items.
func (b *MessageBuilder) NumberedList(items []string, start int) *MessageBuilder {
	list := OrderedList{Items: make([]ListItem, len(items)), Start: start}
	for i, item := range items {
		list.Items[i] = ListItem{Child: Text{Content: item}}
	}
	return b.block(list)
}

// Table appends a table block built from raw cells. A ragged row is
// reported by Build.
func (b *MessageBuilder) Table(data [][]string, headers []string) *MessageBuilder {
	t, err := TableFromData(data, headers)
	if err != nil {
		return b.fail(err)
	}
	return b.block(t)
}

// Rule appends a horizontal rule block.
func (b *MessageBuilder) Rule() *MessageBuilder {
	return b.block(HorizontalRule{})
}

// Image appends an image block.
func (b *MessageBuilder) Image(url, alt string) *MessageBuilder {
	return b.block(Image{URL: url, Alt: alt})
}

// Attachment appends an attachment reference block.
func (b *MessageBuilder) Attachment(filename, url string) *MessageBuilder {
	return b.block(Attachment{Filename: filename, URL: url})
}

// Meta records a metadata key on the built message.
func (b *MessageBuilder) Meta(key string, value any) *MessageBuilder {
	if b.meta == nil {
		b.meta = make(map[string]any)
	}
	b.meta[key] = value
	return b
}

// Build freezes the accumulated content into a FormattedMessage. It
// returns the first construction error recorded by any chained call.
func (b *MessageBuilder) Build() (FormattedMessage, error) {
	if b.err != nil {
		return FormattedMessage{}, b.err
	}
	b.flush()
	msg := FormattedMessage{
		Content:  append([]Node(nil), b.blocks...),
		Metadata: b.meta,
	}
	return msg, nil
}
