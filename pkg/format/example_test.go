// Copyright 2024-2026 Aiku AI

package format_test

import (
	"fmt"

	"github.com/aiku/chatfmt/pkg/format"
)

func ExampleMessageBuilder() {
	msg, _ := format.NewMessage().
		Text("Hello, ").
		Bold("world").
		Text("!").
		Build()
	fmt.Println(msg.Render(format.Markdown))
	fmt.Println(msg.Render(format.SlackMarkdown))
	// Output:
	// Hello, **world**!
	// Hello, *world*!
}

func ExampleTableFromData() {
	table, _ := format.TableFromData(
		[][]string{{"Alice", "100"}, {"Bob", "85"}},
		[]string{"Name", "Score"},
	)
	fmt.Println(table.Render(format.Markdown))
	// Output:
	// | Name | Score |
	// |---|---|
	// | Alice | 100 |
	// | Bob | 85 |
}

func ExampleFormattedMessage_RenderFor() {
	msg, _ := format.NewMessage().
		Text("Deploy ").
		Code("v1.2.0").
		Text(" when ready").
		Build()
	out, _ := msg.RenderFor("symphony")
	fmt.Println(out)
	// Output:
	// <p>Deploy <code>v1.2.0</code> when ready</p>
}
