// Copyright 2024-2026 Aiku AI

package mention

import "testing"

func FuzzParse(f *testing.F) {
	f.Add("Hey <@123456789>, see <#987654321>")
	f.Add("<!subteam^S99> <!channel> <@U123ABC>")
	f.Add("@alice:example.org #general:example.org")
	f.Add(`<mention uid="71811853"/>`)
	f.Add("@all ~town-square @alice")
	f.Add("@everyone@here<@&1>")
	f.Add("")
	f.Fuzz(func(t *testing.T, text string) {
		for _, backend := range Backends() {
			matches, err := Parse(text, backend)
			if err != nil {
				t.Fatalf("Parse(%q, %q): %v", text, backend, err)
			}
			prevEnd := 0
			for i, m := range matches {
				if m.Start < prevEnd {
					t.Fatalf("Parse(%q, %q): match %d overlaps previous: %+v", text, backend, i, m)
				}
				if m.Start >= m.End || m.End > len(text) {
					t.Fatalf("Parse(%q, %q): match %d out of bounds: %+v", text, backend, i, m)
				}
				if text[m.Start:m.End] != m.Raw {
					t.Fatalf("Parse(%q, %q): match %d raw mismatch: %+v", text, backend, i, m)
				}
				prevEnd = m.End
			}
		}
	})
}
