package main

import "testing"

func TestParseInfoFile(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		expectedTG string
		expectedDG string
	}{
		{
			"both tokens",
			"Bot token: 123:ABC\nDeepgram token: dg_secret\n",
			"123:ABC",
			"dg_secret",
		},
		{
			"reversed order with noise",
			"some notes\nDeepgram token: key1\nmore notes\nBot token: 42:XYZ\n",
			"42:XYZ",
			"key1",
		},
		{
			"case insensitive labels",
			"bot token: a\ndeepgram token: b\n",
			"a",
			"b",
		},
		{
			"leading whitespace",
			"   Bot token: padded\n",
			"padded",
			"",
		},
		{
			"missing lines",
			"nothing useful here",
			"",
			"",
		},
		{
			"token must be on its own line",
			"Bot token: one two\n",
			"",
			"",
		},
	}

	for _, test := range tests {
		tg, dg := parseInfoFile(test.text)
		if tg != test.expectedTG || dg != test.expectedDG {
			t.Errorf("%s: parseInfoFile() = (%q, %q), want (%q, %q)",
				test.name, tg, dg, test.expectedTG, test.expectedDG)
		}
	}
}
