package lib

import "testing"

func TestFloatLiteral(t *testing.T) {
	tests := map[string]string{
		"1":     "1f",
		"0":     "0f",
		"2.5":   "2.5f",
		"10.0":  "10f",
		"0.1":   "0.1f",
		"123.5": "123.5f",
	}
	for in, want := range tests {
		if got := FloatLiteral(in); got != want {
			t.Errorf("FloatLiteral(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestQuoteString(t *testing.T) {
	tests := map[string]string{
		"hello":     `"hello"`,
		`a\b`:       `"a\\b"`,
		"tab\there": `"tab\there"`,
		"line\n":    `"line\n"`,
	}
	for in, want := range tests {
		if got := QuoteString(in); got != want {
			t.Errorf("QuoteString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestClassName(t *testing.T) {
	tests := map[string]string{
		"hello.pd":        "Hello",
		"dir/my-prog.pd":  "Myprog",
		"snake_case.pd":   "Snake_case",
		"/abs/Already.pd": "Already",
		"2fast.pd":        "P2fast",
		"---.pd":          "P",
		"with spaces.pd":  "Withspaces",
	}
	for in, want := range tests {
		if got := ClassName(in); got != want {
			t.Errorf("ClassName(%q) = %q, want %q", in, got, want)
		}
	}
}
