package toolchain

import (
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseJavacVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"javac 17.0.2\n", "17.0.2"},
		{"javac 1.8.0_292\n", "1.8.0"},
		{"javac 21\n", "21.0.0"},
		{"Picked up _JAVA_OPTIONS: -Xmx1g\njavac 11.0.20.1\n", "11.0.20"},
	}
	for _, tt := range tests {
		v, err := ParseJavacVersion(tt.output)
		if err != nil {
			t.Errorf("ParseJavacVersion(%q) error: %v", tt.output, err)
			continue
		}
		if v.String() != tt.want {
			t.Errorf("ParseJavacVersion(%q) = %s, want %s", tt.output, v, tt.want)
		}
	}
}

func TestParseJavacVersionRejectsGarbage(t *testing.T) {
	for _, out := range []string{"", "java 17", "javac version unknown"} {
		if v, err := ParseJavacVersion(out); err == nil {
			t.Errorf("ParseJavacVersion(%q) = %s, want error", out, v)
		}
	}
}

func TestRequire(t *testing.T) {
	jdk := func(v string) *JDK {
		return &JDK{Version: semver.MustParse(v)}
	}

	if err := jdk("1.8.0").Require(""); err != nil {
		t.Errorf("1.8.0 should satisfy the default constraint: %v", err)
	}
	if err := jdk("17.0.2").Require(DefaultConstraint); err != nil {
		t.Errorf("17.0.2 should satisfy the default constraint: %v", err)
	}
	err := jdk("1.7.0").Require(DefaultConstraint)
	if err == nil || !strings.Contains(err.Error(), "does not satisfy") {
		t.Errorf("1.7.0 against %s: got %v", DefaultConstraint, err)
	}
	if err := jdk("17.0.2").Require("not a constraint"); err == nil {
		t.Errorf("expected an invalid constraint error")
	}
}
