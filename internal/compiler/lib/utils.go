package lib

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// FloatLiteral renders a numeric literal as a Java float: the shortest
// text that round-trips at 32-bit precision, plus the `f` suffix.
func FloatLiteral(literal string) string {
	v, err := strconv.ParseFloat(literal, 32)
	if err != nil {
		// Out of float32 range; javac reports it against the original text.
		return literal + "f"
	}
	return strconv.FormatFloat(v, 'f', -1, 32) + "f"
}

var javaStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// QuoteString wraps s in double quotes, escaping what a Java string
// literal cannot hold verbatim.
func QuoteString(s string) string {
	return `"` + javaStringEscaper.Replace(s) + `"`
}

// ClassName derives the Java class name from a source path: the file stem
// with everything but letters, digits and '_' dropped, first letter upper
// cased. A stem that leaves nothing, or starts with a digit, gets a "P"
// prefix so the result is still a legal identifier.
func ClassName(srcPath string) string {
	stem := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))

	var b strings.Builder
	for _, r := range stem {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	name := []rune(b.String())
	if len(name) == 0 || unicode.IsDigit(name[0]) {
		name = append([]rune("P"), name...)
	}
	name[0] = unicode.ToUpper(name[0])
	return string(name)
}
