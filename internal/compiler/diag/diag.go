// Package diag defines the compiler's error taxonomy. Every compiler error
// is fatal: the first one reported ends the compilation run.
package diag

import (
	"errors"
	"fmt"

	"github.com/palladium-lang/palladium/internal/compiler/token"
)

// Kind classifies a compile error.
type Kind string

const (
	UnexpectedToken   Kind = "unexpected token"
	DuplicateBinding  Kind = "duplicate binding"
	UnresolvedName    Kind = "unresolved name"
	TypeMismatch      Kind = "type mismatch"
	MalformedGrouping Kind = "malformed grouping"
	IllegalCharacter  Kind = "illegal character"
)

// Error is a single diagnostic anchored to a source position.
type Error struct {
	Kind   Kind
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Msg)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Msg)
}

// New builds an Error positioned at tok.
func New(kind Kind, tok token.Token, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Line:   tok.Line,
		Column: tok.Column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// IsKind reports whether err, or anything it wraps, is a diag.Error of kind.
func IsKind(err error, kind Kind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
