package scope

import (
	"errors"
	"fmt"

	"github.com/palladium-lang/palladium/internal/compiler/symbols"
)

var (
	ErrDuplicate  = errors.New("already declared in this scope")
	ErrUnresolved = errors.New("not declared")
)

// frame is one lexical level: a block body or the program root.
type frame map[string]symbols.SymbolInfo

// Table resolves names through a stack of frames. The innermost frame is
// last. Frames are plain maps, so a popped frame is simply dropped.
type Table struct {
	frames []frame
}

// NewTable returns a table holding the global frame.
func NewTable() *Table {
	return &Table{frames: []frame{make(frame)}}
}

// Push enters a nested frame.
func (t *Table) Push() {
	t.frames = append(t.frames, make(frame))
}

// Pop discards the innermost frame. The global frame is never popped.
func (t *Table) Pop() {
	if len(t.frames) <= 1 {
		return
	}
	t.frames[len(t.frames)-1] = nil
	t.frames = t.frames[:len(t.frames)-1]
}

// Depth is the number of live frames, 1 for the global frame alone.
func (t *Table) Depth() int {
	return len(t.frames)
}

// Declare adds a symbol ONLY to the innermost frame.
// Declaring a name that lives in an enclosing frame shadows it.
func (t *Table) Declare(name string, info symbols.SymbolInfo) error {
	cur := t.frames[len(t.frames)-1]
	if prev, exists := cur[name]; exists {
		return fmt.Errorf("'%s' %w (line %d)", name, ErrDuplicate, prev.Line)
	}
	cur[name] = info
	return nil
}

// Resolve searches for a symbol starting from the innermost frame and
// walking outwards.
func (t *Table) Resolve(name string) (symbols.SymbolInfo, error) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if info, ok := t.frames[i][name]; ok {
			return info, nil
		}
	}
	return symbols.SymbolInfo{}, fmt.Errorf("'%s' %w in any enclosing scope", name, ErrUnresolved)
}

// LookupCurrent checks ONLY the innermost frame.
func (t *Table) LookupCurrent(name string) (symbols.SymbolInfo, bool) {
	info, ok := t.frames[len(t.frames)-1][name]
	return info, ok
}
