package history

import "errors"

// DefaultLimit is the number of entries New keeps when given a non-positive
// limit.
const DefaultLimit = 100

var (
	// ErrNothingToUndo is returned by Undo at the oldest entry.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo is returned by Redo at the newest entry.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Entry is one recorded state and the action that produced it.
type Entry struct {
	Label string
	State State
}

// History is a bounded undo/redo list of view states. The zero value is not
// usable; call New.
//
// History is not safe for concurrent use.
type History struct {
	entries []Entry
	cur     int // index of the current entry, -1 when empty
	limit   int
}

// New returns an empty history holding at most limit entries.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{cur: -1, limit: limit}
}

// Push records s as the new current entry. Entries after the current one
// are discarded; when the list is full the oldest entry is dropped.
func (h *History) Push(label string, s State) {
	h.entries = append(h.entries[:h.cur+1], Entry{Label: label, State: s.Clone()})
	if over := len(h.entries) - h.limit; over > 0 {
		clear(h.entries[:over])
		h.entries = h.entries[over:]
	}
	h.cur = len(h.entries) - 1
}

// Undo steps back one entry and returns the state to restore.
func (h *History) Undo() (State, error) {
	if !h.CanUndo() {
		return State{}, ErrNothingToUndo
	}
	h.cur--
	return h.entries[h.cur].State.Clone(), nil
}

// Redo steps forward one entry and returns the state to restore.
func (h *History) Redo() (State, error) {
	if !h.CanRedo() {
		return State{}, ErrNothingToRedo
	}
	h.cur++
	return h.entries[h.cur].State.Clone(), nil
}

// CanUndo reports whether an older entry exists.
func (h *History) CanUndo() bool { return h.cur > 0 }

// CanRedo reports whether a newer entry exists.
func (h *History) CanRedo() bool { return h.cur < len(h.entries)-1 }

// Current returns the current entry.
func (h *History) Current() (Entry, bool) {
	if h.cur < 0 {
		return Entry{}, false
	}
	e := h.entries[h.cur]
	e.State = e.State.Clone()
	return e, true
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Clear removes every entry.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
	h.cur = -1
}
