package input

import "github.com/rustyeddy/tradecalc/risk"

// Rows is an ordered list of editable rows. Resizing keeps the rows whose
// index survives and fills new slots from the default.
type Rows[T any] struct {
	items []T
	def   T
}

func NewRows[T any](n int, def T) *Rows[T] {
	r := &Rows[T]{def: def}
	r.Resize(n)
	return r
}

// Resize truncates or extends the list to n rows.
func (r *Rows[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(r.items) {
		r.items = r.items[:n:n]
		return
	}
	for len(r.items) < n {
		r.items = append(r.items, r.def)
	}
}

func (r *Rows[T]) Len() int { return len(r.items) }

// Set replaces row i. Out of range indexes are ignored.
func (r *Rows[T]) Set(i int, v T) {
	if i < 0 || i >= len(r.items) {
		return
	}
	r.items[i] = v
}

func (r *Rows[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(r.items) {
		var zero T
		return zero, false
	}
	return r.items[i], true
}

// Items returns a copy of the rows.
func (r *Rows[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// NewEntryRows sizes entry rows for strategy s. New entry rows start
// triggered.
func NewEntryRows(s risk.EntryStrategy) *Rows[EntryRow] {
	return NewRows(s.EntryCounts()[0], EntryRow{Triggered: true})
}

// SetStrategy resizes entry rows when the strategy changes: Single forces one
// row, the multi-entry strategies keep the current count when it is allowed.
func SetStrategy(rows *Rows[EntryRow], s risk.EntryStrategy) {
	if s.CountAllowed(rows.Len()) {
		return
	}
	rows.Resize(s.EntryCounts()[0])
}

// NewTPRows sizes take-profit rows, clamped to 0..MaxTakeProfits. New rows
// start not triggered.
func NewTPRows(n int) *Rows[TPRow] {
	return NewRows(clampTP(n), TPRow{})
}

// ResizeTP resizes take-profit rows, clamped to 0..MaxTakeProfits.
func ResizeTP(rows *Rows[TPRow], n int) {
	rows.Resize(clampTP(n))
}

func clampTP(n int) int {
	if n > MaxTakeProfits {
		return MaxTakeProfits
	}
	if n < 0 {
		return 0
	}
	return n
}
