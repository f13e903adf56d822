package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicateSlug surfaces the shops.slug unique constraint, so a create
// that loses the race to a concurrent duplicate reads the same as a
// pre-checked taken slug.
var ErrDuplicateSlug = errors.New("slug already exists")

// InsufficientCreditsError is returned by a debit that would drive the balance
// negative. It carries the amounts so handlers can report need/have.
type InsufficientCreditsError struct {
	Need int64
	Have int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: need %d, have %d", e.Need, e.Have)
}
