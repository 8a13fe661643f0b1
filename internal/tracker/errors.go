package tracker

import (
	"errors"
	"fmt"
)

// Validation errors. They never change state.
var (
	ErrEmptyName     = errors.New("habit name is empty")
	ErrDuplicateName = errors.New("habit already exists")
	ErrNotFound      = errors.New("habit not found")
)

// PersistenceError reports a failed save. The mutation that triggered it
// is still applied in memory; the tracker stays dirty until a later save
// succeeds.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: saving %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
