package undo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/sprite"
)

var (
	// ErrNotOpen is returned when a transaction is committed or rolled back
	// twice, or after it was discarded.
	ErrNotOpen = errors.New("undo: transaction is not open")

	// ErrNotCommitted is returned by Undo on a transaction that is not in
	// the committed state.
	ErrNotCommitted = errors.New("undo: transaction is not committed")

	// ErrNotUndone is returned by Redo on a transaction that was not undone.
	ErrNotUndone = errors.New("undo: transaction is not undone")

	// ErrEmpty is returned by Commit when no step was executed. The
	// transaction is discarded so it never reaches an undo history.
	ErrEmpty = errors.New("undo: empty transaction")
)

type txState uint8

const (
	txOpen txState = iota
	txCommitted
	txUndone
	txClosed // rolled back or discarded
)

// Transaction groups steps into one undo unit.
//
// A transaction is open until Commit or Rollback. While open, Execute runs
// each step immediately and records it. Thread safety: transactions are
// not safe for concurrent use, like the sprites they mutate.
type Transaction struct {
	label string
	steps []Step
	state txState
}

// New opens a transaction.
func New(label string) *Transaction {
	return &Transaction{label: label}
}

// Label returns the name given to the transaction.
func (tx *Transaction) Label() string {
	return tx.label
}

// Execute runs s and records it. It panics if the transaction is not
// open: emitting steps into a closed transaction is a programming error.
func (tx *Transaction) Execute(s Step) {
	if tx.state != txOpen {
		panic(fmt.Sprintf("undo: %s step on closed transaction %q", s.Kind(), tx.label))
	}
	s.Execute()
	tx.steps = append(tx.steps, s)
	sprite.Logger().Debug("undo: step", "tx", tx.label, "kind", s.Kind().String())
}

// Len returns the number of recorded steps.
func (tx *Transaction) Len() int {
	return len(tx.steps)
}

// Empty reports whether no step was recorded.
func (tx *Transaction) Empty() bool {
	return len(tx.steps) == 0
}

// Steps returns the recorded steps in execution order. The slice is a copy.
func (tx *Transaction) Steps() []Step {
	return slices.Clone(tx.steps)
}

// Kinds returns the kind of every recorded step in execution order.
func (tx *Transaction) Kinds() []Kind {
	kinds := make([]Kind, len(tx.steps))
	for i, s := range tx.steps {
		kinds[i] = s.Kind()
	}
	return kinds
}

// Commit closes the transaction and keeps its changes. An empty
// transaction is discarded and reported with ErrEmpty.
func (tx *Transaction) Commit() error {
	if tx.state != txOpen {
		return ErrNotOpen
	}
	if len(tx.steps) == 0 {
		tx.state = txClosed
		return ErrEmpty
	}
	tx.state = txCommitted
	sprite.Logger().Debug("undo: commit", "tx", tx.label, "steps", len(tx.steps))
	return nil
}

// Rollback undoes every executed step in reverse order and closes the
// transaction.
func (tx *Transaction) Rollback() error {
	if tx.state != txOpen {
		return ErrNotOpen
	}
	tx.undoAll()
	tx.state = txClosed
	sprite.Logger().Debug("undo: rollback", "tx", tx.label, "steps", len(tx.steps))
	return nil
}

// Undo reverts a committed transaction.
func (tx *Transaction) Undo() error {
	if tx.state != txCommitted {
		return ErrNotCommitted
	}
	tx.undoAll()
	tx.state = txUndone
	return nil
}

// Redo applies an undone transaction again.
func (tx *Transaction) Redo() error {
	if tx.state != txUndone {
		return ErrNotUndone
	}
	for _, s := range tx.steps {
		s.Execute()
	}
	tx.state = txCommitted
	return nil
}

func (tx *Transaction) undoAll() {
	for i := len(tx.steps) - 1; i >= 0; i-- {
		tx.steps[i].Undo()
	}
}
