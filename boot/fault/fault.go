// Package fault is the boot stage's error taxonomy and its single recovery
// policy: log, blink the backlight, reset.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies an unrecoverable error.
type Kind uint8

const (
	KindTransfer Kind = iota + 1
	KindFlash
	KindInvariant
	KindTrap
)

func (k Kind) String() string {
	switch k {
	case KindTransfer:
		return "transfer"
	case KindFlash:
		return "flash"
	case KindInvariant:
		return "invariant"
	case KindTrap:
		return "trap"
	default:
		return "unknown"
	}
}

var (
	ErrTransfer  = errors.New("transfer fault")
	ErrFlash     = errors.New("flash fault")
	ErrInvariant = errors.New("invariant violation")
	ErrTrap      = errors.New("fault trap")
)

func (k Kind) sentinel() error {
	switch k {
	case KindTransfer:
		return ErrTransfer
	case KindFlash:
		return ErrFlash
	case KindInvariant:
		return ErrInvariant
	case KindTrap:
		return ErrTrap
	default:
		return nil
	}
}

// Error is a classified failure of the operation Op.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Transfer wraps a GPIO or SPI failure.
func Transfer(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindTransfer, Op: op, Err: err}
}

// Flash wraps an erase, read or write failure.
func Flash(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindFlash, Op: op, Err: err}
}

// Invariant reports a violated precondition.
func Invariant(op, format string, args ...any) error {
	return &Error{Kind: KindInvariant, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
