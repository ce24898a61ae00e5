package keyboard

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLabel is returned for a blank button label.
	ErrEmptyLabel = errors.New("keyboard: empty button label")
	// ErrUnknownKind is returned for a Kind other than KindReply or KindInline.
	ErrUnknownKind = errors.New("keyboard: unknown button kind")
)

// ButtonError reports an invalid argument passed to NewButton.
type ButtonError struct {
	Kind  Kind
	Label string
	Err   error
}

func (e *ButtonError) Error() string {
	return fmt.Sprintf("invalid argument: %s button %q: %v", e.Kind, e.Label, e.Err)
}

func (e *ButtonError) Unwrap() error { return e.Err }
