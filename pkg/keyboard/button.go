package keyboard

import (
	"strings"

	"tgkeys/pkg/textframe"
)

// Kind is the button variant.
type Kind uint8

const (
	// KindReply is a plain keyboard button.
	KindReply Kind = iota
	// KindInline is a compact button attached to a message.
	KindInline
)

func (k Kind) String() string {
	switch k {
	case KindReply:
		return "reply"
	case KindInline:
		return "inline"
	default:
		return "unknown"
	}
}

func (k Kind) valid() bool { return k == KindReply || k == KindInline }

// tag is the render prefix for the kind.
func (k Kind) tag() string {
	if k == KindInline {
		return "Inline"
	}
	return "Button"
}

// Action is a callback bound to a button.
type Action func()

// Button is a labeled button of one of the two kinds.
// The label is fixed at construction; the action may be replaced.
type Button struct {
	kind   Kind
	label  string
	action Action
}

// NewButton validates label and kind and returns a new button.
// action may be nil.
func NewButton(kind Kind, label string, action Action) (*Button, error) {
	if !kind.valid() {
		return nil, &ButtonError{Kind: kind, Label: label, Err: ErrUnknownKind}
	}
	if strings.TrimSpace(label) == "" {
		return nil, &ButtonError{Kind: kind, Label: label, Err: ErrEmptyLabel}
	}
	return &Button{kind: kind, label: label, action: action}, nil
}

// NewReply returns a reply button; see NewButton.
func NewReply(label string, action Action) (*Button, error) {
	return NewButton(KindReply, label, action)
}

// NewInline returns an inline button; see NewButton.
func NewInline(label string, action Action) (*Button, error) {
	return NewButton(KindInline, label, action)
}

// MustReply is like NewReply but panics on an invalid label.
func MustReply(label string, action Action) *Button {
	b, err := NewReply(label, action)
	if err != nil {
		panic(err)
	}
	return b
}

// MustInline is like NewInline but panics on an invalid label.
func MustInline(label string, action Action) *Button {
	b, err := NewInline(label, action)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Button) Kind() Kind      { return b.kind }
func (b *Button) Label() string   { return b.label }
func (b *Button) Action() Action  { return b.action }
func (b *Button) HasAction() bool { return b.action != nil }

// SetAction replaces the bound action. nil unbinds it.
func (b *Button) SetAction(fn Action) { b.action = fn }

// Tag returns the unframed form, e.g. "Inline{Hello}".
func (b *Button) Tag() string {
	return b.kind.tag() + "{" + b.label + "}"
}

// Render returns the framed form of Tag.
func (b *Button) Render() string { return textframe.Frame(b.Tag()) }

func (b *Button) String() string { return b.Render() }
