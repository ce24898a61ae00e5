package keyboard

import (
	logx "tgkeys/pkg/logx"
)

// Option configures a Builder.
type Option func(*Builder)

// WithAutoCommit makes Build commit a non-empty pending row instead of
// dropping it.
func WithAutoCommit(on bool) Option {
	return func(b *Builder) { b.autoCommit = on }
}

// WithLogger sets the logger used to report dropped rows.
func WithLogger(log logx.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// Builder assembles a Keyboard row by row.
//
// Buttons go into the current row until NewLine commits it. By default a
// current row that was never committed is dropped by Build.
//
// A Builder is meant for a single goroutine; guard it externally if shared.
type Builder struct {
	kind       Kind
	acc        rowAccumulator
	autoCommit bool
	log        logx.Logger
}

// NewInlineBuilder returns a builder for inline keyboards.
func NewInlineBuilder(opts ...Option) *Builder { return newBuilder(KindInline, opts) }

// NewReplyBuilder returns a builder for reply keyboards.
func NewReplyBuilder(opts ...Option) *Builder { return newBuilder(KindReply, opts) }

// NewBuilder returns a builder for the given kind.
func NewBuilder(kind Kind, opts ...Option) (*Builder, error) {
	if !kind.valid() {
		return nil, ErrUnknownKind
	}
	return newBuilder(kind, opts), nil
}

func newBuilder(kind Kind, opts []Option) *Builder {
	b := &Builder{kind: kind}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *Builder) Kind() Kind { return b.kind }

// Add appends a button to the current row.
// nil buttons, and reply buttons given to an inline builder, are skipped.
func (b *Builder) Add(btn *Button) *Builder {
	if b.accept(btn) {
		b.acc.add(btn)
	}
	return b
}

// AddAll appends buttons to the current row in order, skipping the same
// buttons Add skips.
func (b *Builder) AddAll(btns ...*Button) *Builder {
	for _, btn := range btns {
		b.Add(btn)
	}
	return b
}

// accept reports whether btn may join a row of this builder.
// A reply builder takes both kinds; an inline builder takes inline only.
func (b *Builder) accept(btn *Button) bool {
	if btn == nil {
		b.log.Warn("nil button skipped", logx.String("kind", b.kind.String()))
		return false
	}
	if b.kind == KindInline && btn.kind != KindInline {
		b.log.Warn("non-inline button skipped by inline builder",
			logx.String("label", btn.label),
			logx.String("button_kind", btn.kind.String()),
		)
		return false
	}
	return true
}

// NewLine commits the current row, even when empty, and starts a new one.
func (b *Builder) NewLine() *Builder {
	b.acc.commit()
	return b
}

// Pending returns the number of buttons in the uncommitted row.
func (b *Builder) Pending() int { return b.acc.pending() }

// Build returns the keyboard made of the committed rows.
// The builder should not be reused afterwards.
func (b *Builder) Build() *Keyboard {
	if n := b.acc.pending(); n > 0 {
		if b.autoCommit {
			b.acc.commit()
			b.log.Debug("pending row committed on build", logx.String("kind", b.kind.String()), logx.Int("buttons", n))
		} else {
			b.log.Warn("pending row dropped on build; call NewLine first", logx.String("kind", b.kind.String()), logx.Int("buttons", n))
		}
	}
	kb := &Keyboard{kind: b.kind, rows: b.acc.take()}
	b.log.Debug("keyboard built", logx.String("kind", kb.kind.String()), logx.Int("rows", kb.Len()), logx.Int("buttons", kb.Count()))
	return kb
}
