// Package keyboard models chat-bot keyboards: rows of labeled buttons that
// may carry an action.
//
// Two button variants exist. Reply buttons render as "Button{label}" and
// inline buttons as "Inline{label}". Keyboards are assembled with a Builder,
// which collects buttons into a current row until NewLine commits it:
//
//	b := keyboard.NewInlineBuilder()
//	b.Add(keyboard.MustInline("Hello", nil)).Add(keyboard.MustInline("Test", nil))
//	b.NewLine()
//	kb := b.Build()
//	_ = kb.Print(os.Stdout)
//
// A built Keyboard is never mutated. Actions are stored for the caller and
// never invoked by this package.
package keyboard
