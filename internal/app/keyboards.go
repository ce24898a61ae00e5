package app

import (
	"fmt"
	"strings"

	"tgkeys/internal/config"
	"tgkeys/pkg/keyboard"
	logx "tgkeys/pkg/logx"
)

func kindOf(s string) (keyboard.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.KindInline:
		return keyboard.KindInline, nil
	case config.KindReply:
		return keyboard.KindReply, nil
	default:
		return 0, fmt.Errorf("%w: %q", keyboard.ErrUnknownKind, s)
	}
}

// BuildKeyboard drives a builder from kc: every row is added and committed,
// then the pending labels are added without a line break.
//
// Each button gets an action that logs the press; nothing here invokes it.
func BuildKeyboard(kc config.KeyboardConfig, log logx.Logger) (*keyboard.Keyboard, error) {
	kind, err := kindOf(kc.Kind)
	if err != nil {
		return nil, fmt.Errorf("keyboard %q: %w", kc.Name, err)
	}
	log = log.With(logx.String("keyboard", kc.Name))

	b, err := keyboard.NewBuilder(kind, keyboard.WithAutoCommit(kc.AutoCommit), keyboard.WithLogger(log))
	if err != nil {
		return nil, err
	}
	mk := func(label string) (*keyboard.Button, error) {
		return keyboard.NewButton(kind, label, pressAction(log, label))
	}

	for r, row := range kc.Rows {
		btns := make([]*keyboard.Button, 0, len(row))
		for c, label := range row {
			btn, err := mk(label)
			if err != nil {
				return nil, fmt.Errorf("keyboard %q rows[%d][%d]: %w", kc.Name, r, c, err)
			}
			btns = append(btns, btn)
		}
		b.AddAll(btns...).NewLine()
	}
	for c, label := range kc.Pending {
		btn, err := mk(label)
		if err != nil {
			return nil, fmt.Errorf("keyboard %q pending[%d]: %w", kc.Name, c, err)
		}
		b.Add(btn)
	}
	return b.Build(), nil
}

func pressAction(log logx.Logger, label string) keyboard.Action {
	return func() { log.Info("button pressed", logx.String("label", label)) }
}
