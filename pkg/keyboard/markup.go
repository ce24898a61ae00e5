package keyboard

import (
	"strconv"
	"strings"
	"unicode"

	tele "gopkg.in/telebot.v4"
)

// maxUniqueLen keeps "\f" + unique + "|" + data within Telegram's 64-byte
// callback_data limit for the payloads produced here.
const maxUniqueLen = 48

// CallbackUnique derives a telebot handler id from a label:
// lower-case letters and digits are kept, every other run becomes "_".
func CallbackUnique(label string) string {
	var b strings.Builder
	sep := false
	for _, r := range strings.ToLower(label) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			if b.Len() >= maxUniqueLen {
				break
			}
			continue
		}
		sep = true
	}
	if b.Len() == 0 {
		return "btn"
	}
	return b.String()
}

// CallbackData is the payload attached to the inline button at row/col (0-based).
func CallbackData(row, col int) string {
	return strconv.Itoa(row) + ":" + strconv.Itoa(col)
}

// Markup converts the keyboard to telebot reply markup. Inline keyboards get
// callback buttons; reply keyboards get text buttons. Empty rows are kept.
func (k *Keyboard) Markup() *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(k.rows))
	for i, row := range k.rows {
		btns := make([]tele.Btn, 0, len(row))
		for j, b := range row {
			if k.kind == KindInline {
				btns = append(btns, rm.Data(b.label, CallbackUnique(b.label), CallbackData(i, j)))
			} else {
				btns = append(btns, rm.Text(b.label))
			}
		}
		rows = append(rows, rm.Row(btns...))
	}
	if k.kind == KindInline {
		rm.Inline(rows...)
	} else {
		rm.ResizeKeyboard = true
		rm.Reply(rows...)
	}
	return rm
}
