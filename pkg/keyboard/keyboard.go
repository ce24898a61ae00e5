package keyboard

import (
	"fmt"
	"io"
	"strconv"
)

// Keyboard is an immutable grid of buttons produced by a Builder.
type Keyboard struct {
	kind Kind
	rows [][]*Button
}

func (k *Keyboard) Kind() Kind { return k.kind }

// Len returns the number of rows.
func (k *Keyboard) Len() int { return len(k.rows) }

// Count returns the total number of buttons.
func (k *Keyboard) Count() int {
	n := 0
	for _, row := range k.rows {
		n += len(row)
	}
	return n
}

// Rows returns a copy of the row structure. Buttons are shared.
func (k *Keyboard) Rows() [][]*Button {
	out := make([][]*Button, len(k.rows))
	for i, row := range k.rows {
		out[i] = append([]*Button(nil), row...)
	}
	return out
}

// RowHeader returns the header printed before row n (1-based).
func RowHeader(n int) string { return "{ROW" + strconv.Itoa(n) + "}" }

// Lines returns what Print writes, one element per line call:
// a row header followed by every rendered button of that row.
func (k *Keyboard) Lines() []string {
	lines := make([]string, 0, len(k.rows)+k.Count())
	for i, row := range k.rows {
		lines = append(lines, RowHeader(i+1))
		for _, b := range row {
			lines = append(lines, b.Render())
		}
	}
	return lines
}

// Print writes the keyboard to w, row-major, one line call per element of Lines.
func (k *Keyboard) Print(w io.Writer) error {
	for _, line := range k.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
