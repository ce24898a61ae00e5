package keyboard

// rowAccumulator holds the row being filled and the rows already committed.
// Committed rows are copies, so later appends never reach them.
type rowAccumulator struct {
	current   []*Button
	committed [][]*Button
}

func (a *rowAccumulator) add(bs ...*Button) {
	a.current = append(a.current, bs...)
}

// commit freezes the current row (possibly empty) and starts a new one.
func (a *rowAccumulator) commit() {
	row := make([]*Button, len(a.current))
	copy(row, a.current)
	a.committed = append(a.committed, row)
	a.current = a.current[:0]
}

func (a *rowAccumulator) pending() int { return len(a.current) }

// take hands the committed rows over and resets the accumulator.
func (a *rowAccumulator) take() [][]*Button {
	rows := a.committed
	if rows == nil {
		rows = [][]*Button{}
	}
	a.committed = nil
	a.current = nil
	return rows
}
