package ui

// FocusManager tracks and rotates focus across the controls of a screen.
type FocusManager struct {
	Current  string   // ID of the focused control
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next control, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous control, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// Is reports whether id holds focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
