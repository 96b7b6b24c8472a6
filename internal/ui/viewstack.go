package ui

import tea "github.com/charmbracelet/bubbletea"

// Screen is one entry of the navigation stack.
type Screen struct {
	Route AppMode
	View  View
}

// ViewStack manages the navigation history (push on navigate, pop on back).
type ViewStack struct {
	Stack []Screen
}

// Push adds a screen to the top of the stack.
func (s *ViewStack) Push(route AppMode, v View) {
	s.Stack = append(s.Stack, Screen{Route: route, View: v})
}

// Pop removes and returns the top screen.
// Returns false if the stack is empty.
func (s *ViewStack) Pop() (Screen, bool) {
	if len(s.Stack) == 0 {
		return Screen{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top screen without removing it.
func (s *ViewStack) Peek() (Screen, bool) {
	if len(s.Stack) == 0 {
		return Screen{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Replace swaps the View of the top screen, keeping its route.
func (s *ViewStack) Replace(v View) {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack[len(s.Stack)-1].View = v
}

// Len returns the number of screens in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}

// Find returns the topmost screen registered under route, wherever it sits
// in the stack.
func (s *ViewStack) Find(route AppMode) (View, bool) {
	if i := s.indexOf(route); i >= 0 {
		return s.Stack[i].View, true
	}
	return nil, false
}

// UpdateRoute delivers msg to the topmost screen registered under route and
// stores the View it returns. Screens below the top keep receiving the
// results of work they started.
func (s *ViewStack) UpdateRoute(route AppMode, msg tea.Msg) (tea.Cmd, bool) {
	i := s.indexOf(route)
	if i < 0 {
		return nil, false
	}
	v, cmd := s.Stack[i].View.Update(msg)
	s.Stack[i].View = v
	return cmd, true
}

func (s *ViewStack) indexOf(route AppMode) int {
	for i := len(s.Stack) - 1; i >= 0; i-- {
		if s.Stack[i].Route == route {
			return i
		}
	}
	return -1
}
