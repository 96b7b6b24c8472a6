package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	var changes []string
	f := NewFocusManager("uf", "city", "submit")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if f.Current != "uf" {
		t.Fatalf("expected initial focus uf, got %q", f.Current)
	}
	if got := f.Next(); got != "city" {
		t.Errorf("Next = %q", got)
	}
	f.Next()
	if got := f.Next(); got != "uf" {
		t.Errorf("Next should wrap to uf, got %q", got)
	}
	if got := f.Prev(); got != "submit" {
		t.Errorf("Prev should wrap to submit, got %q", got)
	}
	if len(changes) != 4 || changes[0] != "uf>city" {
		t.Errorf("unexpected change log %v", changes)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := NewFocusManager()
	if f.Next() != "" || f.Prev() != "" {
		t.Error("empty order should yield empty focus")
	}
}
