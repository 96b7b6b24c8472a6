package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Santos", 10, "Santos"},
		{"Santos", 6, "Santos"},
		{"São Miguel das Missões", 8, "São Mig…"},
		{"Campinas", 1, "…"},
		{"Campinas", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if got := VisualWidth(Truncate(tt.in, tt.max)); got > tt.max && tt.max > 0 {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.max, got)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("SP", 4); got != "SP  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadRightVisual("Niterói", 7); got != "Niterói" {
		t.Errorf("PadRightVisual exact = %q", got)
	}
	if got := PadRightVisual("Florianópolis", 5); got != "Flor…" {
		t.Errorf("PadRightVisual overflow = %q", got)
	}
}
