package types

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirLeft, "left"},
		{DirRight, "right"},
		{DirUp, "up"},
		{DirDown, "down"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("Direction.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		wantDir Direction
		wantOK  bool
	}{
		{"left", DirLeft, true},
		{"right", DirRight, true},
		{"up", DirUp, true},
		{"down", DirDown, true},
		{"invalid", 0, false},
		{"LEFT", 0, false}, // case sensitive
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotDir, gotOK := ParseDirection(tt.input)
			if gotDir != tt.wantDir || gotOK != tt.wantOK {
				t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)",
					tt.input, gotDir, gotOK, tt.wantDir, tt.wantOK)
			}
		})
	}
}

func TestCommandKindString(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{KindSwitch, "switch"},
		{KindMove, "move"},
		{CommandKind(7), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("CommandKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCommandKind(t *testing.T) {
	tests := []struct {
		input    string
		wantKind CommandKind
		wantOK   bool
	}{
		{"switch", KindSwitch, true},
		{"move", KindMove, true},
		{"Switch", 0, false},
		{"focus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotKind, gotOK := ParseCommandKind(tt.input)
			if gotKind != tt.wantKind || gotOK != tt.wantOK {
				t.Errorf("ParseCommandKind(%q) = (%v, %v), want (%v, %v)",
					tt.input, gotKind, gotOK, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestDirectionsRoundTrip(t *testing.T) {
	dirs := Directions()
	if len(dirs) != 4 {
		t.Fatalf("Directions() returned %d entries, want 4", len(dirs))
	}
	for _, d := range dirs {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, true)", d.String(), parsed, ok, d)
		}
	}
}

func TestDirectionIota(t *testing.T) {
	// Verify iota ordering
	if DirLeft != 0 {
		t.Errorf("DirLeft = %d, want 0", DirLeft)
	}
	if DirRight != 1 {
		t.Errorf("DirRight = %d, want 1", DirRight)
	}
	if DirUp != 2 {
		t.Errorf("DirUp = %d, want 2", DirUp)
	}
	if DirDown != 3 {
		t.Errorf("DirDown = %d, want 3", DirDown)
	}
}
