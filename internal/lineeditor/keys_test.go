package lineeditor

import "testing"

func TestArrowString(t *testing.T) {
	tests := []struct {
		arrow    Arrow
		expected string
	}{
		{ArrowUp, "Up"},
		{ArrowDown, "Down"},
		{ArrowRight, "Right"},
		{ArrowLeft, "Left"},
		{Arrow('Z'), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.arrow.String(); got != tt.expected {
				t.Errorf("Arrow.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    byte
		expected Event
	}{
		{"printable", 'a', EventCharacter},
		{"space", ' ', EventCharacter},
		{"delete", 0x7f, EventBackspace},
		{"backspace", 0x08, EventBackspace},
		{"newline", '\n', EventEnter},
		{"carriage return", '\r', EventEnter},
		{"tab", '\t', EventTab},
		{"escape", 0x1b, EventEscape},
		{"ctrl+d", 0x04, EventCtrlD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	if EventCtrlD.String() != "CtrlD" {
		t.Errorf("expected CtrlD, got %q", EventCtrlD.String())
	}
	if Event(99).String() != "Unknown" {
		t.Errorf("expected Unknown, got %q", Event(99).String())
	}
}
