package commandtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single token", "git", []string{"git"}},
		{"two tokens", "git add", []string{"git", "add"}},
		{"trailing separator", "git add ", []string{"git", "add"}},
		{"several trailing separators", "git  ", []string{"git"}},
		{"interior empty segment", "git  add", []string{"git", "", "add"}},
		{"leading separator", " git", []string{"", "git"}},
		{"only separators", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.line, ' '))
		})
	}
}

func TestSplitOtherSeparator(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split("a,b,c,", ','))
}
