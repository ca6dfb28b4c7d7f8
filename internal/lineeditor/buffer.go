package lineeditor

import "strings"

// Buffer holds the line being edited. Editing is byte oriented and always
// happens at the end of the line.
type Buffer struct {
	bytes []byte
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{bytes: []byte{}}
}

// NewBufferWithText creates a buffer with initial text.
func NewBufferWithText(text string) *Buffer {
	return &Buffer{bytes: []byte(text)}
}

// Text returns the current line.
func (b *Buffer) Text() string {
	return string(b.bytes)
}

// Len returns the length of the line in bytes.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// SetText replaces the entire line.
func (b *Buffer) SetText(text string) {
	b.bytes = []byte(text)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.bytes = b.bytes[:0]
}

// Append adds c to the end of the line.
func (b *Buffer) Append(c byte) {
	b.bytes = append(b.bytes, c)
}

// DeleteLast removes the last byte. Returns true if a byte was removed.
func (b *Buffer) DeleteLast() bool {
	if len(b.bytes) == 0 {
		return false
	}
	b.bytes = b.bytes[:len(b.bytes)-1]
	return true
}

// LastWord returns the text after the last space.
func (b *Buffer) LastWord() string {
	text := b.Text()
	return text[strings.LastIndexByte(text, ' ')+1:]
}

// ReplaceLastWord replaces the text after the last space with word.
// Without a space the whole line is replaced.
func (b *Buffer) ReplaceLastWord(word string) {
	text := b.Text()
	b.SetText(text[:strings.LastIndexByte(text, ' ')+1] + word)
}
