package lineeditor

// Control bytes recognised by the editor.
const (
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyTab       = 0x09
	keyNewline   = 0x0a
	keyReturn    = 0x0d
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// Arrow is the final byte of an "ESC [ x" cursor key sequence.
type Arrow byte

const (
	ArrowUp    Arrow = 'A'
	ArrowDown  Arrow = 'B'
	ArrowRight Arrow = 'C'
	ArrowLeft  Arrow = 'D'
)

// String returns the string representation of an Arrow.
func (a Arrow) String() string {
	switch a {
	case ArrowUp:
		return "Up"
	case ArrowDown:
		return "Down"
	case ArrowRight:
		return "Right"
	case ArrowLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Event is the semantic meaning of an input byte.
type Event int

const (
	EventCharacter Event = iota
	EventBackspace
	EventEnter
	EventTab
	EventEscape
	EventCtrlD
)

// String returns the string representation of an Event.
func (e Event) String() string {
	switch e {
	case EventCharacter:
		return "Character"
	case EventBackspace:
		return "Backspace"
	case EventEnter:
		return "Enter"
	case EventTab:
		return "Tab"
	case EventEscape:
		return "Escape"
	case EventCtrlD:
		return "CtrlD"
	default:
		return "Unknown"
	}
}

// Classify maps a single input byte to the event it starts.
func Classify(c byte) Event {
	switch c {
	case keyEscape:
		return EventEscape
	case keyCtrlD:
		return EventCtrlD
	case keyTab:
		return EventTab
	case keyNewline, keyReturn:
		return EventEnter
	case keyDelete, keyBackspace:
		return EventBackspace
	default:
		return EventCharacter
	}
}
