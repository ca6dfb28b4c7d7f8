package shell

// History is the list of lines submitted during a session, with a browsing
// cursor. The cursor ranges over [0, Len()]; Len() means the user is not
// browsing and the typed line is authoritative.
type History struct {
	entries []string
	cursor  int
	// limit bounds the number of entries; 0 means unbounded.
	limit int
}

// NewHistory creates an empty history keeping at most limit entries.
// A limit of 0 or less keeps every entry.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Add appends line unless it is empty or repeats the most recent entry.
// The cursor is reset either way. Returns true if the line was stored.
func (h *History) Add(line string) bool {
	defer h.Reset()

	if line == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == line {
		return false
	}

	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return true
}

// Up moves the cursor to the previous (older) entry, stopping at the oldest,
// and returns the line at the new position.
func (h *History) Up() string {
	if h.cursor > 0 {
		h.cursor--
	}
	return h.Current()
}

// Down moves the cursor to the next (newer) entry, stopping past the newest,
// and returns the line at the new position.
func (h *History) Down() string {
	if h.cursor < len(h.entries) {
		h.cursor++
	}
	return h.Current()
}

// Current returns the entry under the cursor, or "" when not browsing.
func (h *History) Current() string {
	if h.cursor < len(h.entries) {
		return h.entries[h.cursor]
	}
	return ""
}

// Reset stops browsing.
func (h *History) Reset() {
	h.cursor = len(h.entries)
}

// Cursor returns the browsing position.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}
