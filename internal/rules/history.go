package rules

// History is an append-only log of replaced rule sets. A positive limit keeps
// only the most recent entries; otherwise the log grows without bound.
type History struct {
	limit   int
	entries []RuleSet
	dropped int
}

// NewHistory returns an empty log capped at limit entries (<= 0 for none).
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push appends a copy of rs, evicting the oldest entry when full.
func (h *History) Push(rs RuleSet) {
	if h.limit > 0 && len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
		h.dropped++
	}
	h.entries = append(h.entries, rs.Clone())
}

// Len returns the number of retained entries.
func (h *History) Len() int { return len(h.entries) }

// Limit returns the configured cap, 0 when unbounded.
func (h *History) Limit() int { return h.limit }

// Dropped returns how many entries were evicted by the cap since the last Clear.
func (h *History) Dropped() int { return h.dropped }

// Entries returns copies of the retained entries, oldest first.
func (h *History) Entries() []RuleSet {
	out := make([]RuleSet, len(h.entries))
	for i, rs := range h.entries {
		out[i] = rs.Clone()
	}
	return out
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(n int) []RuleSet {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]RuleSet, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i].Clone())
	}
	return out
}

// Clear empties the log.
func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.dropped = 0
}
