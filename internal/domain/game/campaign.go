package game

// HistoryWindow is the number of trailing log entries sent to the narrator
// for continuity
const HistoryWindow = 15

// Campaign is the top-level mutable aggregate of a play session: the
// transcript plus the turn counter
type Campaign struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Theme       Theme      `json:"theme"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	History     []LogEntry `json:"history"`
	TurnCount   int        `json:"turnCount"`
}

// Append adds entries to the end of the transcript
func (c *Campaign) Append(entries ...LogEntry) {
	c.History = append(c.History, entries...)
}

// RecentHistory returns the last n entries in order
func (c *Campaign) RecentHistory(n int) []LogEntry {
	if n >= len(c.History) {
		return c.History
	}
	return c.History[len(c.History)-n:]
}
