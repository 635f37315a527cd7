package entity

import "time"

// Message is one direct-message row. There is no conversation entity; a
// conversation is the set of distinct counterpart ids across sent and
// received rows.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"media_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MergeMessages reconciles an incoming realtime batch with locally known
// rows by id, so an optimistic insert and its own change event never
// duplicate. Order of ms is preserved; new rows append in incoming order.
func MergeMessages(ms []Message, incoming ...Message) []Message {
	seen := make(map[string]bool, len(ms))
	for _, m := range ms {
		seen[m.ID] = true
	}
	for _, m := range incoming {
		if !seen[m.ID] {
			ms = append(ms, m)
			seen[m.ID] = true
		}
	}
	return ms
}
