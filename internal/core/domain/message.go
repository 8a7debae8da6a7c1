package domain

import "time"

// Message is one entry in the support-chat log between a user and the admin
// team. From and To are usernames.
type Message struct {
	ID     string    `json:"id"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}
