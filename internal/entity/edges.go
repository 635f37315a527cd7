package entity

import "time"

// Subscription is a recurring access grant from a subscriber to a creator.
// At most one active edge exists per (subscriber, creator) pair.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	CreatorID    string    `json:"creator_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Unlock is a permanent one-off access grant to a single locked post.
// Create-only; there is no refund or revocation path.
type Unlock struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Block suppresses the blocked user from the blocker's discovery results.
type Block struct {
	ID        string    `json:"id"`
	BlockerID string    `json:"blocker_id"`
	BlockedID string    `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
