package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string    `gorm:"type:uuid;not null;uniqueIndex:idx_sub_pair" json:"subscriber_id"`
	CreatorID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_sub_pair;index" json:"creator_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type UnlockModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_unlock_pair" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_unlock_pair;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (UnlockModel) TableName() string {
	return "unlocks"
}

func (u *UnlockModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type BlockModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	BlockerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID string    `gorm:"type:uuid;not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (BlockModel) TableName() string {
	return "blocks"
}

func (b *BlockModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
