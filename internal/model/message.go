package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	SenderID   string    `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string    `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string    `json:"content"`
	MediaURL   string    `json:"media_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// PrivateRequestModel backs the studio dashboard's pending private-show
// counter.
type PrivateRequestModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	CreatorID string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (PrivateRequestModel) TableName() string {
	return "private_requests"
}

func (p *PrivateRequestModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
