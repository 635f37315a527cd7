package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID      string    `gorm:"type:uuid;index" json:"post_id,omitempty"`
	Type        string    `gorm:"type:varchar(20);not null;index" json:"type"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Description string    `json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
