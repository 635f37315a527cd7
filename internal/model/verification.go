package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationRequestModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	FullLegalName   string    `gorm:"not null" json:"full_legal_name"`
	IDDocumentURL   string    `gorm:"not null" json:"id_document_url"`
	SelfieWithIDURL string    `gorm:"not null" json:"selfie_with_id_url"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (VerificationRequestModel) TableName() string {
	return "verification_requests"
}

func (v *VerificationRequestModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
