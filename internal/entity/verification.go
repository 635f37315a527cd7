package entity

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type VerificationRequest struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	FullLegalName  string             `json:"full_legal_name"`
	IDDocumentURL  string             `json:"id_document_url"`
	SelfieWithIDURL string            `json:"selfie_with_id_url"`
	Status         VerificationStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}
