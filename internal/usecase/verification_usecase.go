package usecase

import (
	"fmt"
	"io"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"

	"github.com/google/uuid"
)

// VerificationUseCase runs the become-a-creator workflow: a user submits
// their legal name plus two identity documents, an admin approves or
// rejects. Approval promotes the profile to a verified creator.
type VerificationUseCase interface {
	Submit(userID, fullLegalName string, idDoc, selfie io.Reader, contentType string) (*entity.VerificationRequest, error)
	ListPending() ([]*entity.VerificationRequest, error)
	Approve(adminID, requestID string) error
	Reject(adminID, requestID string) error
}

type verificationUseCase struct {
	verificationRepo persistent.VerificationRepository
	profileRepo      persistent.ProfileRepository
	fileStore        FileStore
	publisher        TaskPublisher
	logger           *logger.Logger
}

func NewVerificationUseCase(
	verificationRepo persistent.VerificationRepository,
	profileRepo persistent.ProfileRepository,
	fileStore FileStore,
	publisher TaskPublisher,
	log *logger.Logger,
) VerificationUseCase {
	return &verificationUseCase{
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		fileStore:        fileStore,
		publisher:        publisher,
		logger:           log,
	}
}

// Submit stores both documents and files the request as pending. A user with
// a pending request cannot file another; a rejected user may re-apply.
func (uc *verificationUseCase) Submit(userID, fullLegalName string, idDoc, selfie io.Reader, contentType string) (*entity.VerificationRequest, error) {
	pending, err := uc.verificationRepo.HasPending(userID)
	if err != nil {
		return nil, fmt.Errorf("pending check: %w", err)
	}
	if pending {
		return nil, ErrPendingRequest
	}

	idDocURL, err := uc.fileStore.UploadFile(
		fmt.Sprintf("verification/%s/id-%s", userID, uuid.New().String()),
		idDoc, contentType,
	)
	if err != nil {
		return nil, fmt.Errorf("upload id document: %w", err)
	}

	selfieURL, err := uc.fileStore.UploadFile(
		fmt.Sprintf("verification/%s/selfie-%s", userID, uuid.New().String()),
		selfie, contentType,
	)
	if err != nil {
		return nil, fmt.Errorf("upload selfie: %w", err)
	}

	req, err := uc.verificationRepo.Create(&entity.VerificationRequest{
		UserID:          userID,
		FullLegalName:   fullLegalName,
		IDDocumentURL:   idDocURL,
		SelfieWithIDURL: selfieURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	uc.logger.Info("Verification request %s submitted by %s", req.ID, userID)
	return req, nil
}

func (uc *verificationUseCase) ListPending() ([]*entity.VerificationRequest, error) {
	return uc.verificationRepo.ListPending()
}

func (uc *verificationUseCase) Approve(adminID, requestID string) error {
	req, err := uc.requireAdminAndPending(adminID, requestID)
	if err != nil {
		return err
	}

	if err := uc.verificationRepo.Approve(requestID); err != nil {
		return fmt.Errorf("approve request: %w", err)
	}

	uc.logger.Info("Verification request %s approved by %s", requestID, adminID)
	uc.notifyDecision(req.UserID, "verification_approved")
	return nil
}

func (uc *verificationUseCase) Reject(adminID, requestID string) error {
	req, err := uc.requireAdminAndPending(adminID, requestID)
	if err != nil {
		return err
	}

	if err := uc.verificationRepo.Reject(requestID); err != nil {
		return fmt.Errorf("reject request: %w", err)
	}

	uc.logger.Info("Verification request %s rejected by %s", requestID, adminID)
	uc.notifyDecision(req.UserID, "verification_rejected")
	return nil
}

func (uc *verificationUseCase) requireAdminAndPending(adminID, requestID string) (*entity.VerificationRequest, error) {
	admin, err := uc.profileRepo.GetByID(adminID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !admin.IsAdmin {
		return nil, ErrForbidden
	}

	req, err := uc.verificationRepo.GetByID(requestID)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Status != entity.VerificationPending {
		return nil, ErrRequestDecided
	}
	return req, nil
}

func (uc *verificationUseCase) notifyDecision(userID, event string) {
	if uc.publisher == nil {
		return
	}
	err := uc.publisher.PublishNotificationTask(map[string]interface{}{
		"user_id":  userID,
		"event":    event,
		"priority": 7,
	})
	if err != nil {
		uc.logger.Warn("Failed to publish %s notification: %v", event, err)
	}
}
