package persistent

import (
	"velvet/internal/entity"
	"velvet/internal/model"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	Create(req *entity.VerificationRequest) (*entity.VerificationRequest, error)
	GetByID(id string) (*entity.VerificationRequest, error)
	HasPending(userID string) (bool, error)
	ListPending() ([]*entity.VerificationRequest, error)
	CountPending() (int64, error)
	Approve(id string) error
	Reject(id string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(req *entity.VerificationRequest) (*entity.VerificationRequest, error) {
	reqModel := &model.VerificationRequestModel{
		UserID:          req.UserID,
		FullLegalName:   req.FullLegalName,
		IDDocumentURL:   req.IDDocumentURL,
		SelfieWithIDURL: req.SelfieWithIDURL,
		Status:          string(entity.VerificationPending),
	}
	if err := r.db.Create(reqModel).Error; err != nil {
		return nil, err
	}
	return ToVerificationEntity(reqModel), nil
}

func (r *verificationRepository) GetByID(id string) (*entity.VerificationRequest, error) {
	var reqModel model.VerificationRequestModel
	if err := r.db.Where("id = ?", id).First(&reqModel).Error; err != nil {
		return nil, err
	}
	return ToVerificationEntity(&reqModel), nil
}

func (r *verificationRepository) HasPending(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.VerificationRequestModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.VerificationPending)).
		Count(&count).Error
	return count > 0, err
}

func (r *verificationRepository) ListPending() ([]*entity.VerificationRequest, error) {
	var reqModels []model.VerificationRequestModel
	err := r.db.Where("status = ?", string(entity.VerificationPending)).
		Order("created_at ASC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}

	reqs := make([]*entity.VerificationRequest, len(reqModels))
	for i := range reqModels {
		reqs[i] = ToVerificationEntity(&reqModels[i])
	}
	return reqs, nil
}

func (r *verificationRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.VerificationRequestModel{}).
		Where("status = ?", string(entity.VerificationPending)).
		Count(&count).Error
	return count, err
}

// Approve flips the request to approved and promotes the profile to a
// verified creator in the same transaction. Either both rows change or
// neither does.
func (r *verificationRepository) Approve(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var reqModel model.VerificationRequestModel
		if err := tx.Where("id = ?", id).First(&reqModel).Error; err != nil {
			return err
		}

		err := tx.Model(&model.VerificationRequestModel{}).
			Where("id = ?", id).
			Update("status", string(entity.VerificationApproved)).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.ProfileModel{}).
			Where("id = ?", reqModel.UserID).
			Updates(map[string]interface{}{
				"is_creator":  true,
				"is_verified": true,
			}).Error
	})
}

func (r *verificationRepository) Reject(id string) error {
	return r.db.Model(&model.VerificationRequestModel{}).
		Where("id = ?", id).
		Update("status", string(entity.VerificationRejected)).Error
}
