package persistent

import (
	"time"

	"velvet/internal/entity"
	"velvet/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Register(email, passwordHash, username string) (*entity.Profile, error)
	GetCredentials(email string) (userID, passwordHash string, err error)
	UpdatePasswordHash(userID, passwordHash string) error
	SoftDelete(userID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Register inserts the auth user and its profile row in one transaction so
// a crash between the two cannot leave a credential without a profile.
func (r *userRepository) Register(email, passwordHash, username string) (*entity.Profile, error) {
	id := uuid.New().String()
	profileModel := &model.ProfileModel{
		ID:       id,
		Username: username,
		LastSeen: time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		user := &model.UserModel{
			ID:           id,
			Email:        email,
			PasswordHash: passwordHash,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(profileModel).Error
	})
	if err != nil {
		return nil, err
	}

	return ToProfileEntity(profileModel), nil
}

func (r *userRepository) GetCredentials(email string) (string, string, error) {
	var user model.UserModel
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", "", err
	}
	return user.ID, user.PasswordHash, nil
}

func (r *userRepository) UpdatePasswordHash(userID, passwordHash string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// SoftDelete removes the account and its profile from all reads. Posts and
// ledger rows stay for audit.
func (r *userRepository) SoftDelete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).Delete(&model.ProfileModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&model.UserModel{}).Error
	})
}
