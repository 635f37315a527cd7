package persistent

import (
	"time"

	"velvet/internal/entity"
	"velvet/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetByID(id string) (*entity.Profile, error)
	GetByIDs(ids []string) ([]*entity.Profile, error)
	GetByUsername(username string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	UpdateLocation(id string, lat, lng float64) error
	SetGhostMode(id string, enabled bool) error
	Sample(limit int) ([]*entity.Profile, error)
	AdjustBalance(id string, deltaCents int64) error
	CountUsers() (int64, error)
	CountCreators() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(id string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.Where("id = ?", id).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) GetByIDs(ids []string) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var profileModels []model.ProfileModel
	if err := r.db.Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

func (r *profileRepository) GetByUsername(username string) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	if err := r.db.Where("username = ?", username).First(&profileModel).Error; err != nil {
		return nil, err
	}
	return ToProfileEntity(&profileModel), nil
}

func (r *profileRepository) Update(profile *entity.Profile) error {
	profileModel := ToProfileModel(profile)
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"username":           profileModel.Username,
			"bio":                profileModel.Bio,
			"avatar_url":         profileModel.AvatarURL,
			"banner_url":         profileModel.BannerURL,
			"website":            profileModel.Website,
			"location_name":      profileModel.LocationName,
			"tags":               profileModel.Tags,
			"subscription_price": profileModel.SubscriptionPrice,
		}).Error
}

func (r *profileRepository) UpdateLocation(id string, lat, lng float64) error {
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"latitude":  lat,
			"longitude": lng,
			"last_seen": time.Now(),
		}).Error
}

func (r *profileRepository) SetGhostMode(id string, enabled bool) error {
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", id).
		Update("ghost_mode", enabled).Error
}

// Sample is the discovery fallback: a bounded unfiltered slice of profiles,
// no distance data, no ghost-mode guarantee.
func (r *profileRepository) Sample(limit int) ([]*entity.Profile, error) {
	var profileModels []model.ProfileModel
	if err := r.db.Limit(limit).Find(&profileModels).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(profileModels))
	for i := range profileModels {
		profiles[i] = ToProfileEntity(&profileModels[i])
	}
	return profiles, nil
}

func (r *profileRepository) AdjustBalance(id string, deltaCents int64) error {
	return r.db.Model(&model.ProfileModel{}).Where("id = ?", id).
		Update("balance_cents", gorm.Expr("balance_cents + ?", deltaCents)).Error
}

func (r *profileRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProfileModel{}).Count(&count).Error
	return count, err
}

func (r *profileRepository) CountCreators() (int64, error) {
	var count int64
	err := r.db.Model(&model.ProfileModel{}).Where("is_creator = ?", true).Count(&count).Error
	return count, err
}
