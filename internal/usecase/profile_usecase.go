package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"velvet/internal/entity"
	"velvet/internal/repo/geo"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// ProfileUpdate carries the editable profile fields. Nil pointers leave the
// stored value untouched.
type ProfileUpdate struct {
	Username          *string  `json:"username"`
	Bio               *string  `json:"bio"`
	Website           *string  `json:"website"`
	LocationName      *string  `json:"location_name"`
	Tags              []string `json:"tags"`
	SubscriptionPrice *int64   `json:"subscription_price"`
}

type ProfileUseCase interface {
	Get(id string) (*entity.Profile, error)
	GetByUsername(username string) (*entity.Profile, error)
	Update(userID string, update ProfileUpdate) (*entity.Profile, error)
	UploadAvatar(userID string, file io.Reader, contentType string) (string, error)
	UploadBanner(userID string, file io.Reader, contentType string) (string, error)
	Block(blockerID, blockedID string) error
	Unblock(blockerID, blockedID string) error
	DeleteAccount(ctx context.Context, userID string) error
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	userRepo    persistent.UserRepository
	edgeRepo    persistent.EdgeRepository
	geoIndex    geo.Index
	fileStore   FileStore
	logger      *logger.Logger
}

func NewProfileUseCase(
	profileRepo persistent.ProfileRepository,
	userRepo persistent.UserRepository,
	edgeRepo persistent.EdgeRepository,
	geoIndex geo.Index,
	fileStore FileStore,
	log *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		edgeRepo:    edgeRepo,
		geoIndex:    geoIndex,
		fileStore:   fileStore,
		logger:      log,
	}
}

func (uc *profileUseCase) Get(id string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (uc *profileUseCase) GetByUsername(username string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (uc *profileUseCase) Update(userID string, update ProfileUpdate) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	if update.Username != nil && *update.Username != profile.Username {
		if _, err := uc.profileRepo.GetByUsername(*update.Username); err == nil {
			return nil, ErrUsernameTaken
		}
		profile.Username = *update.Username
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Website != nil {
		profile.Website = *update.Website
	}
	if update.LocationName != nil {
		profile.LocationName = *update.LocationName
	}
	if update.Tags != nil {
		profile.Tags = update.Tags
	}
	if update.SubscriptionPrice != nil {
		if *update.SubscriptionPrice < 0 {
			return nil, ErrInvalidAmount
		}
		profile.SubscriptionPrice = *update.SubscriptionPrice
	}

	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// UploadAvatar writes to a stable per-user key. A failed write against the
// existing object is retried in replace mode.
func (uc *profileUseCase) UploadAvatar(userID string, file io.Reader, contentType string) (string, error) {
	return uc.uploadProfileImage(userID, "avatar", "avatar_url", file, contentType)
}

func (uc *profileUseCase) UploadBanner(userID string, file io.Reader, contentType string) (string, error) {
	return uc.uploadProfileImage(userID, "banner", "banner_url", file, contentType)
}

func (uc *profileUseCase) uploadProfileImage(userID, kind, field string, file io.Reader, contentType string) (string, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return "", ErrNotFound
	}

	// Buffer once; a failed first attempt drains the reader, and the retry
	// must re-send the same bytes.
	payload, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", kind, err)
	}

	key := fmt.Sprintf("profiles/%s/%s", userID, kind)
	url, err := uc.fileStore.UploadFile(key, bytes.NewReader(payload), contentType)
	if err != nil {
		uc.logger.Warn("Upload of %s for %s failed, retrying in replace mode: %v", kind, userID, err)
		url, err = uc.fileStore.ReplaceFile(key, bytes.NewReader(payload), contentType)
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", kind, err)
		}
	}

	switch field {
	case "avatar_url":
		profile.AvatarURL = url
	case "banner_url":
		profile.BannerURL = url
	}
	if err := uc.profileRepo.Update(profile); err != nil {
		return "", fmt.Errorf("save %s url: %w", kind, err)
	}
	return url, nil
}

func (uc *profileUseCase) Block(blockerID, blockedID string) error {
	if blockerID == blockedID {
		return ErrSelfAction
	}
	if _, err := uc.profileRepo.GetByID(blockedID); err != nil {
		return ErrNotFound
	}
	return uc.edgeRepo.CreateBlock(blockerID, blockedID)
}

func (uc *profileUseCase) Unblock(blockerID, blockedID string) error {
	return uc.edgeRepo.DeleteBlock(blockerID, blockedID)
}

func (uc *profileUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if err := uc.geoIndex.Remove(ctx, userID); err != nil {
		uc.logger.Warn("Failed to drop %s from geo index: %v", userID, err)
	}
	return uc.userRepo.SoftDelete(userID)
}
