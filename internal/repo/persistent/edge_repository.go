package persistent

import (
	"errors"

	"velvet/internal/model"

	"gorm.io/gorm"
)

// EdgeRepository manages the relation rows between users: subscriptions,
// unlocks and blocks. All three are plain (a, b) pairs with a uniqueness
// constraint on the pair.
type EdgeRepository interface {
	HasSubscription(subscriberID, creatorID string) (bool, error)
	CreateSubscription(subscriberID, creatorID string) error
	DeleteSubscription(subscriberID, creatorID string) error
	CountSubscribers(creatorID string) (int64, error)
	ListSubscribedCreatorIDs(subscriberID string) ([]string, error)

	HasUnlock(userID, postID string) (bool, error)
	CreateUnlock(userID, postID string) error
	ListUnlockedPostIDs(userID string) ([]string, error)

	CreateBlock(blockerID, blockedID string) error
	DeleteBlock(blockerID, blockedID string) error
	ListBlockedIDs(blockerID string) ([]string, error)
	IsBlockedEither(a, b string) (bool, error)
}

type edgeRepository struct {
	db *gorm.DB
}

func NewEdgeRepository(db *gorm.DB) EdgeRepository {
	return &edgeRepository{db: db}
}

func (r *edgeRepository) HasSubscription(subscriberID, creatorID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND creator_id = ?", subscriberID, creatorID).
		Count(&count).Error
	return count > 0, err
}

func (r *edgeRepository) CreateSubscription(subscriberID, creatorID string) error {
	sub := &model.SubscriptionModel{
		SubscriberID: subscriberID,
		CreatorID:    creatorID,
	}
	return r.db.Create(sub).Error
}

func (r *edgeRepository) DeleteSubscription(subscriberID, creatorID string) error {
	return r.db.Where("subscriber_id = ? AND creator_id = ?", subscriberID, creatorID).
		Delete(&model.SubscriptionModel{}).Error
}

func (r *edgeRepository) CountSubscribers(creatorID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

func (r *edgeRepository) ListSubscribedCreatorIDs(subscriberID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Pluck("creator_id", &ids).Error
	return ids, err
}

func (r *edgeRepository) HasUnlock(userID, postID string) (bool, error) {
	var unlock model.UnlockModel
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		First(&unlock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *edgeRepository) CreateUnlock(userID, postID string) error {
	unlock := &model.UnlockModel{
		UserID: userID,
		PostID: postID,
	}
	return r.db.Create(unlock).Error
}

func (r *edgeRepository) ListUnlockedPostIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.UnlockModel{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	return ids, err
}

func (r *edgeRepository) CreateBlock(blockerID, blockedID string) error {
	block := &model.BlockModel{
		BlockerID: blockerID,
		BlockedID: blockedID,
	}
	return r.db.Create(block).Error
}

func (r *edgeRepository) DeleteBlock(blockerID, blockedID string) error {
	return r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.BlockModel{}).Error
}

func (r *edgeRepository) ListBlockedIDs(blockerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.BlockModel{}).
		Where("blocker_id = ?", blockerID).
		Pluck("blocked_id", &ids).Error
	return ids, err
}

// IsBlockedEither reports whether either user has blocked the other.
func (r *edgeRepository) IsBlockedEither(a, b string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BlockModel{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}
