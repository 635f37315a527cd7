package usecase

import (
	"fmt"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// platformFeePercent is the cut retained on every paid grant. The creator's
// earning entry is the price minus this cut.
const platformFeePercent = 20

// TaskPublisher pushes background notification work onto the broker.
type TaskPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

// RegistryUseCase owns the paid access grants: subscriptions and per-post
// unlocks. Every paid grant appends ledger entries for both sides; balances
// are settled separately.
type RegistryUseCase interface {
	Subscribe(viewerID, creatorID string, priceAcknowledged bool) error
	Unsubscribe(viewerID, creatorID string) error
	UnlockPost(viewerID, postID string, priceAcknowledged bool) error
	IsSubscribed(viewerID, creatorID string) (bool, error)
	ListSubscriptions(viewerID string) ([]*entity.Profile, error)
	ListUnlockedPosts(viewerID string) ([]*entity.Post, error)
}

type registryUseCase struct {
	profileRepo persistent.ProfileRepository
	postRepo    persistent.PostRepository
	edgeRepo    persistent.EdgeRepository
	txRepo      persistent.TransactionRepository
	publisher   TaskPublisher
	logger      *logger.Logger
}

func NewRegistryUseCase(
	profileRepo persistent.ProfileRepository,
	postRepo persistent.PostRepository,
	edgeRepo persistent.EdgeRepository,
	txRepo persistent.TransactionRepository,
	publisher TaskPublisher,
	log *logger.Logger,
) RegistryUseCase {
	return &registryUseCase{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		edgeRepo:    edgeRepo,
		txRepo:      txRepo,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *registryUseCase) Subscribe(viewerID, creatorID string, priceAcknowledged bool) error {
	if viewerID == creatorID {
		return ErrSelfAction
	}

	creator, err := uc.profileRepo.GetByID(creatorID)
	if err != nil {
		return ErrNotFound
	}
	if !creator.IsCreator {
		return ErrNotCreator
	}

	subscribed, err := uc.edgeRepo.HasSubscription(viewerID, creatorID)
	if err != nil {
		return fmt.Errorf("subscription check: %w", err)
	}
	if subscribed {
		return ErrAlreadySubscribed
	}

	if creator.SubscriptionPrice > 0 && !priceAcknowledged {
		return ErrPriceNotAcknowledged
	}

	if err := uc.edgeRepo.CreateSubscription(viewerID, creatorID); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	if creator.SubscriptionPrice > 0 {
		uc.recordPurchase(viewerID, creatorID, "", creator.SubscriptionPrice,
			fmt.Sprintf("Subscription to @%s", creator.Username))
	}

	uc.notify(creatorID, "new_subscriber", map[string]interface{}{
		"subscriber_id": viewerID,
	})
	return nil
}

// Unsubscribe removes the recurring grant. Unlocks bought while subscribed
// are permanent and are deliberately left untouched.
func (uc *registryUseCase) Unsubscribe(viewerID, creatorID string) error {
	subscribed, err := uc.edgeRepo.HasSubscription(viewerID, creatorID)
	if err != nil {
		return fmt.Errorf("subscription check: %w", err)
	}
	if !subscribed {
		return ErrNotSubscribed
	}
	return uc.edgeRepo.DeleteSubscription(viewerID, creatorID)
}

// UnlockPost grants permanent access to one locked post. Unlocking a post
// already unlocked is a no-op: no second edge, no second charge.
func (uc *registryUseCase) UnlockPost(viewerID, postID string, priceAcknowledged bool) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return ErrNotFound
	}
	if post.UserID == viewerID {
		return ErrSelfAction
	}
	if !post.IsLocked {
		return ErrPostNotLocked
	}

	unlocked, err := uc.edgeRepo.HasUnlock(viewerID, postID)
	if err != nil {
		return fmt.Errorf("unlock check: %w", err)
	}
	if unlocked {
		return nil
	}

	creator, err := uc.profileRepo.GetByID(post.UserID)
	if err != nil {
		return ErrNotFound
	}
	if creator.SubscriptionPrice > 0 && !priceAcknowledged {
		return ErrPriceNotAcknowledged
	}

	if err := uc.edgeRepo.CreateUnlock(viewerID, postID); err != nil {
		return fmt.Errorf("create unlock: %w", err)
	}

	if creator.SubscriptionPrice > 0 {
		uc.recordPurchase(viewerID, creator.ID, postID, creator.SubscriptionPrice,
			fmt.Sprintf("Unlocked post by @%s", creator.Username))
	}

	uc.notify(creator.ID, "post_unlocked", map[string]interface{}{
		"post_id":  postID,
		"buyer_id": viewerID,
	})
	return nil
}

func (uc *registryUseCase) IsSubscribed(viewerID, creatorID string) (bool, error) {
	return uc.edgeRepo.HasSubscription(viewerID, creatorID)
}

func (uc *registryUseCase) ListSubscriptions(viewerID string) ([]*entity.Profile, error) {
	ids, err := uc.edgeRepo.ListSubscribedCreatorIDs(viewerID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return uc.profileRepo.GetByIDs(ids)
}

// ListUnlockedPosts returns the posts behind the viewer's unlock edges. An
// edge whose post has since been deleted is skipped, not an error.
func (uc *registryUseCase) ListUnlockedPosts(viewerID string) ([]*entity.Post, error) {
	ids, err := uc.edgeRepo.ListUnlockedPostIDs(viewerID)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}

	posts := make([]*entity.Post, 0, len(ids))
	for _, id := range ids {
		post, err := uc.postRepo.GetByID(id)
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// recordPurchase settles a paid grant: both balances move and both ledger
// sides are appended, the buyer's negative purchase and the creator's earning
// net of the platform cut. The grant itself has already been committed; a
// write failure here is logged and left for reconciliation rather than
// revoking access.
func (uc *registryUseCase) recordPurchase(buyerID, creatorID, postID string, priceCents int64, description string) {
	earningCents := priceCents * (100 - platformFeePercent) / 100

	if err := uc.profileRepo.AdjustBalance(buyerID, -priceCents); err != nil {
		uc.logger.Error("Failed to debit %s: %v", buyerID, err)
	}
	if err := uc.profileRepo.AdjustBalance(creatorID, earningCents); err != nil {
		uc.logger.Error("Failed to credit %s: %v", creatorID, err)
	}

	_, err := uc.txRepo.Create(&entity.Transaction{
		UserID:      buyerID,
		PostID:      postID,
		Type:        entity.TransactionTypePurchase,
		AmountCents: -priceCents,
		Description: description,
		Status:      entity.TransactionStatusCompleted,
	})
	if err != nil {
		uc.logger.Error("Failed to record purchase for %s: %v", buyerID, err)
	}

	_, err = uc.txRepo.Create(&entity.Transaction{
		UserID:      creatorID,
		PostID:      postID,
		Type:        entity.TransactionTypeEarning,
		AmountCents: earningCents,
		Description: description,
		Status:      entity.TransactionStatusCompleted,
	})
	if err != nil {
		uc.logger.Error("Failed to record earning for %s: %v", creatorID, err)
	}
}

func (uc *registryUseCase) notify(userID, event string, data map[string]interface{}) {
	if uc.publisher == nil {
		return
	}
	task := map[string]interface{}{
		"user_id":  userID,
		"event":    event,
		"priority": 5,
	}
	for k, v := range data {
		task[k] = v
	}
	if err := uc.publisher.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("Failed to publish %s notification: %v", event, err)
	}
}
