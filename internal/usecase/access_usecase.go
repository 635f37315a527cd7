package usecase

import (
	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// AccessUseCase resolves what a viewer may see of a post. Resolution checks
// in a fixed order and stops at the first grant: owner, free, unlocked,
// subscribed. Anything else is locked.
type AccessUseCase interface {
	Resolve(viewerID string, post *entity.Post, creator *entity.Profile) entity.AccessDecision
	ResolvePost(viewerID, postID string) (entity.AccessDecision, error)
	CanComment(viewerID string, post *entity.Post) (bool, error)
	CanSendChatMedia(senderID, receiverID string) (bool, error)
}

type accessUseCase struct {
	profileRepo persistent.ProfileRepository
	postRepo    persistent.PostRepository
	edgeRepo    persistent.EdgeRepository
	logger      *logger.Logger
}

func NewAccessUseCase(
	profileRepo persistent.ProfileRepository,
	postRepo persistent.PostRepository,
	edgeRepo persistent.EdgeRepository,
	log *logger.Logger,
) AccessUseCase {
	return &accessUseCase{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		edgeRepo:    edgeRepo,
		logger:      log,
	}
}

// Resolve never returns an error: when an edge lookup fails the decision
// degrades to locked, so a flaky store can hide paid media but never leak it.
func (uc *accessUseCase) Resolve(viewerID string, post *entity.Post, creator *entity.Profile) entity.AccessDecision {
	price := int64(0)
	if creator != nil {
		price = creator.SubscriptionPrice
	}

	if viewerID != "" && viewerID == post.UserID {
		return entity.AccessDecision{State: entity.AccessOwner}
	}
	if !post.IsLocked {
		return entity.AccessDecision{State: entity.AccessFree}
	}
	if viewerID == "" {
		return entity.AccessDecision{State: entity.AccessLocked, Reason: "sign in to unlock", PriceCents: price}
	}

	unlocked, err := uc.edgeRepo.HasUnlock(viewerID, post.ID)
	if err != nil {
		uc.logger.Warn("Unlock check failed for post %s: %v", post.ID, err)
		return entity.AccessDecision{State: entity.AccessLocked, Reason: "access check unavailable", PriceCents: price}
	}
	if unlocked {
		return entity.AccessDecision{State: entity.AccessUnlocked}
	}

	subscribed, err := uc.edgeRepo.HasSubscription(viewerID, post.UserID)
	if err != nil {
		uc.logger.Warn("Subscription check failed for creator %s: %v", post.UserID, err)
		return entity.AccessDecision{State: entity.AccessLocked, Reason: "access check unavailable", PriceCents: price}
	}
	if subscribed {
		return entity.AccessDecision{State: entity.AccessSubscribed}
	}

	return entity.AccessDecision{State: entity.AccessLocked, PriceCents: price}
}

func (uc *accessUseCase) ResolvePost(viewerID, postID string) (entity.AccessDecision, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return entity.AccessDecision{}, ErrNotFound
	}

	creator, err := uc.profileRepo.GetByID(post.UserID)
	if err != nil {
		// price CTA degrades to zero, access resolution still works
		creator = nil
	}

	return uc.Resolve(viewerID, post, creator), nil
}

// CanComment gates the comment box to the post owner and active subscribers
// of the creator.
func (uc *accessUseCase) CanComment(viewerID string, post *entity.Post) (bool, error) {
	if viewerID == post.UserID {
		return true, nil
	}
	return uc.edgeRepo.HasSubscription(viewerID, post.UserID)
}

// CanSendChatMedia gates attachments in direct messages. Creators and admins
// always may; a viewer may only when subscribed to the receiving creator.
func (uc *accessUseCase) CanSendChatMedia(senderID, receiverID string) (bool, error) {
	sender, err := uc.profileRepo.GetByID(senderID)
	if err != nil {
		return false, err
	}
	if sender.IsCreator || sender.IsAdmin {
		return true, nil
	}
	return uc.edgeRepo.HasSubscription(senderID, receiverID)
}
