package usecase

import (
	"fmt"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
)

// StudioStats is the creator dashboard payload.
type StudioStats struct {
	EarningsCents          int64 `json:"earnings_cents"`
	SubscriberCount        int64 `json:"subscriber_count"`
	PostCount              int64 `json:"post_count"`
	PendingPrivateRequests int64 `json:"pending_private_requests"`
}

type StudioUseCase interface {
	Stats(creatorID string) (*StudioStats, error)
}

type studioUseCase struct {
	profileRepo persistent.ProfileRepository
	postRepo    persistent.PostRepository
	edgeRepo    persistent.EdgeRepository
	txRepo      persistent.TransactionRepository
	messageRepo persistent.MessageRepository
	logger      *logger.Logger
}

func NewStudioUseCase(
	profileRepo persistent.ProfileRepository,
	postRepo persistent.PostRepository,
	edgeRepo persistent.EdgeRepository,
	txRepo persistent.TransactionRepository,
	messageRepo persistent.MessageRepository,
	log *logger.Logger,
) StudioUseCase {
	return &studioUseCase{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		edgeRepo:    edgeRepo,
		txRepo:      txRepo,
		messageRepo: messageRepo,
		logger:      log,
	}
}

func (uc *studioUseCase) Stats(creatorID string) (*StudioStats, error) {
	profile, err := uc.profileRepo.GetByID(creatorID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !profile.IsCreator {
		return nil, ErrForbidden
	}

	earnings, err := uc.txRepo.SumByType(creatorID, entity.TransactionTypeEarning)
	if err != nil {
		return nil, fmt.Errorf("sum earnings: %w", err)
	}

	subscribers, err := uc.edgeRepo.CountSubscribers(creatorID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	posts, err := uc.postRepo.CountByUser(creatorID)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	pendingRequests, err := uc.messageRepo.CountPendingPrivateRequests(creatorID)
	if err != nil {
		return nil, fmt.Errorf("count private requests: %w", err)
	}

	return &StudioStats{
		EarningsCents:          earnings,
		SubscriberCount:        subscribers,
		PostCount:              posts,
		PendingPrivateRequests: pendingRequests,
	}, nil
}
