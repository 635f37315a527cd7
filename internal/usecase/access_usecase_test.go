package usecase

import (
	"errors"
	"testing"

	"velvet/internal/entity"
	"velvet/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func newAccessUseCase(profileRepo *MockProfileRepository, postRepo *MockPostRepository, edgeRepo *MockEdgeRepository) AccessUseCase {
	return NewAccessUseCase(profileRepo, postRepo, edgeRepo, logger.New())
}

func TestResolve_OwnerBeatsEverything(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}
	creator := &entity.Profile{ID: "creator-1", SubscriptionPrice: 999}

	decision := uc.Resolve("creator-1", post, creator)

	assert.Equal(t, entity.AccessOwner, decision.State)
	assert.True(t, decision.State.Granted())
	edgeRepo.AssertNotCalled(t, "HasUnlock")
	edgeRepo.AssertNotCalled(t, "HasSubscription")
}

func TestResolve_FreePostNeedsNoViewer(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: false}

	decision := uc.Resolve("", post, nil)

	assert.Equal(t, entity.AccessFree, decision.State)
	assert.True(t, decision.State.Granted())
}

func TestResolve_AnonymousLockedPost(t *testing.T) {
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), new(MockEdgeRepository))

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}
	creator := &entity.Profile{ID: "creator-1", SubscriptionPrice: 999}

	decision := uc.Resolve("", post, creator)

	assert.Equal(t, entity.AccessLocked, decision.State)
	assert.Equal(t, "sign in to unlock", decision.Reason)
	assert.Equal(t, int64(999), decision.PriceCents)
}

func TestResolve_UnlockBeatsSubscription(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(true, nil)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}

	decision := uc.Resolve("viewer-1", post, nil)

	assert.Equal(t, entity.AccessUnlocked, decision.State)
	edgeRepo.AssertNotCalled(t, "HasSubscription")
}

func TestResolve_SubscribedViewer(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(false, nil)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(true, nil)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}

	decision := uc.Resolve("viewer-1", post, nil)

	assert.Equal(t, entity.AccessSubscribed, decision.State)
}

func TestResolve_NoGrantFallsToLocked(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(false, nil)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}
	creator := &entity.Profile{ID: "creator-1", SubscriptionPrice: 499}

	decision := uc.Resolve("viewer-1", post, creator)

	assert.Equal(t, entity.AccessLocked, decision.State)
	assert.False(t, decision.State.Granted())
	assert.Equal(t, int64(499), decision.PriceCents)
}

func TestResolve_UnlockCheckErrorDegradesToLocked(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(false, errors.New("redis down"))
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}

	decision := uc.Resolve("viewer-1", post, nil)

	assert.Equal(t, entity.AccessLocked, decision.State)
	assert.Equal(t, "access check unavailable", decision.Reason)
	edgeRepo.AssertNotCalled(t, "HasSubscription")
}

func TestResolve_SubscriptionCheckErrorDegradesToLocked(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(false, nil)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, errors.New("db down"))
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}

	decision := uc.Resolve("viewer-1", post, nil)

	assert.Equal(t, entity.AccessLocked, decision.State)
	assert.Equal(t, "access check unavailable", decision.Reason)
}

func TestResolvePost_NotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "missing").Return(nil, errors.New("record not found"))
	uc := newAccessUseCase(new(MockProfileRepository), postRepo, new(MockEdgeRepository))

	_, err := uc.ResolvePost("viewer-1", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePost_CreatorLookupFailureStillResolves(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", UserID: "creator-1", IsLocked: false}, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(nil, errors.New("db down"))
	uc := newAccessUseCase(profileRepo, postRepo, new(MockEdgeRepository))

	decision, err := uc.ResolvePost("viewer-1", "p1")

	assert.NoError(t, err)
	assert.Equal(t, entity.AccessFree, decision.State)
}

func TestCanComment_OwnerAndSubscriber(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(true, nil)
	edgeRepo.On("HasSubscription", "viewer-2", "creator-1").Return(false, nil)
	uc := newAccessUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo)

	post := &entity.Post{ID: "p1", UserID: "creator-1"}

	ok, err := uc.CanComment("creator-1", post)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CanComment("viewer-1", post)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CanComment("viewer-2", post)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCanSendChatMedia(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", IsCreator: true}, nil)
	profileRepo.On("GetByID", "viewer-1").Return(&entity.Profile{ID: "viewer-1"}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-2").Return(false, nil)
	uc := newAccessUseCase(profileRepo, new(MockPostRepository), edgeRepo)

	ok, err := uc.CanSendChatMedia("creator-1", "viewer-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.CanSendChatMedia("viewer-1", "creator-2")
	assert.NoError(t, err)
	assert.False(t, ok)
}
