package usecase

import (
	"errors"
	"testing"

	"velvet/internal/entity"
	"velvet/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRegistryUseCase(
	profileRepo *MockProfileRepository,
	postRepo *MockPostRepository,
	edgeRepo *MockEdgeRepository,
	txRepo *MockTransactionRepository,
	publisher TaskPublisher,
) RegistryUseCase {
	return NewRegistryUseCase(profileRepo, postRepo, edgeRepo, txRepo, publisher, logger.New())
}

func TestSubscribe_Self(t *testing.T) {
	uc := newRegistryUseCase(new(MockProfileRepository), new(MockPostRepository), new(MockEdgeRepository), new(MockTransactionRepository), nil)

	err := uc.Subscribe("user-1", "user-1", true)

	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestSubscribe_NotACreator(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "user-2").Return(&entity.Profile{ID: "user-2", IsCreator: false}, nil)
	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), new(MockEdgeRepository), new(MockTransactionRepository), nil)

	err := uc.Subscribe("user-1", "user-2", true)

	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestSubscribe_AlreadySubscribed(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", IsCreator: true}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(true, nil)
	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), edgeRepo, new(MockTransactionRepository), nil)

	err := uc.Subscribe("viewer-1", "creator-1", true)

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_PaidWithoutAcknowledgement(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", IsCreator: true, SubscriptionPrice: 999}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), edgeRepo, new(MockTransactionRepository), nil)

	err := uc.Subscribe("viewer-1", "creator-1", false)

	assert.ErrorIs(t, err, ErrPriceNotAcknowledged)
	edgeRepo.AssertNotCalled(t, "CreateSubscription")
}

func TestSubscribe_FreeCreatorWritesNoLedger(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", IsCreator: true, SubscriptionPrice: 0}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	edgeRepo.On("CreateSubscription", "viewer-1", "creator-1").Return(nil)
	txRepo := new(MockTransactionRepository)
	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), edgeRepo, txRepo, nil)

	err := uc.Subscribe("viewer-1", "creator-1", false)

	assert.NoError(t, err)
	txRepo.AssertNotCalled(t, "Create")
}

func TestSubscribe_PaidRecordsBothLedgerSides(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", Username: "vera", IsCreator: true, SubscriptionPrice: 1000}, nil)
	profileRepo.On("AdjustBalance", "viewer-1", int64(-1000)).Return(nil)
	profileRepo.On("AdjustBalance", "creator-1", int64(800)).Return(nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	edgeRepo.On("CreateSubscription", "viewer-1", "creator-1").Return(nil)

	var recorded []*entity.Transaction
	txRepo := new(MockTransactionRepository)
	txRepo.On("Create", mock.AnythingOfType("*entity.Transaction")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(0).(*entity.Transaction))
		}).
		Return(&entity.Transaction{}, nil)

	publisher := new(MockTaskPublisher)
	publisher.On("PublishNotificationTask", mock.Anything).Return(nil)

	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), edgeRepo, txRepo, publisher)

	err := uc.Subscribe("viewer-1", "creator-1", true)

	assert.NoError(t, err)
	assert.Len(t, recorded, 2)

	purchase, earning := recorded[0], recorded[1]
	assert.Equal(t, "viewer-1", purchase.UserID)
	assert.Equal(t, entity.TransactionTypePurchase, purchase.Type)
	assert.Equal(t, int64(-1000), purchase.AmountCents)
	assert.Equal(t, entity.TransactionStatusCompleted, purchase.Status)

	assert.Equal(t, "creator-1", earning.UserID)
	assert.Equal(t, entity.TransactionTypeEarning, earning.Type)
	assert.Equal(t, int64(800), earning.AmountCents)
	assert.Equal(t, entity.TransactionStatusCompleted, earning.Status)

	profileRepo.AssertCalled(t, "AdjustBalance", "viewer-1", int64(-1000))
	profileRepo.AssertCalled(t, "AdjustBalance", "creator-1", int64(800))
	publisher.AssertCalled(t, "PublishNotificationTask", mock.Anything)
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	uc := newRegistryUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo, new(MockTransactionRepository), nil)

	err := uc.Unsubscribe("viewer-1", "creator-1")

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestUnsubscribe_LeavesUnlocksAlone(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(true, nil)
	edgeRepo.On("DeleteSubscription", "viewer-1", "creator-1").Return(nil)
	uc := newRegistryUseCase(new(MockProfileRepository), new(MockPostRepository), edgeRepo, new(MockTransactionRepository), nil)

	err := uc.Unsubscribe("viewer-1", "creator-1")

	assert.NoError(t, err)
	edgeRepo.AssertCalled(t, "DeleteSubscription", "viewer-1", "creator-1")
	edgeRepo.AssertNotCalled(t, "CreateUnlock")
	edgeRepo.AssertNotCalled(t, "ListUnlockedPostIDs")
}

func TestUnlockPost_OwnPost(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}, nil)
	uc := newRegistryUseCase(new(MockProfileRepository), postRepo, new(MockEdgeRepository), new(MockTransactionRepository), nil)

	err := uc.UnlockPost("creator-1", "p1", true)

	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestUnlockPost_FreePost(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", UserID: "creator-1", IsLocked: false}, nil)
	uc := newRegistryUseCase(new(MockProfileRepository), postRepo, new(MockEdgeRepository), new(MockTransactionRepository), nil)

	err := uc.UnlockPost("viewer-1", "p1", true)

	assert.ErrorIs(t, err, ErrPostNotLocked)
}

func TestUnlockPost_AlreadyUnlockedIsIdempotent(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(true, nil)
	txRepo := new(MockTransactionRepository)
	uc := newRegistryUseCase(new(MockProfileRepository), postRepo, edgeRepo, txRepo, nil)

	err := uc.UnlockPost("viewer-1", "p1", true)

	assert.NoError(t, err)
	edgeRepo.AssertNotCalled(t, "CreateUnlock")
	txRepo.AssertNotCalled(t, "Create")
}

func TestUnlockPost_PaidChargesOnce(t *testing.T) {
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", UserID: "creator-1", IsLocked: true}, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", Username: "vera", IsCreator: true, SubscriptionPrice: 500}, nil)
	profileRepo.On("AdjustBalance", "viewer-1", int64(-500)).Return(nil)
	profileRepo.On("AdjustBalance", "creator-1", int64(400)).Return(nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("HasUnlock", "viewer-1", "p1").Return(false, nil)
	edgeRepo.On("CreateUnlock", "viewer-1", "p1").Return(nil)

	var recorded []*entity.Transaction
	txRepo := new(MockTransactionRepository)
	txRepo.On("Create", mock.AnythingOfType("*entity.Transaction")).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, args.Get(0).(*entity.Transaction))
		}).
		Return(&entity.Transaction{}, nil)

	uc := newRegistryUseCase(profileRepo, postRepo, edgeRepo, txRepo, nil)

	err := uc.UnlockPost("viewer-1", "p1", true)

	assert.NoError(t, err)
	assert.Len(t, recorded, 2)
	assert.Equal(t, int64(-500), recorded[0].AmountCents)
	assert.Equal(t, "p1", recorded[0].PostID)
	assert.Equal(t, int64(400), recorded[1].AmountCents)
	profileRepo.AssertCalled(t, "AdjustBalance", "viewer-1", int64(-500))
	profileRepo.AssertCalled(t, "AdjustBalance", "creator-1", int64(400))
}

func TestListSubscriptions(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("ListSubscribedCreatorIDs", "viewer-1").Return([]string{"creator-1", "creator-2"}, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByIDs", []string{"creator-1", "creator-2"}).Return([]*entity.Profile{
		{ID: "creator-1"},
		{ID: "creator-2"},
	}, nil)
	uc := newRegistryUseCase(profileRepo, new(MockPostRepository), edgeRepo, new(MockTransactionRepository), nil)

	profiles, err := uc.ListSubscriptions("viewer-1")

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestListUnlockedPosts_SkipsDeletedPosts(t *testing.T) {
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("ListUnlockedPostIDs", "viewer-1").Return([]string{"p1", "gone-1"}, nil)
	postRepo := new(MockPostRepository)
	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", IsLocked: true}, nil)
	postRepo.On("GetByID", "gone-1").Return(nil, errors.New("record not found"))
	uc := newRegistryUseCase(new(MockProfileRepository), postRepo, edgeRepo, new(MockTransactionRepository), nil)

	posts, err := uc.ListUnlockedPosts("viewer-1")

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "p1", posts[0].ID)
}
