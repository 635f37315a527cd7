package usecase

import (
	"context"
	"io"
	"time"

	"velvet/internal/entity"
	"velvet/internal/repo/geo"
	"velvet/internal/repo/persistent"
	"velvet/internal/repo/token"

	"github.com/stretchr/testify/mock"
)

type MockResetStore struct {
	mock.Mock
}

func (m *MockResetStore) Save(ctx context.Context, resetToken, userID string, ttl time.Duration) error {
	args := m.Called(ctx, resetToken, userID, ttl)
	return args.Error(0)
}

func (m *MockResetStore) Consume(ctx context.Context, resetToken string) (string, error) {
	args := m.Called(ctx, resetToken)
	return args.String(0), args.Error(1)
}

var _ token.ResetStore = (*MockResetStore)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Register(email, passwordHash, username string) (*entity.Profile, error) {
	args := m.Called(email, passwordHash, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockUserRepository) GetCredentials(email string) (string, string, error) {
	args := m.Called(email)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUserRepository) UpdatePasswordHash(userID, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(id string) (*entity.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByIDs(ids []string) ([]*entity.Profile, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUsername(username string) (*entity.Profile, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateLocation(id string, lat, lng float64) error {
	args := m.Called(id, lat, lng)
	return args.Error(0)
}

func (m *MockProfileRepository) SetGhostMode(id string, enabled bool) error {
	args := m.Called(id, enabled)
	return args.Error(0)
}

func (m *MockProfileRepository) Sample(limit int) ([]*entity.Profile, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) AdjustBalance(id string, deltaCents int64) error {
	args := m.Called(id, deltaCents)
	return args.Error(0)
}

func (m *MockProfileRepository) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) CountCreators() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ProfileRepository = (*MockProfileRepository)(nil)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) (*entity.Post, error) {
	args := m.Called(post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListRecentWithCreators(limit int) ([]*entity.PostWithCreator, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PostWithCreator), args.Error(1)
}

func (m *MockPostRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) CreateComment(comment *entity.Comment) (*entity.Comment, error) {
	args := m.Called(comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockPostRepository) ListComments(postID string) ([]*entity.CommentWithAuthor, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CommentWithAuthor), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

type MockEdgeRepository struct {
	mock.Mock
}

func (m *MockEdgeRepository) HasSubscription(subscriberID, creatorID string) (bool, error) {
	args := m.Called(subscriberID, creatorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEdgeRepository) CreateSubscription(subscriberID, creatorID string) error {
	args := m.Called(subscriberID, creatorID)
	return args.Error(0)
}

func (m *MockEdgeRepository) DeleteSubscription(subscriberID, creatorID string) error {
	args := m.Called(subscriberID, creatorID)
	return args.Error(0)
}

func (m *MockEdgeRepository) CountSubscribers(creatorID string) (int64, error) {
	args := m.Called(creatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEdgeRepository) ListSubscribedCreatorIDs(subscriberID string) ([]string, error) {
	args := m.Called(subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEdgeRepository) HasUnlock(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEdgeRepository) CreateUnlock(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockEdgeRepository) ListUnlockedPostIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEdgeRepository) CreateBlock(blockerID, blockedID string) error {
	args := m.Called(blockerID, blockedID)
	return args.Error(0)
}

func (m *MockEdgeRepository) DeleteBlock(blockerID, blockedID string) error {
	args := m.Called(blockerID, blockedID)
	return args.Error(0)
}

func (m *MockEdgeRepository) ListBlockedIDs(blockerID string) ([]string, error) {
	args := m.Called(blockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEdgeRepository) IsBlockedEither(a, b string) (bool, error) {
	args := m.Called(a, b)
	return args.Bool(0), args.Error(1)
}

var _ persistent.EdgeRepository = (*MockEdgeRepository)(nil)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(tx *entity.Transaction) (*entity.Transaction, error) {
	args := m.Called(tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(userID string, limit int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumByType(userID string, txType entity.TransactionType) (int64, error) {
	args := m.Called(userID, txType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumSigned(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SumAllByType(txType entity.TransactionType) (int64, error) {
	args := m.Called(txType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Settle(txID string) error {
	args := m.Called(txID)
	return args.Error(0)
}

var _ persistent.TransactionRepository = (*MockTransactionRepository)(nil)

type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(req *entity.VerificationRequest) (*entity.VerificationRequest, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) GetByID(id string) (*entity.VerificationRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) HasPending(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationRepository) ListPending() ([]*entity.VerificationRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) CountPending() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVerificationRepository) Approve(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVerificationRepository) Reject(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.VerificationRepository = (*MockVerificationRepository)(nil)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(msg *entity.Message) (*entity.Message, error) {
	args := m.Called(msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Message), args.Error(1)
}

func (m *MockMessageRepository) Thread(a, b string, limit int) ([]*entity.Message, error) {
	args := m.Called(a, b, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Message), args.Error(1)
}

func (m *MockMessageRepository) CounterpartIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMessageRepository) CountPendingPrivateRequests(creatorID string) (int64, error) {
	args := m.Called(creatorID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.MessageRepository = (*MockMessageRepository)(nil)

type MockGeoIndex struct {
	mock.Mock
}

func (m *MockGeoIndex) Upsert(ctx context.Context, userID string, lat, lng float64) error {
	args := m.Called(ctx, userID, lat, lng)
	return args.Error(0)
}

func (m *MockGeoIndex) Remove(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockGeoIndex) Nearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]geo.Hit, error) {
	args := m.Called(ctx, lat, lng, radiusMeters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]geo.Hit), args.Error(1)
}

var _ geo.Index = (*MockGeoIndex)(nil)

type MockTaskPublisher struct {
	mock.Mock
}

func (m *MockTaskPublisher) PublishNotificationTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

var _ TaskPublisher = (*MockTaskPublisher)(nil)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) ReplaceFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockFileStore) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

var _ FileStore = (*MockFileStore)(nil)
