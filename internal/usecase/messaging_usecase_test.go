package usecase

import (
	"strings"
	"testing"

	"velvet/internal/entity"
	"velvet/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMessagingUseCase(
	messageRepo *MockMessageRepository,
	profileRepo *MockProfileRepository,
	edgeRepo *MockEdgeRepository,
	access AccessUseCase,
	fileStore *MockFileStore,
) MessagingUseCase {
	return NewMessagingUseCase(messageRepo, profileRepo, edgeRepo, access, fileStore, nil, logger.New())
}

func TestSendMessage_Self(t *testing.T) {
	uc := newMessagingUseCase(new(MockMessageRepository), new(MockProfileRepository), new(MockEdgeRepository), nil, new(MockFileStore))

	_, err := uc.Send("user-1", "user-1", "hi")

	assert.ErrorIs(t, err, ErrSelfAction)
}

func TestSendMessage_Blocked(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "user-2").Return(&entity.Profile{ID: "user-2"}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("IsBlockedEither", "user-1", "user-2").Return(true, nil)
	messageRepo := new(MockMessageRepository)
	uc := newMessagingUseCase(messageRepo, profileRepo, edgeRepo, nil, new(MockFileStore))

	_, err := uc.Send("user-1", "user-2", "hi")

	assert.ErrorIs(t, err, ErrBlocked)
	messageRepo.AssertNotCalled(t, "Create")
}

func TestSendMessage_OK(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "user-2").Return(&entity.Profile{ID: "user-2"}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("IsBlockedEither", "user-1", "user-2").Return(false, nil)
	messageRepo := new(MockMessageRepository)
	messageRepo.On("Create", mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.SenderID == "user-1" && msg.ReceiverID == "user-2" && msg.Content == "hi"
	})).Return(&entity.Message{ID: "m1", SenderID: "user-1", ReceiverID: "user-2", Content: "hi"}, nil)
	uc := newMessagingUseCase(messageRepo, profileRepo, edgeRepo, nil, new(MockFileStore))

	msg, err := uc.Send("user-1", "user-2", "hi")

	assert.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
}

func TestSendWithMedia_UnsubscribedViewerForbidden(t *testing.T) {
	accessProfileRepo := new(MockProfileRepository)
	accessProfileRepo.On("GetByID", "viewer-1").Return(&entity.Profile{ID: "viewer-1"}, nil)
	accessEdgeRepo := new(MockEdgeRepository)
	accessEdgeRepo.On("HasSubscription", "viewer-1", "creator-1").Return(false, nil)
	access := newAccessUseCase(accessProfileRepo, new(MockPostRepository), accessEdgeRepo)

	fileStore := new(MockFileStore)
	uc := newMessagingUseCase(new(MockMessageRepository), new(MockProfileRepository), new(MockEdgeRepository), access, fileStore)

	_, err := uc.SendWithMedia("viewer-1", "creator-1", "look", strings.NewReader("img"), "image/jpeg")

	assert.ErrorIs(t, err, ErrForbidden)
	fileStore.AssertNotCalled(t, "UploadFile")
}

func TestSendWithMedia_CreatorAllowed(t *testing.T) {
	accessProfileRepo := new(MockProfileRepository)
	accessProfileRepo.On("GetByID", "creator-1").Return(&entity.Profile{ID: "creator-1", IsCreator: true}, nil)
	access := newAccessUseCase(accessProfileRepo, new(MockPostRepository), new(MockEdgeRepository))

	fileStore := new(MockFileStore)
	fileStore.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "chat/creator-1/")
	}), mock.Anything, "image/jpeg").Return("https://cdn/attachment.jpg", nil)

	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "viewer-1").Return(&entity.Profile{ID: "viewer-1"}, nil)
	edgeRepo := new(MockEdgeRepository)
	edgeRepo.On("IsBlockedEither", "creator-1", "viewer-1").Return(false, nil)
	messageRepo := new(MockMessageRepository)
	messageRepo.On("Create", mock.MatchedBy(func(msg *entity.Message) bool {
		return msg.MediaURL == "https://cdn/attachment.jpg"
	})).Return(&entity.Message{ID: "m1", MediaURL: "https://cdn/attachment.jpg"}, nil)

	uc := newMessagingUseCase(messageRepo, profileRepo, edgeRepo, access, fileStore)

	msg, err := uc.SendWithMedia("creator-1", "viewer-1", "look", strings.NewReader("img"), "image/jpeg")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn/attachment.jpg", msg.MediaURL)
}

func TestConversations_SkipsMissingProfiles(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	messageRepo.On("CounterpartIDs", "user-1").Return([]string{"user-2", "gone-1"}, nil)
	messageRepo.On("Thread", "user-1", "user-2", 200).Return([]*entity.Message{
		{ID: "m1"},
		{ID: "m2"},
	}, nil)
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByIDs", []string{"user-2", "gone-1"}).Return([]*entity.Profile{{ID: "user-2"}}, nil)

	uc := newMessagingUseCase(messageRepo, profileRepo, new(MockEdgeRepository), nil, new(MockFileStore))

	conversations, err := uc.Conversations("user-1")

	assert.NoError(t, err)
	assert.Len(t, conversations, 1)
	assert.Equal(t, "user-2", conversations[0].Counterpart.ID)
	assert.Equal(t, "m2", conversations[0].LastMessage.ID)
}
