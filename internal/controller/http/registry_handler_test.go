package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"velvet/internal/entity"
	"velvet/internal/usecase"
	"velvet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRegistryUseCase struct {
	mock.Mock
}

func (m *MockRegistryUseCase) Subscribe(viewerID, creatorID string, priceAcknowledged bool) error {
	args := m.Called(viewerID, creatorID, priceAcknowledged)
	return args.Error(0)
}

func (m *MockRegistryUseCase) Unsubscribe(viewerID, creatorID string) error {
	args := m.Called(viewerID, creatorID)
	return args.Error(0)
}

func (m *MockRegistryUseCase) UnlockPost(viewerID, postID string, priceAcknowledged bool) error {
	args := m.Called(viewerID, postID, priceAcknowledged)
	return args.Error(0)
}

func (m *MockRegistryUseCase) IsSubscribed(viewerID, creatorID string) (bool, error) {
	args := m.Called(viewerID, creatorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistryUseCase) ListSubscriptions(viewerID string) ([]*entity.Profile, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockRegistryUseCase) ListUnlockedPosts(viewerID string) ([]*entity.Post, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.RegistryUseCase = (*MockRegistryUseCase)(nil)

func setupRegistryRouter(mockUseCase *MockRegistryUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "viewer-1")
	})

	handler := NewRegistryHandler(mockUseCase, logger.New())
	router.GET("/subscriptions", handler.ListSubscriptions)
	router.POST("/subscriptions/:creator_id", handler.Subscribe)
	router.DELETE("/subscriptions/:creator_id", handler.Unsubscribe)
	router.GET("/subscriptions/:creator_id", handler.GetSubscription)
	router.GET("/unlocks", handler.ListUnlocks)
	router.POST("/unlocks/:post_id", handler.UnlockPost)
	return router
}

func TestSubscribeHandler_Created(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("Subscribe", "viewer-1", "creator-1", true).Return(nil)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"price_acknowledged": true}`)
	req, _ := http.NewRequest("POST", "/subscriptions/creator-1", body)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSubscribeHandler_NoBodyDefaultsToUnacknowledged(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("Subscribe", "viewer-1", "creator-1", false).Return(usecase.ErrPriceNotAcknowledged)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSubscribeHandler_AlreadySubscribed(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("Subscribe", "viewer-1", "creator-1", true).Return(usecase.ErrAlreadySubscribed)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"price_acknowledged": true}`)
	req, _ := http.NewRequest("POST", "/subscriptions/creator-1", body)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnsubscribeHandler_NotSubscribed(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("Unsubscribe", "viewer-1", "creator-1").Return(usecase.ErrNotSubscribed)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/subscriptions/creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSubscriptionHandler(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("IsSubscribed", "viewer-1", "creator-1").Return(true, nil)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/creator-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subscribed":true`)
}

func TestListSubscriptionsHandler(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("ListSubscriptions", "viewer-1").Return([]*entity.Profile{
		{ID: "creator-1", Username: "vera"},
	}, nil)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "vera")
}

func TestListUnlocksHandler(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("ListUnlockedPosts", "viewer-1").Return([]*entity.Post{
		{ID: "p1", IsLocked: true},
	}, nil)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/unlocks", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "p1")
}

func TestUnlockPostHandler_SelfAction(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("UnlockPost", "viewer-1", "p1", true).Return(usecase.ErrSelfAction)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"price_acknowledged": true}`)
	req, _ := http.NewRequest("POST", "/unlocks/p1", body)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnlockPostHandler_OK(t *testing.T) {
	mockUseCase := new(MockRegistryUseCase)
	mockUseCase.On("UnlockPost", "viewer-1", "p1", true).Return(nil)
	router := setupRegistryRouter(mockUseCase)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"price_acknowledged": true}`)
	req, _ := http.NewRequest("POST", "/unlocks/p1", body)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
