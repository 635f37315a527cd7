package usecase

import (
	"fmt"
	"io"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"

	"github.com/google/uuid"
)

// FeedItem is a feed row with the viewer's access decision attached. When
// access is not granted the media url is stripped before the row leaves the
// service.
type FeedItem struct {
	entity.PostWithCreator
	Access entity.AccessDecision `json:"access"`
}

type PostUseCase interface {
	Create(userID, caption string, isLocked bool, media io.Reader, contentType string) (*entity.Post, error)
	Feed(viewerID string, limit int) ([]*FeedItem, error)
	ListByUser(viewerID, ownerID string) ([]*FeedItem, error)
	Delete(userID, postID string) error
	Comment(viewerID, postID, content string) (*entity.Comment, error)
	ListComments(viewerID, postID string) ([]*entity.CommentWithAuthor, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	profileRepo persistent.ProfileRepository
	access      AccessUseCase
	fileStore   FileStore
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	profileRepo persistent.ProfileRepository,
	access AccessUseCase,
	fileStore FileStore,
	log *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		access:      access,
		fileStore:   fileStore,
		logger:      log,
	}
}

func (uc *postUseCase) Create(userID, caption string, isLocked bool, media io.Reader, contentType string) (*entity.Post, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !profile.IsCreator {
		return nil, ErrForbidden
	}

	mediaURL, err := uc.fileStore.UploadFile(
		fmt.Sprintf("posts/%s/%s", userID, uuid.New().String()),
		media, contentType,
	)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	post, err := uc.postRepo.Create(&entity.Post{
		UserID:   userID,
		MediaURL: mediaURL,
		Caption:  caption,
		IsLocked: isLocked,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	uc.logger.Info("Post %s created by %s (locked=%v)", post.ID, userID, isLocked)
	return post, nil
}

func (uc *postUseCase) Feed(viewerID string, limit int) ([]*FeedItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := uc.postRepo.ListRecentWithCreators(limit)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}

	items := make([]*FeedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, uc.toFeedItem(viewerID, row))
	}
	return items, nil
}

func (uc *postUseCase) ListByUser(viewerID, ownerID string) ([]*FeedItem, error) {
	owner, err := uc.profileRepo.GetByID(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	posts, err := uc.postRepo.ListByUser(ownerID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	items := make([]*FeedItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, uc.toFeedItem(viewerID, &entity.PostWithCreator{
			Post:    *post,
			Creator: *owner,
		}))
	}
	return items, nil
}

func (uc *postUseCase) toFeedItem(viewerID string, row *entity.PostWithCreator) *FeedItem {
	item := &FeedItem{
		PostWithCreator: *row,
		Access:          uc.access.Resolve(viewerID, &row.Post, &row.Creator),
	}
	if !item.Access.State.Granted() {
		item.MediaURL = ""
	}
	return item
}

func (uc *postUseCase) Delete(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return ErrNotFound
	}
	if post.UserID != userID {
		return ErrForbidden
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func (uc *postUseCase) Comment(viewerID, postID, content string) (*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	allowed, err := uc.access.CanComment(viewerID, post)
	if err != nil {
		return nil, fmt.Errorf("comment gate: %w", err)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	comment, err := uc.postRepo.CreateComment(&entity.Comment{
		PostID:  postID,
		UserID:  viewerID,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (uc *postUseCase) ListComments(viewerID, postID string) ([]*entity.CommentWithAuthor, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	allowed, err := uc.access.CanComment(viewerID, post)
	if err != nil {
		return nil, fmt.Errorf("comment gate: %w", err)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	return uc.postRepo.ListComments(postID)
}
