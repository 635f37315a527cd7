package persistent

import (
	"velvet/internal/entity"
	"velvet/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) (*entity.Post, error)
	GetByID(id string) (*entity.Post, error)
	ListByUser(userID string) ([]*entity.Post, error)
	ListRecentWithCreators(limit int) ([]*entity.PostWithCreator, error)
	CountByUser(userID string) (int64, error)
	Delete(id string) error
	CreateComment(comment *entity.Comment) (*entity.Comment, error)
	ListComments(postID string) ([]*entity.CommentWithAuthor, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) (*entity.Post, error) {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(postModel), nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListByUser(userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListRecentWithCreators(limit int) ([]*entity.PostWithCreator, error) {
	var postModels []model.PostModel
	err := r.db.Preload("Creator").
		Order("created_at DESC").
		Limit(limit).
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.PostWithCreator, 0, len(postModels))
	for i := range postModels {
		m := &postModels[i]
		if m.Creator == nil {
			// creator soft-deleted since posting; drop the row
			continue
		}
		posts = append(posts, &entity.PostWithCreator{
			Post:    *ToPostEntity(m),
			Creator: *ToProfileEntity(m.Creator),
		})
	}
	return posts, nil
}

func (r *postRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PostModel{}).Error
}

func (r *postRepository) CreateComment(comment *entity.Comment) (*entity.Comment, error) {
	commentModel := &model.CommentModel{
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(commentModel), nil
}

func (r *postRepository) ListComments(postID string) ([]*entity.CommentWithAuthor, error) {
	var commentModels []model.CommentModel
	err := r.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.CommentWithAuthor, 0, len(commentModels))
	for i := range commentModels {
		m := &commentModels[i]
		if m.Author == nil {
			continue
		}
		comments = append(comments, &entity.CommentWithAuthor{
			Comment: *ToCommentEntity(m),
			Author:  *ToProfileEntity(m.Author),
		})
	}
	return comments, nil
}
