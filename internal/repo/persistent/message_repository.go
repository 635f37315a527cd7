package persistent

import (
	"velvet/internal/entity"
	"velvet/internal/model"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(msg *entity.Message) (*entity.Message, error)
	Thread(a, b string, limit int) ([]*entity.Message, error)
	CounterpartIDs(userID string) ([]string, error)
	CountPendingPrivateRequests(creatorID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *entity.Message) (*entity.Message, error) {
	msgModel := &model.MessageModel{
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Content:    msg.Content,
		MediaURL:   msg.MediaURL,
	}
	if err := r.db.Create(msgModel).Error; err != nil {
		return nil, err
	}
	return ToMessageEntity(msgModel), nil
}

// Thread returns the conversation between two users in chronological order.
func (r *messageRepository) Thread(a, b string, limit int) ([]*entity.Message, error) {
	var msgModels []model.MessageModel
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		a, b, b, a,
	).
		Order("created_at ASC").
		Limit(limit).
		Find(&msgModels).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*entity.Message, len(msgModels))
	for i := range msgModels {
		msgs[i] = ToMessageEntity(&msgModels[i])
	}
	return msgs, nil
}

// CounterpartIDs lists every user the given user has exchanged at least one
// message with, most recent conversation first.
func (r *messageRepository) CounterpartIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.MessageModel{}).
		Select("CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS counterpart", userID).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Group("counterpart").
		Order("MAX(created_at) DESC").
		Pluck("counterpart", &ids).Error
	return ids, err
}

func (r *messageRepository) CountPendingPrivateRequests(creatorID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PrivateRequestModel{}).
		Where("creator_id = ? AND status = ?", creatorID, "pending").
		Count(&count).Error
	return count, err
}
