package persistent

import (
	"velvet/internal/entity"
	"velvet/internal/model"
)

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:                m.ID,
		Username:          m.Username,
		Bio:               m.Bio,
		AvatarURL:         m.AvatarURL,
		BannerURL:         m.BannerURL,
		Website:           m.Website,
		LocationName:      m.LocationName,
		Tags:              m.Tags,
		IsCreator:         m.IsCreator,
		IsVerified:        m.IsVerified,
		IsAdmin:           m.IsAdmin,
		GhostMode:         m.GhostMode,
		SubscriptionPrice: m.SubscriptionPrice,
		BalanceCents:      m.BalanceCents,
		Latitude:          m.Latitude,
		Longitude:         m.Longitude,
		LastSeen:          m.LastSeen,
		CreatedAt:         m.CreatedAt,
	}
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                e.ID,
		Username:          e.Username,
		Bio:               e.Bio,
		AvatarURL:         e.AvatarURL,
		BannerURL:         e.BannerURL,
		Website:           e.Website,
		LocationName:      e.LocationName,
		Tags:              e.Tags,
		IsCreator:         e.IsCreator,
		IsVerified:        e.IsVerified,
		IsAdmin:           e.IsAdmin,
		GhostMode:         e.GhostMode,
		SubscriptionPrice: e.SubscriptionPrice,
		BalanceCents:      e.BalanceCents,
		Latitude:          e.Latitude,
		Longitude:         e.Longitude,
		LastSeen:          e.LastSeen,
		CreatedAt:         e.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		MediaURL:  m.MediaURL,
		Caption:   m.Caption,
		IsLocked:  m.IsLocked,
		CreatedAt: m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:       e.ID,
		UserID:   e.UserID,
		MediaURL: e.MediaURL,
		Caption:  e.Caption,
		IsLocked: e.IsLocked,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		PostID:      m.PostID,
		Type:        entity.TransactionType(m.Type),
		AmountCents: m.AmountCents,
		Description: m.Description,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:          e.ID,
		UserID:      e.UserID,
		PostID:      e.PostID,
		Type:        string(e.Type),
		AmountCents: e.AmountCents,
		Description: e.Description,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

func ToVerificationEntity(m *model.VerificationRequestModel) *entity.VerificationRequest {
	if m == nil {
		return nil
	}

	return &entity.VerificationRequest{
		ID:              m.ID,
		UserID:          m.UserID,
		FullLegalName:   m.FullLegalName,
		IDDocumentURL:   m.IDDocumentURL,
		SelfieWithIDURL: m.SelfieWithIDURL,
		Status:          entity.VerificationStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}

func ToMessageEntity(m *model.MessageModel) *entity.Message {
	if m == nil {
		return nil
	}

	return &entity.Message{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		MediaURL:   m.MediaURL,
		CreatedAt:  m.CreatedAt,
	}
}
