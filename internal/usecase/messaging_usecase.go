package usecase

import (
	"fmt"
	"io"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/pkg/logger"
	"velvet/pkg/realtime"

	"github.com/google/uuid"
)

// Conversation is one row of the inbox: the counterpart profile plus the
// tail of the thread.
type Conversation struct {
	Counterpart *entity.Profile `json:"counterpart"`
	LastMessage *entity.Message `json:"last_message,omitempty"`
}

type MessagingUseCase interface {
	Send(senderID, receiverID, content string) (*entity.Message, error)
	SendWithMedia(senderID, receiverID, content string, media io.Reader, contentType string) (*entity.Message, error)
	Thread(userID, otherID string) ([]*entity.Message, error)
	Conversations(userID string) ([]*Conversation, error)
}

type messagingUseCase struct {
	messageRepo persistent.MessageRepository
	profileRepo persistent.ProfileRepository
	edgeRepo    persistent.EdgeRepository
	access      AccessUseCase
	fileStore   FileStore
	hub         *realtime.Hub
	logger      *logger.Logger
}

func NewMessagingUseCase(
	messageRepo persistent.MessageRepository,
	profileRepo persistent.ProfileRepository,
	edgeRepo persistent.EdgeRepository,
	access AccessUseCase,
	fileStore FileStore,
	hub *realtime.Hub,
	log *logger.Logger,
) MessagingUseCase {
	return &messagingUseCase{
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		edgeRepo:    edgeRepo,
		access:      access,
		fileStore:   fileStore,
		hub:         hub,
		logger:      log,
	}
}

func (uc *messagingUseCase) Send(senderID, receiverID, content string) (*entity.Message, error) {
	return uc.send(senderID, receiverID, content, "")
}

// SendWithMedia attaches an upload to the message. Attachments are gated:
// viewers may only send media to creators they subscribe to.
func (uc *messagingUseCase) SendWithMedia(senderID, receiverID, content string, media io.Reader, contentType string) (*entity.Message, error) {
	allowed, err := uc.access.CanSendChatMedia(senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("media gate: %w", err)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	mediaURL, err := uc.fileStore.UploadFile(
		fmt.Sprintf("chat/%s/%s", senderID, uuid.New().String()),
		media, contentType,
	)
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	return uc.send(senderID, receiverID, content, mediaURL)
}

func (uc *messagingUseCase) send(senderID, receiverID, content, mediaURL string) (*entity.Message, error) {
	if senderID == receiverID {
		return nil, ErrSelfAction
	}
	if _, err := uc.profileRepo.GetByID(receiverID); err != nil {
		return nil, ErrNotFound
	}

	blocked, err := uc.edgeRepo.IsBlockedEither(senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("block check: %w", err)
	}
	if blocked {
		return nil, ErrBlocked
	}

	msg, err := uc.messageRepo.Create(&entity.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		MediaURL:   mediaURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	// Both participants get the event; each side reconciles by message id so
	// the sender's optimistic copy never doubles.
	if uc.hub != nil {
		uc.hub.Broadcast <- realtime.Event{
			Kind:    realtime.EventMessage,
			Targets: []string{senderID, receiverID},
			Payload: msg,
		}
	}

	return msg, nil
}

func (uc *messagingUseCase) Thread(userID, otherID string) ([]*entity.Message, error) {
	return uc.messageRepo.Thread(userID, otherID, 200)
}

func (uc *messagingUseCase) Conversations(userID string) ([]*Conversation, error) {
	ids, err := uc.messageRepo.CounterpartIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("list counterparts: %w", err)
	}

	profiles, err := uc.profileRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load counterpart profiles: %w", err)
	}
	byID := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	conversations := make([]*Conversation, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}

		conv := &Conversation{Counterpart: p}
		thread, err := uc.messageRepo.Thread(userID, id, 200)
		if err == nil && len(thread) > 0 {
			conv.LastMessage = thread[len(thread)-1]
		}
		conversations = append(conversations, conv)
	}
	return conversations, nil
}
