package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oggyb/lovespark/internal/api"
	"github.com/oggyb/lovespark/internal/app"
	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/metrics"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/repository"
	"github.com/oggyb/lovespark/internal/session"
)

const messagePageSize = 50

var autoReplies = map[model.ChatKind]string{
	model.ChatKindMatch:    "Hey! Thanks for messaging. How are you?",
	model.ChatKindNegative: "Well, this is awkward... but interesting! What's up?",
}

// Service implements the Chat gRPC API over match and negative-chat pairs.
type Service struct {
	appCtx    *app.AppContext
	decisions *repository.DecisionRepository
	chats     *repository.ChatRepository
}

// NewChatService creates a new Chat service with dependencies from AppContext.
func NewChatService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		decisions: repository.NewDecisionRepository(appCtx.Store),
		chats:     repository.NewChatRepository(appCtx.Store),
	}
}

// GetConversation returns the partner and a page of the transcript,
// oldest message first.
//
// Behavior:
//   - chat_key is "match-<id>" or "negative-<id>"; anything else → InvalidArgument.
//   - The partner must be in the caller's list of that kind, else NotFound.
//
// Example:
//
//	svc.GetConversation(ctx, &api.GetConversationRequest{ChatKey: "match-2"})
func (s *Service) GetConversation(ctx context.Context, req *api.GetConversationRequest) (*api.ConversationResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	key, partner, err := s.resolve(ctx, sess.UserID, req.ChatKey)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "GetConversation", err)
	}

	msgs, next, err := s.chats.ListMessages(ctx, sess.UserID, key.PartnerID, req.PaginationToken, messagePageSize)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "GetConversation", err)
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}

	return &api.ConversationResponse{
		ChatKey:             key.String(),
		Kind:                string(key.Kind),
		Partner:             partner,
		Messages:            msgs,
		NextPaginationToken: next,
	}, nil
}

// SendMessage appends the caller's message to the transcript. With
// auto-reply on, the partner answers after the configured delay.
func (s *Service) SendMessage(ctx context.Context, req *api.SendMessageRequest) (*api.SendMessageResponse, error) {
	sess, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, svcErr.InvalidArgument("text: message must not be empty")
	}
	key, _, err := s.resolve(ctx, sess.UserID, req.ChatKey)
	if err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "SendMessage", err)
	}

	msg := s.newMessage(sess.UserID, text)
	if err := s.chats.Append(ctx, sess.UserID, key.PartnerID, msg); err != nil {
		return nil, svcErr.MapLogged(s.appCtx.Logger, "SendMessage", err)
	}
	metrics.MessagesTotal.WithLabelValues(string(key.Kind)).Inc()
	s.appCtx.Logger.Debug("message sent", "from", sess.UserID, "chat", key.String())

	if s.appCtx.Config.Chat.AutoReply {
		s.scheduleReply(sess.UserID, key)
	}
	return &api.SendMessageResponse{Message: msg}, nil
}

// scheduleReply writes the partner's canned answer after the delay. The
// write is detached from the request and is not cancelled.
func (s *Service) scheduleReply(userID uint64, key model.ChatKey) {
	time.AfterFunc(s.appCtx.Config.Chat.AutoReplyDelay, func() {
		reply := s.newMessage(key.PartnerID, autoReplies[key.Kind])
		if err := s.chats.Append(context.Background(), userID, key.PartnerID, reply); err != nil {
			s.appCtx.Logger.Warn("auto-reply failed", "chat", key.String(), "err", err)
			return
		}
		metrics.MessagesTotal.WithLabelValues(string(key.Kind)).Inc()
	})
}

func (s *Service) resolve(ctx context.Context, userID uint64, rawKey string) (model.ChatKey, model.Profile, error) {
	key, err := model.ParseChatKey(rawKey)
	if err != nil {
		return model.ChatKey{}, model.Profile{}, svcErr.Validation("chat_key", err.Error())
	}
	partner, ok, err := s.decisions.Connection(ctx, userID, key.Kind, key.PartnerID)
	if err != nil {
		return model.ChatKey{}, model.Profile{}, err
	}
	if !ok {
		return model.ChatKey{}, model.Profile{}, svcErr.NotFound("conversation")
	}
	return key, partner, nil
}

func (s *Service) newMessage(senderID uint64, text string) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		SenderID:  senderID,
		Timestamp: s.appCtx.Now().UTC(),
	}
}
