package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChatMessage is one entry of a chat_<a>_<b> transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SenderID  uint64    `json:"senderId"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatKind is the list a conversation was unlocked from.
type ChatKind string

const (
	ChatKindMatch    ChatKind = "match"
	ChatKindNegative ChatKind = "negative"
)

// ChatKey is the routing key of a conversation, e.g. "match-12".
type ChatKey struct {
	Kind      ChatKind
	PartnerID uint64
}

func (k ChatKey) String() string {
	return fmt.Sprintf("%s-%d", k.Kind, k.PartnerID)
}

// ParseChatKey accepts "match-<id>" and "negative-<id>".
func ParseChatKey(s string) (ChatKey, error) {
	kind, id, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return ChatKey{}, fmt.Errorf("chat key %q: missing separator", s)
	}
	k := ChatKind(kind)
	if k != ChatKindMatch && k != ChatKindNegative {
		return ChatKey{}, fmt.Errorf("chat key %q: unknown kind %q", s, kind)
	}
	partnerID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || partnerID == PlaceholderID {
		return ChatKey{}, fmt.Errorf("chat key %q: invalid partner id", s)
	}
	return ChatKey{Kind: k, PartnerID: partnerID}, nil
}
