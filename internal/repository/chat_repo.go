package repository

import (
	"context"
	"fmt"

	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/store"
	"github.com/oggyb/lovespark/internal/utils/pagination"
)

// ChatRepository stores chat_<a>_<b> transcripts. Both participants
// share one transcript.
type ChatRepository struct {
	store store.Store
}

func NewChatRepository(s store.Store) *ChatRepository {
	return &ChatRepository{store: s}
}

// ListMessages returns a page of the transcript between a and b, oldest first.
func (r *ChatRepository) ListMessages(
	ctx context.Context,
	a, b uint64,
	paginationToken string,
	limit int,
) ([]model.ChatMessage, string, error) {
	key := store.ChatKey(a, b)
	var msgs []model.ChatMessage
	if _, err := r.store.Get(ctx, key, &msgs); err != nil {
		return nil, "", fmt.Errorf("load %s: %w", key, err)
	}
	return pagination.Page(msgs, paginationToken, limit)
}

// Append adds msg to the end of the transcript between a and b.
func (r *ChatRepository) Append(ctx context.Context, a, b uint64, msg model.ChatMessage) error {
	key := store.ChatKey(a, b)
	err := r.store.Update(ctx, []string{key}, func(tx store.Tx) error {
		var msgs []model.ChatMessage
		if _, err := tx.Get(key, &msgs); err != nil {
			return err
		}
		return tx.Set(key, append(msgs, msg))
	})
	if err != nil {
		return fmt.Errorf("append to %s: %w", key, err)
	}
	return nil
}
