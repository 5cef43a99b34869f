package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	svcErr "github.com/oggyb/lovespark/internal/errors"
)

// Cursor is the opaque pagination state we encode/decode.
// It is a plain offset: stable for append-only lists (matches, negative
// chats, transcripts), but a list that moves entries, like the swipe
// history, can skip or repeat an entry between pages.
type Cursor struct {
	Offset int `json:"offset"`
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, invalidToken()
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil || c.Offset < 0 {
		return Cursor{}, invalidToken()
	}
	return c, nil
}

// Page slices items starting at the position encoded in token.
// next is empty on the last page.
func Page[T any](items []T, token string, limit int) (page []T, next string, err error) {
	cursor, err := Decode(token)
	if err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = len(items)
	}

	start := min(cursor.Offset, len(items))
	end := min(start+limit, len(items))
	page = items[start:end]

	if end < len(items) {
		next, _ = Encode(Cursor{Offset: end})
	}
	return page, next, nil
}

func invalidToken() error {
	return svcErr.Validation("pagination_token", "invalid pagination token")
}
