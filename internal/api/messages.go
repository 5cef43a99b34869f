package api

import (
	"time"

	"github.com/oggyb/lovespark/internal/model"
)

//
// AccountService
//

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Bio      string `json:"bio,omitempty"`
}

func (r *SignupRequest) GetEmail() string {
	if r == nil {
		return ""
	}
	return r.Email
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) GetEmail() string {
	if r == nil {
		return ""
	}
	return r.Email
}

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Profile   model.Profile `json:"profile"`
}

type ProfileResponse struct {
	Profile model.Profile `json:"profile"`
}

// UpdateProfileRequest is a partial update: absent fields are kept.
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty"`
	Age       *int      `json:"age,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Images    *[]string `json:"images,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

type AddImageRequest struct {
	URL string `json:"url"`
}

type RemoveImageRequest struct {
	Index int `json:"index"`
}

type InterestRequest struct {
	Interest string `json:"interest"`
}

type SettingsResponse struct {
	Settings model.Preferences `json:"settings"`
}

type NotificationsUpdate struct {
	NewMatches  *bool `json:"newMatches,omitempty"`
	NewMessages *bool `json:"newMessages,omitempty"`
	Promotions  *bool `json:"promotions,omitempty"`
}

// UpdateSettingsRequest is a partial update: absent fields are kept.
type UpdateSettingsRequest struct {
	DiscoveryGender *[]string            `json:"discoveryGender,omitempty"`
	ShowMeOnApp     *bool                `json:"showMeOnApp,omitempty"`
	AgeRange        *[2]int              `json:"ageRange,omitempty"`
	Distance        *int                 `json:"distance,omitempty"`
	Notifications   *NotificationsUpdate `json:"notifications,omitempty"`
}

//
// ExploreService
//

type ListCandidatesRequest struct {
	// Limit caps the number of cards; 0 means the server default.
	Limit int `json:"limit,omitempty"`
}

type ListCandidatesResponse struct {
	Candidates []model.Profile `json:"candidates"`
	// Exhausted is set when Candidates holds only the placeholder card.
	Exhausted bool `json:"exhausted"`
}

type SwipeRequest struct {
	CandidateID uint64 `json:"candidateId"`
	Direction   string `json:"direction"`
}

type SwipeResponse struct {
	Outcome   string        `json:"outcome"`
	Candidate model.Profile `json:"candidate"`
	// ChatKey routes to the unlocked conversation on a match or negative chat.
	ChatKey string `json:"chatKey,omitempty"`
}

type PageRequest struct {
	PaginationToken string `json:"paginationToken,omitempty"`
}

type ListProfilesResponse struct {
	Profiles            []model.Profile `json:"profiles"`
	NextPaginationToken string          `json:"nextPaginationToken,omitempty"`
}

type ListSwipesResponse struct {
	Swipes              []model.SwipeRecord `json:"swipes"`
	NextPaginationToken string              `json:"nextPaginationToken,omitempty"`
}

//
// ChatService
//

type GetConversationRequest struct {
	ChatKey         string `json:"chatKey"`
	PaginationToken string `json:"paginationToken,omitempty"`
}

type ConversationResponse struct {
	ChatKey             string              `json:"chatKey"`
	Kind                string              `json:"kind"`
	Partner             model.Profile       `json:"partner"`
	Messages            []model.ChatMessage `json:"messages"`
	NextPaginationToken string              `json:"nextPaginationToken,omitempty"`
}

type SendMessageRequest struct {
	ChatKey string `json:"chatKey"`
	Text    string `json:"text"`
}

type SendMessageResponse struct {
	Message model.ChatMessage `json:"message"`
}
