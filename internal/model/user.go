package model

import "time"

// Gender is the closed set of profile genders.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// AllGenders lists every gender in display order.
func AllGenders() []Gender {
	return []Gender{GenderFemale, GenderMale, GenderOther}
}

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	}
	return false
}

const (
	MinAge       = 18
	MaxAge       = 120
	MaxImages    = 5
	MaxInterests = 10
)

// Profile is the public part of a user, and the snapshot copied into
// match and negative-chat lists.
type Profile struct {
	ID        uint64   `json:"id"`
	Name      string   `json:"name" validate:"required,max=64"`
	Age       int      `json:"age" validate:"gte=18,lte=120"`
	Bio       string   `json:"bio" validate:"max=500"`
	Images    []string `json:"images" validate:"max=5,dive,required,imageurl"`
	Interests []string `json:"interests" validate:"max=10,unique,dive,required,max=32"`
	Gender    Gender   `json:"gender" validate:"oneof=female male other"`
}

// Clone returns a deep copy so callers can edit slices freely.
func (p Profile) Clone() Profile {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Interests = append([]string(nil), p.Interests...)
	return out
}

// User is a registered account as stored under the "users" key.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlaceholderID is never assigned to a real profile; user ids start at 1.
const PlaceholderID uint64 = 0

// Placeholder is the "no more profiles" card shown when discovery is empty.
func Placeholder() Profile {
	return Profile{
		ID:        PlaceholderID,
		Name:      "No More Profiles",
		Bio:       "Adjust your settings or check back later!",
		Images:    []string{},
		Interests: []string{},
	}
}

// IsPlaceholder reports whether p is the sentinel card.
func (p Profile) IsPlaceholder() bool {
	return p.ID == PlaceholderID
}
