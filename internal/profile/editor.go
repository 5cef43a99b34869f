// Package profile merges user edits into profiles and discovery settings.
// Every function returns a new value; inputs are never mutated, so a
// rejected edit leaves the caller's copy untouched.
package profile

import (
	"fmt"
	"slices"
	"strings"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/normalize"
)

const maxInterestLen = 32

// ProfilePatch carries the fields to change. Nil fields are kept.
type ProfilePatch struct {
	Name      *string
	Age       *int
	Bio       *string
	Gender    *model.Gender
	Images    *[]string
	Interests *[]string
}

// NotificationsPatch changes individual notification flags.
type NotificationsPatch struct {
	NewMatches  *bool
	NewMessages *bool
	Promotions  *bool
}

// SettingsPatch carries the preferences to change. Nil fields are kept.
type SettingsPatch struct {
	DiscoveryGender *[]model.Gender
	ShowMeOnApp     *bool
	AgeRange        *[2]int
	Distance        *int
	Notifications   *NotificationsPatch
}

// ApplyProfileEdit merges patch over current and validates the result.
// More than MaxImages images or MaxInterests interests is rejected, not truncated.
func ApplyProfileEdit(current model.Profile, patch ProfilePatch) (model.Profile, error) {
	out := current.Clone()

	if patch.Name != nil {
		out.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Age != nil {
		out.Age = *patch.Age
	}
	if patch.Bio != nil {
		out.Bio = strings.TrimSpace(*patch.Bio)
	}
	if patch.Gender != nil {
		out.Gender = normalize.Gender(*patch.Gender)
	}
	if patch.Images != nil {
		if len(*patch.Images) > model.MaxImages {
			return current, svcErr.LimitReached("images", model.MaxImages)
		}
		out.Images = trimAll(*patch.Images)
	}
	if patch.Interests != nil {
		if len(*patch.Interests) > model.MaxInterests {
			return current, svcErr.LimitReached("interests", model.MaxInterests)
		}
		out.Interests = trimAll(*patch.Interests)
	}

	if err := ValidateProfile(out); err != nil {
		return current, err
	}
	return out, nil
}

// AddImage appends url to the profile's images.
func AddImage(current model.Profile, url string) (model.Profile, error) {
	url = normalize.Tag(url)
	switch {
	case url == "":
		return current, svcErr.Validation("images", "image url is required")
	case !ValidImageURL(url):
		return current, svcErr.Validation("images", "must be a .jpeg, .jpg, .gif or .png url")
	case len(current.Images) >= model.MaxImages:
		return current, svcErr.LimitReached("images", model.MaxImages)
	}

	out := current.Clone()
	out.Images = append(out.Images, url)
	return out, nil
}

// RemoveImage drops the image at index.
func RemoveImage(current model.Profile, index int) (model.Profile, error) {
	if index < 0 || index >= len(current.Images) {
		return current, svcErr.Validation("index", fmt.Sprintf("no image at index %d", index))
	}
	out := current.Clone()
	out.Images = slices.Delete(out.Images, index, index+1)
	return out, nil
}

// AddInterest appends tag. Adding a tag already present is a no-op.
func AddInterest(current model.Profile, tag string) (model.Profile, error) {
	tag = normalize.Tag(tag)
	switch {
	case tag == "":
		return current, svcErr.Validation("interests", "interest is required")
	case len(tag) > maxInterestLen:
		return current, svcErr.Validation("interests", fmt.Sprintf("at most %d characters", maxInterestLen))
	case slices.Contains(current.Interests, tag):
		return current.Clone(), nil
	case len(current.Interests) >= model.MaxInterests:
		return current, svcErr.LimitReached("interests", model.MaxInterests)
	}

	out := current.Clone()
	out.Interests = append(out.Interests, tag)
	return out, nil
}

// RemoveInterest drops tag if present.
func RemoveInterest(current model.Profile, tag string) model.Profile {
	tag = normalize.Tag(tag)
	out := current.Clone()
	out.Interests = slices.DeleteFunc(out.Interests, func(s string) bool { return s == tag })
	return out
}

// ApplySettingsEdit merges patch over current, then validates. An empty
// discovery gender set, a bad age range or a bad distance is rejected.
func ApplySettingsEdit(current model.Preferences, patch SettingsPatch) (model.Preferences, error) {
	out := current.Clone()

	if patch.DiscoveryGender != nil {
		out.DiscoveryGender = normalize.Genders(*patch.DiscoveryGender)
	}
	if patch.ShowMeOnApp != nil {
		out.ShowMeOnApp = *patch.ShowMeOnApp
	}
	if patch.AgeRange != nil {
		out.AgeRange = *patch.AgeRange
	}
	if patch.Distance != nil {
		out.Distance = *patch.Distance
	}
	if n := patch.Notifications; n != nil {
		if n.NewMatches != nil {
			out.Notifications.NewMatches = *n.NewMatches
		}
		if n.NewMessages != nil {
			out.Notifications.NewMessages = *n.NewMessages
		}
		if n.Promotions != nil {
			out.Notifications.Promotions = *n.Promotions
		}
	}

	if err := ValidatePreferences(out); err != nil {
		return current, err
	}
	return out, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = normalize.Tag(s)
	}
	return out
}
