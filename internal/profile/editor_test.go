package profile_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
	"github.com/oggyb/lovespark/internal/profile"
)

func ptr[T any](v T) *T { return &v }

func baseProfile() model.Profile {
	return model.Profile{
		ID:        1,
		Name:      "Alex",
		Age:       30,
		Gender:    model.GenderFemale,
		Images:    []string{"https://img.example/a.jpg"},
		Interests: []string{"Hiking"},
	}
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var v *svcErr.ValidationError
	require.ErrorAs(t, err, &v)
	return v.Field
}

func TestApplyProfileEdit_MergesSetFields(t *testing.T) {
	cur := baseProfile()
	out, err := profile.ApplyProfileEdit(cur, profile.ProfilePatch{
		Bio:    ptr("  hi there "),
		Gender: ptr(model.Gender("Male")),
	})
	require.NoError(t, err)

	assert.Equal(t, "hi there", out.Bio)
	assert.Equal(t, model.GenderMale, out.Gender)
	assert.Equal(t, "Alex", out.Name)
	assert.Equal(t, cur.Images, out.Images)
}

func TestApplyProfileEdit_RejectsOverCap(t *testing.T) {
	cur := baseProfile()

	images := make([]string, model.MaxImages+1)
	for i := range images {
		images[i] = fmt.Sprintf("https://img.example/%d.png", i)
	}
	_, err := profile.ApplyProfileEdit(cur, profile.ProfilePatch{Images: &images})
	assert.True(t, errors.Is(err, svcErr.ErrLimitReached))
	assert.Equal(t, "images", fieldOf(t, err))

	interests := make([]string, model.MaxInterests+1)
	for i := range interests {
		interests[i] = fmt.Sprintf("tag%d", i)
	}
	_, err = profile.ApplyProfileEdit(cur, profile.ProfilePatch{Interests: &interests})
	assert.ErrorIs(t, err, svcErr.ErrLimitReached)

	// existing lists untouched
	assert.Equal(t, []string{"https://img.example/a.jpg"}, cur.Images)
	assert.Equal(t, []string{"Hiking"}, cur.Interests)
}

func TestApplyProfileEdit_Validates(t *testing.T) {
	cur := baseProfile()

	_, err := profile.ApplyProfileEdit(cur, profile.ProfilePatch{Age: ptr(17)})
	assert.Equal(t, "age", fieldOf(t, err))

	_, err = profile.ApplyProfileEdit(cur, profile.ProfilePatch{Name: ptr("   ")})
	assert.Equal(t, "name", fieldOf(t, err))

	_, err = profile.ApplyProfileEdit(cur, profile.ProfilePatch{Gender: ptr(model.Gender("robot"))})
	assert.Equal(t, "gender", fieldOf(t, err))

	dup := []string{"Art", "Art"}
	_, err = profile.ApplyProfileEdit(cur, profile.ProfilePatch{Interests: &dup})
	assert.Equal(t, "interests", fieldOf(t, err))

	bad := []string{"https://img.example/a.txt"}
	_, err = profile.ApplyProfileEdit(cur, profile.ProfilePatch{Images: &bad})
	assert.True(t, svcErr.IsValidation(err))
}

func TestAddImage(t *testing.T) {
	cur := baseProfile()

	out, err := profile.AddImage(cur, " https://source.unsplash.com/random/400x400?face ")
	require.NoError(t, err)
	assert.Len(t, out.Images, 2)
	assert.Len(t, cur.Images, 1)

	_, err = profile.AddImage(cur, "https://img.example/file.pdf")
	assert.True(t, svcErr.IsValidation(err))

	_, err = profile.AddImage(cur, "")
	assert.True(t, svcErr.IsValidation(err))

	full := cur
	full.Images = []string{"1.png", "2.png", "3.png", "4.png", "5.PNG"}
	_, err = profile.AddImage(full, "6.png")
	assert.ErrorIs(t, err, svcErr.ErrLimitReached)
	assert.Len(t, full.Images, 5)
}

func TestRemoveImage(t *testing.T) {
	cur := baseProfile()
	cur.Images = []string{"a.png", "b.png", "c.png"}

	out, err := profile.RemoveImage(cur, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "c.png"}, out.Images)
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, cur.Images)

	_, err = profile.RemoveImage(cur, 3)
	assert.True(t, svcErr.IsValidation(err))
	_, err = profile.RemoveImage(cur, -1)
	assert.True(t, svcErr.IsValidation(err))
}

func TestAddInterest(t *testing.T) {
	cur := baseProfile()

	out, err := profile.AddInterest(cur, " Music ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hiking", "Music"}, out.Interests)

	out, err = profile.AddInterest(out, "Music")
	require.NoError(t, err)
	assert.Len(t, out.Interests, 2)

	full := cur
	full.Interests = nil
	for i := 0; i < model.MaxInterests; i++ {
		full.Interests = append(full.Interests, fmt.Sprintf("t%d", i))
	}
	_, err = profile.AddInterest(full, "one more")
	assert.ErrorIs(t, err, svcErr.ErrLimitReached)
	assert.Len(t, full.Interests, model.MaxInterests)

	// duplicates stay a no-op even at the cap
	_, err = profile.AddInterest(full, "t0")
	assert.NoError(t, err)
}

func TestRemoveInterest(t *testing.T) {
	cur := baseProfile()
	out := profile.RemoveInterest(cur, "Hiking")
	assert.Empty(t, out.Interests)
	assert.Equal(t, []string{"Hiking"}, cur.Interests)

	out = profile.RemoveInterest(cur, "Chess")
	assert.Equal(t, cur.Interests, out.Interests)
}

func TestApplySettingsEdit(t *testing.T) {
	cur := model.DefaultPreferences()

	out, err := profile.ApplySettingsEdit(cur, profile.SettingsPatch{
		DiscoveryGender: &[]model.Gender{"Female", "female", "other"},
		AgeRange:        &[2]int{20, 30},
		Notifications:   &profile.NotificationsPatch{Promotions: ptr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, []model.Gender{model.GenderFemale, model.GenderOther}, out.DiscoveryGender)
	assert.Equal(t, [2]int{20, 30}, out.AgeRange)
	assert.True(t, out.Notifications.Promotions)
	assert.True(t, out.Notifications.NewMatches)
	assert.Equal(t, 50, out.Distance)

	// the input is left as it was
	assert.Len(t, cur.DiscoveryGender, 3)
}

func TestApplySettingsEdit_Rejections(t *testing.T) {
	cur := model.DefaultPreferences()

	out, err := profile.ApplySettingsEdit(cur, profile.SettingsPatch{DiscoveryGender: &[]model.Gender{}})
	assert.Equal(t, "discoveryGender", fieldOf(t, err))
	assert.Equal(t, cur, out)

	_, err = profile.ApplySettingsEdit(cur, profile.SettingsPatch{DiscoveryGender: &[]model.Gender{" "}})
	assert.Equal(t, "discoveryGender", fieldOf(t, err))

	for _, r := range [][2]int{{17, 30}, {30, 20}, {18, 81}} {
		_, err = profile.ApplySettingsEdit(cur, profile.SettingsPatch{AgeRange: &r})
		assert.Equal(t, "ageRange", fieldOf(t, err), "%v", r)
	}

	_, err = profile.ApplySettingsEdit(cur, profile.SettingsPatch{Distance: ptr(0)})
	assert.Equal(t, "distance", fieldOf(t, err))

	_, err = profile.ApplySettingsEdit(cur, profile.SettingsPatch{DiscoveryGender: &[]model.Gender{"robot"}})
	assert.True(t, svcErr.IsValidation(err))
}
