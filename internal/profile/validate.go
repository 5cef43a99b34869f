package profile

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/model"
)

// profileValidate is the validator instance for profiles and preferences.
// Initialized in init() with custom validators.
var profileValidate *validator.Validate

var imageExt = regexp.MustCompile(`(?i)\.(jpeg|jpg|gif|png)$`)

const randomImagePrefix = "https://source.unsplash.com/random"

func init() {
	profileValidate = validator.New()

	_ = profileValidate.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return ValidImageURL(fl.Field().String())
	})
	profileValidate.RegisterStructValidation(validateAgeRange, model.Preferences{})
}

// ValidImageURL accepts image file URLs and the random-image service.
func ValidImageURL(u string) bool {
	return imageExt.MatchString(u) || strings.HasPrefix(u, randomImagePrefix)
}

// validateAgeRange enforces MinAgeRange <= min <= max <= MaxAgeRange.
func validateAgeRange(sl validator.StructLevel) {
	p := sl.Current().Interface().(model.Preferences)
	lo, hi := p.AgeRange[0], p.AgeRange[1]
	if lo < model.MinAgeRange || hi > model.MaxAgeRange || lo > hi {
		sl.ReportError(p.AgeRange, "AgeRange", "AgeRange", "agerange", "")
	}
}

// ValidateProfile checks p against the profile field rules.
func ValidateProfile(p model.Profile) error {
	return svcErr.FromValidator(profileValidate.Struct(p))
}

// ValidatePreferences checks p, reporting an empty gender set first.
func ValidatePreferences(p model.Preferences) error {
	if len(p.DiscoveryGender) == 0 {
		return svcErr.Validation("discoveryGender", "select at least one gender")
	}
	return svcErr.FromValidator(profileValidate.Struct(p))
}
