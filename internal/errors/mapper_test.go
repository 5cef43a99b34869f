package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/oggyb/lovespark/internal/errors"
	"github.com/oggyb/lovespark/internal/store"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"validation", svcErr.Validation("age", "must be 18 or older"), codes.InvalidArgument},
		{"wrapped validation", fmt.Errorf("signup: %w", svcErr.Validation("email", "required")), codes.InvalidArgument},
		{"limit", svcErr.LimitReached("images", 5), codes.InvalidArgument},
		{"not found", svcErr.NotFound("user"), codes.NotFound},
		{"precondition", svcErr.Precondition("no current user"), codes.FailedPrecondition},
		{"conflict", svcErr.Conflict("email taken"), codes.AlreadyExists},
		{"gorm not found", gorm.ErrRecordNotFound, codes.NotFound},
		{"store conflict", store.ErrConflict, codes.Aborted},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"other", errors.New("boom"), codes.Internal},
		{"status passthrough", status.Error(codes.PermissionDenied, "nope"), codes.PermissionDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, status.Code(svcErr.Map(tc.err)))
		})
	}
	assert.NoError(t, svcErr.Map(nil))
}

func TestLimitReached_IsBothSentinelAndValidation(t *testing.T) {
	err := svcErr.LimitReached("interests", 10)
	assert.ErrorIs(t, err, svcErr.ErrLimitReached)
	assert.True(t, svcErr.IsValidation(err))
}

func TestFromValidator(t *testing.T) {
	type form struct {
		Age int `validate:"gte=18"`
	}
	err := validator.New().Struct(form{Age: 17})

	got := svcErr.FromValidator(err)

	var v *svcErr.ValidationError
	if assert.ErrorAs(t, got, &v) {
		assert.Equal(t, "age", v.Field)
		assert.Equal(t, "failed gte=18", v.Msg)
	}
}
