// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/lovespark/internal/store"
)

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	err = FromValidator(err)

	var (
		validation   *ValidationError
		notFound     *NotFoundError
		precondition *PreconditionError
		conflict     *ConflictError
	)

	switch {
	case errors.As(err, &validation):
		return status.Error(codes.InvalidArgument, validation.Error())

	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, notFound.Error())

	case errors.As(err, &precondition):
		return status.Error(codes.FailedPrecondition, precondition.Error())

	case errors.As(err, &conflict):
		return status.Error(codes.AlreadyExists, conflict.Error())

	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, store.ErrConflict):
		return status.Error(codes.Aborted, "concurrent update, try again")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

// Unauthenticated creates a gRPC Unauthenticated error.
func Unauthenticated(msg string) error {
	return status.Error(codes.Unauthenticated, msg)
}

// MapLogged is Map plus one log line: error level for Internal, debug for
// everything the caller caused.
func MapLogged(log *slog.Logger, method string, err error) error {
	mapped := Map(err)
	if mapped == nil {
		return nil
	}
	if status.Code(mapped) == codes.Internal {
		log.Error(method+" failed", "err", err)
	} else {
		log.Debug(method+" rejected", "code", status.Code(mapped).String(), "err", err)
	}
	return mapped
}
