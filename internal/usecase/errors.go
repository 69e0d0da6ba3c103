package usecase

import (
	"errors"

	"github.com/learnaray/learnaray/internal/domain/contract"
)

// Sentinel errors forming the failure taxonomy. Handlers map them onto status
// codes with errors.Is; nothing else escapes a usecase.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = contract.ErrNotFound
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal server error")
)
