package database

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error.
// The driver error stays in the chain so retries can still inspect it.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrAccountNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Locking errors
	case strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "sqlite_busy") ||
		strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization"):
		return fmt.Errorf("%w: %s: %w", domainErr.ErrAccountLocked, operation, err)

	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return fmt.Errorf("%w: %w", domainErr.ErrDuplicateAccount, err)

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "unable to open database") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "connection reset"):
		return fmt.Errorf("%w: %s: %w", domainErr.ErrStoreConnection, operation, err)

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out: %w", domainErr.ErrStoreConnection, operation, err)

	default:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrStoreOperation, operation, err)
	}
}
