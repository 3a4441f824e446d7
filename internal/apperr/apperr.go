package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Sentinel errors for every failure class the API distinguishes.
// Handlers map these to HTTP statuses; anything outside the taxonomy
// must be logged server-side and surfaced as ErrInternal.
var (
	ErrDuplicateEntry       = errors.New("record already exists")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmptyFile            = errors.New("file is empty")
	ErrUnsupportedMimeType  = errors.New("unsupported mime type")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrInternal             = errors.New("internal server error")
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// IsDuplicate reports whether err is a unique-constraint violation,
// either as reported by the driver or already mapped by GORM.
func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicateEntry)
}

// DuplicateDetail extracts the store-provided conflict detail, if any.
// Unique violations are user-correctable, so the detail is safe to expose.
func DuplicateDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		return pgErr.Detail
	}
	return ErrDuplicateEntry.Error()
}
