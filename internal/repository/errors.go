package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// Constraint names from the schema migrations
const (
	voteUniqueConstraint = "votes_project_device_unique"
	devicePrimaryKey     = "devices_pkey"
	projectPrimaryKey    = "projects_pkey"
)

var (
	// ErrDuplicateVote is returned when (project, device) already has a vote
	ErrDuplicateVote = errors.New("vote already exists for this project and device")
	// ErrDeviceExists is returned when a concurrent request registered the device first
	ErrDeviceExists = errors.New("device already registered")
	// ErrProjectExists is returned when a project id is already taken
	ErrProjectExists = errors.New("project already exists")
)

// isUniqueViolation reports whether err is a Postgres unique violation on constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
