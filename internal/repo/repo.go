package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Expected business conditions surface as sentinels; the service layer
// translates them into status outcomes, everything else is a persistence fault.
var (
	ErrRoleExists         = errors.New("role already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleHasAssignments = errors.New("role has associated users")
	ErrUserNotFound       = errors.New("user not found")
	ErrAssignmentExists   = errors.New("user already has this role")
	ErrAssignmentNotFound = errors.New("user does not have this role")
	ErrProductNotFound    = errors.New("product not found")
	ErrImageNotFound      = errors.New("product has no image")
)

type GormRepo struct {
	DB *gorm.DB
}

// NormalizeName is the single casing policy for role names: lookup,
// uniqueness and deletion all compare on this form.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
