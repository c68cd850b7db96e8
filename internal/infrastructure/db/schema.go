package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travel-services-backend/internal/domain/travelservice"
)

// ErrPermissionDenied marks a schema ensure rejected by database privileges.
var ErrPermissionDenied = errors.New("schema: permission denied")

// EnsureSchema creates the travel_services table when it is missing and adds
// any columns a newer build introduced. Safe to run on every startup.
func EnsureSchema(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&travelservice.TravelService{}); err != nil {
		if isPermissionDenied(err) {
			return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		}
		return fmt.Errorf("schema ensure: %w", err)
	}
	return nil
}

// isPermissionDenied matches the privilege failure wording of the supported
// backends: postgres SQLSTATE 42501, mysql 1044/1142, sqlite readonly files.
func isPermissionDenied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "sqlstate 42501") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "command denied") ||
		strings.Contains(msg, "readonly database")
}
