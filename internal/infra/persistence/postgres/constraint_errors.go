package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises duplicate-key errors from either dialector.
// TranslateError covers the common path; the message check catches drivers that skip translation.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") || // unique_violation
		strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23502") || // not_null_violation
		strings.Contains(errMsg, "not null constraint failed") ||
		strings.Contains(errMsg, "null value in column")
}
