package usecase

import (
	"regexp"
	"strings"

	domainErrors "github.com/notemart/notemart/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return domainErrors.Validation("invalid email address")
	}
	return nil
}

func validateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domainErrors.Validation(field + " is required")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainErrors.Validation("password must be at least 6 characters")
	}
	return nil
}

// dedupeIDs removes duplicates preserving first-seen order and drops
// non-positive ids.
func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
