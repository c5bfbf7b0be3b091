package impl

import (
	"strings"

	"backstage/internal/domain/repository"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// normalizePaging clamps the page to >= 1 and the limit to [1,100],
// falling back to the default page size when the limit is unset or out of
// range.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	return page, limit
}

// normalizeOrdering maps free-form order inputs onto the repository's
// closed sort vocabulary.
func normalizeOrdering(orderBy, order string) (repository.SortField, repository.SortOrder) {
	field := repository.OrderByID
	if strings.EqualFold(orderBy, string(repository.OrderByCreatedAt)) {
		field = repository.OrderByCreatedAt
	}

	direction := repository.OrderDesc
	if strings.EqualFold(order, string(repository.OrderAsc)) {
		direction = repository.OrderAsc
	}

	return field, direction
}
