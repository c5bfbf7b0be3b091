package impl

import (
	"testing"

	"backstage/internal/domain/repository"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	page, limit := normalizePaging(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePaging(-7, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePaging(3, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, limit)

	_, limit = normalizePaging(1, 101)
	assert.Equal(t, 10, limit)
}

func TestNormalizeOrdering(t *testing.T) {
	field, order := normalizeOrdering("", "")
	assert.Equal(t, repository.OrderByID, field)
	assert.Equal(t, repository.OrderDesc, order)

	field, order = normalizeOrdering("created_at", "ASC")
	assert.Equal(t, repository.OrderByCreatedAt, field)
	assert.Equal(t, repository.OrderAsc, order)

	field, order = normalizeOrdering("CREATED_AT", "asc")
	assert.Equal(t, repository.OrderByCreatedAt, field)
	assert.Equal(t, repository.OrderAsc, order)

	field, order = normalizeOrdering("password_hash", "sideways")
	assert.Equal(t, repository.OrderByID, field)
	assert.Equal(t, repository.OrderDesc, order)
}
