package handler

import (
	"strconv"
	"strings"

	domainerrors "backstage/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

// queryInt parses an optional integer query parameter, returning 0 when
// absent or malformed.
func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return false
	}

	return value
}

// queryIDList parses a comma-separated id list query parameter, e.g.
// "inIds=1,2,3". Malformed entries are skipped.
func queryIDList(c echo.Context, name string) []int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}
