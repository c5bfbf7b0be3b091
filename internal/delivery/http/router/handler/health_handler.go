package handler

import (
	"net/http"

	"backstage/internal/delivery/http/response"
	"backstage/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HealthHandler exposes liveness and dependency health probes.
type HealthHandler struct {
	db    *gorm.DB
	cache service.CacheService
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, cache service.CacheService) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// CheckHealth is the liveness probe.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// DatabaseHealth pings PostgreSQL.
func (h *HealthHandler) DatabaseHealth(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Database is healthy")
}

// RedisHealth pings the cache.
func (h *HealthHandler) RedisHealth(c echo.Context) error {
	if err := h.cache.Ping(c.Request().Context()); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "REDIS_UNAVAILABLE", "Redis is unreachable", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Redis is healthy")
}
