package health

import (
	"context"

	"roost-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// DBPinger abstracts the database connectivity check.
type DBPinger interface {
	Ping() error
}

// Handlers holds dependencies for health endpoints.
type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// JSON GET /health/json — reports dependency reachability plus the request
// counters recorded by the health marker middleware.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	ctx := context.Background()

	dbStatus := "ok"
	if h.DB == nil {
		dbStatus = "not configured"
	} else if err := h.DB.Ping(); err != nil {
		dbStatus = "down"
	}

	redisStatus := "ok"
	traffic := fiber.Map{}
	if h.Rdb == nil {
		redisStatus = "not configured"
	} else if err := h.Rdb.Ping(ctx).Err(); err != nil {
		redisStatus = "down"
	} else {
		total, _ := h.Rdb.Get(ctx, middleware.KeyReqTotal).Int64()
		errCount, _ := h.Rdb.Get(ctx, middleware.KeyReqErrors).Int64()
		traffic = fiber.Map{"requests": total, "errors": errCount}
	}

	status := "ok"
	if dbStatus == "down" || redisStatus == "down" {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"service": "roost-api",
		"status":  status,
		"dependencies": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"traffic": traffic,
	})
}
