package middleware

import (
	"roost-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocal = "user"

// GetUser returns the raw session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// GetActor builds the domain actor for this request from the session user.
// Returns the anonymous actor when there is no valid session; write
// operations are rejected by the service layer in that case.
func GetActor(c *fiber.Ctx) domain.Actor {
	m, ok := GetUser(c).(map[string]interface{})
	if !ok {
		return domain.Anonymous()
	}
	idStr, _ := m["user_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.Anonymous()
	}
	username, _ := m["username"].(string)
	return domain.UserActor(id, username)
}
