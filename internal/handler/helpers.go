package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// getActorID pulls the authenticated user id set by the auth middleware.
func getActorID(c *fiber.Ctx) string {
	actorID := c.Locals("user_id")
	if actorID == nil {
		return "system" // Shouldn't happen in protected routes
	}
	return actorID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// hardFlag reads the ?hard=true query switch for delete endpoints.
func hardFlag(c *fiber.Ctx) bool {
	return c.Query("hard") == "true"
}

// includeDeletedFlag reads the ?include_deleted=true query switch on list
// endpoints, the explicit opt-in to see soft-deleted rows.
func includeDeletedFlag(c *fiber.Ctx) bool {
	return c.Query("include_deleted") == "true"
}
