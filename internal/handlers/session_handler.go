package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cvmatch/internal/models"
	"cvmatch/internal/services"
)

type SessionHandler struct {
	sessions services.SessionStore
}

func NewSessionHandler(sessions services.SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// HandleGetSession handles GET /session/:id and reports which inputs the
// session currently holds.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	session, ok := h.sessions.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return c.JSON(models.SessionResponse{
		ID:     session.ID.String(),
		HasCV:  session.HasCV,
		HasJob: session.HasJob,
	})
}
