package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cvmatch/internal/models"
	"cvmatch/internal/services"
)

// Both missing-input cases produce the same user-facing warning; the matcher
// keeps them apart as typed errors.
const msgMissingInputs = "Please provide both CV and job description."

type EvaluateHandler struct {
	sessions services.SessionStore
	matcher  services.Matcher
}

func NewEvaluateHandler(sessions services.SessionStore, matcher services.Matcher) *EvaluateHandler {
	return &EvaluateHandler{
		sessions: sessions,
		matcher:  matcher,
	}
}

// HandleEvaluate handles POST /evaluate. The session must already hold both
// the CV text and the job description.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	session, err := resolveSession(h.sessions, req.SessionID, false)
	if err != nil {
		return err
	}

	evaluation, err := h.matcher.EvaluateFit(c.Context(), session.ID)
	if err != nil {
		if errors.Is(err, services.ErrMissingCV) || errors.Is(err, services.ErrMissingJobDescription) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, msgMissingInputs)
		}

		var infErr *services.InferenceError
		if errors.As(err, &infErr) {
			return fiber.NewError(fiber.StatusBadGateway,
				"Fit evaluation is unavailable: the inference service did not respond")
		}

		return fiber.NewError(fiber.StatusInternalServerError, "Failed to evaluate fit")
	}

	return c.JSON(models.EvaluateResponse{
		SessionID:  session.ID.String(),
		Evaluation: evaluation,
	})
}
