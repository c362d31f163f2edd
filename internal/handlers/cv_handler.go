package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cvmatch/internal/models"
	"cvmatch/internal/services"
)

type CVHandler struct {
	sessions    services.SessionStore
	matcher     services.Matcher
	maxFileSize int64
}

func NewCVHandler(
	sessions services.SessionStore,
	matcher services.Matcher,
	maxFileSize int64,
) *CVHandler {
	return &CVHandler{
		sessions:    sessions,
		matcher:     matcher,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadCV handles POST /cv. The uploaded PDF is consumed in memory;
// nothing is written to disk.
func (h *CVHandler) HandleUploadCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No CV file uploaded. Please upload 'cv' as a PDF file.")
	}

	if fileHeader.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded CV file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to read uploaded CV file")
	}

	session, err := resolveSession(h.sessions, c.FormValue("session_id"), true)
	if err != nil {
		return err
	}

	summary, err := h.matcher.SummarizeCV(c.Context(), session.ID, data)
	if err != nil {
		// The session id is included so the caller keeps its handle on a
		// freshly created session (it may already hold the extracted CV
		// text when only the summary call failed).
		var parseErr *services.DocumentParseError
		if errors.As(err, &parseErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":      fmt.Sprintf("Could not read the CV as a PDF: %v", parseErr.Cause),
				"session_id": session.ID.String(),
			})
		}

		var infErr *services.InferenceError
		if errors.As(err, &infErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":      "CV summary is unavailable: the inference service did not respond",
				"session_id": session.ID.String(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Failed to summarize CV",
			"session_id": session.ID.String(),
		})
	}

	return c.JSON(models.SummaryResponse{
		SessionID: session.ID.String(),
		Summary:   summary,
	})
}

// resolveSession loads the session named by rawID, creating a fresh one when
// rawID is empty and create is set. Failures come back as fiber errors for
// the app error handler to render.
func resolveSession(sessions services.SessionStore, rawID string, create bool) (models.Session, error) {
	if rawID == "" {
		if create {
			return sessions.Create(), nil
		}
		return models.Session{}, fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Session{}, fiber.NewError(fiber.StatusBadRequest, "Invalid session_id format")
	}

	session, ok := sessions.Get(id)
	if !ok {
		return models.Session{}, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return session, nil
}
