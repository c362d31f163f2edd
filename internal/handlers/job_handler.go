package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"cvmatch/internal/models"
	"cvmatch/internal/services"
)

type JobHandler struct {
	sessions services.SessionStore
	matcher  services.Matcher
}

func NewJobHandler(sessions services.SessionStore, matcher services.Matcher) *JobHandler {
	return &JobHandler{
		sessions: sessions,
		matcher:  matcher,
	}
}

// HandleSubmitJob handles POST /job. On a scrape failure the session's job
// description stays unset and the cause is reported to the caller.
func (h *JobHandler) HandleSubmitJob(c *fiber.Ctx) error {
	var req models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	if req.URL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please enter a job description URL")
	}

	session, err := resolveSession(h.sessions, req.SessionID, true)
	if err != nil {
		return err
	}

	if err := h.matcher.FetchJobDescription(c.Context(), session.ID, req.URL); err != nil {
		// Keep the caller's handle on a freshly created session.
		var scrapeErr *services.ScrapeError
		if errors.As(err, &scrapeErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":      fmt.Sprintf("Error scraping URL: %v", scrapeErr.Cause),
				"session_id": session.ID.String(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Failed to fetch job description",
			"session_id": session.ID.String(),
		})
	}

	return c.JSON(models.JobResponse{
		SessionID: session.ID.String(),
		Scraped:   true,
	})
}
