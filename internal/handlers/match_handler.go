package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-matcher/internal/services"
)

type MatchHandler struct {
	matcher        services.MatcherService
	storageService services.StorageService
	maxFileSize    int64
}

func NewMatchHandler(
	matcher services.MatcherService,
	storageService services.StorageService,
	maxFileSize int64,
) *MatchHandler {
	return &MatchHandler{
		matcher:        matcher,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleMatch handles POST /match: one resume PDF plus a pasted job
// description in, one match report out. Synchronous; nothing is kept
// after the response is written.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume PDF file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveResume(resumeFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to accept resume file: %v", err),
		})
	}
	// Uploads are per-submission scratch space, gone after the response
	defer h.storageService.DeleteFile(filename)

	report, err := h.matcher.MatchResume(c.Context(), filePath, jobDescription)
	if err != nil {
		var extractionErr *services.ExtractionError
		if errors.As(err, &extractionErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": extractionErr.Error(),
			})
		}

		var completionErr *services.CompletionError
		if errors.As(err, &completionErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": completionErr.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
