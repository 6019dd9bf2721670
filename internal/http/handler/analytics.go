package handler

import (
	"github.com/gofiber/fiber/v2"

	"patientapi/internal/service"
)

// GetAnalytics returns ownership counts for the caller.
func GetAnalytics(svc service.AnalyticsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		counts, err := svc.Counts(c.UserContext(), ident.DoctorID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(counts)
	}
}
