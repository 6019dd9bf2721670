package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patientapi/internal/auth"
	"patientapi/internal/http/middleware"
	"patientapi/internal/service"
)

// identityFromCtx resolves the verified caller identity or fails the request.
// RequireAuth runs before every handler that calls this, so a miss here means
// a wiring mistake, and the request still fails closed.
func identityFromCtx(c *fiber.Ctx) (*auth.Identity, error) {
	ident, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid or missing token")
	}
	return ident, nil
}

// ListPatients returns all patients owned by the caller, newest first.
func ListPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		items, err := svc.List(c.UserContext(), ident.DoctorID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetPatient returns a single patient owned by the caller.
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("patient_id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		p, err := svc.Get(c.UserContext(), ident.DoctorID, id)
		if err != nil {
			if errors.Is(err, service.ErrPatientNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+id+" not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(p)
	}
}

// CreatePatient persists a new patient owned by the caller. Any id or
// doctor_id in the body is ignored; the request struct simply has no such
// fields.
func CreatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		var in service.CreatePatientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}

		p, err := svc.Create(c.UserContext(), ident.DoctorID, in)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "name is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}
