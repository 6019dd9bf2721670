package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patientapi/internal/service"
)

// ListPatientRecords returns all records for a patient owned by the caller.
func ListPatientRecords(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		items, err := svc.ListByPatient(c.UserContext(), ident.DoctorID, patientID)
		if err != nil {
			if errors.Is(err, service.ErrPatientNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+patientID+" not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(items)
	}
}

// GetPatientRecord returns a single record scoped to an owned patient.
func GetPatientRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		recordID := c.Params("record_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := uuid.Parse(recordID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		r, err := svc.Get(c.UserContext(), ident.DoctorID, patientID, recordID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPatientNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+patientID+" not found")
			case errors.Is(err, service.ErrRecordNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "record with "+recordID+" not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(r)
	}
}

// CreatePatientRecord persists a new record under an owned patient. The
// patient id comes from the path, never the body.
func CreatePatientRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in service.CreateRecordInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "malformed request body")
		}

		r, err := svc.Create(c.UserContext(), ident.DoctorID, patientID, in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPatientNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+patientID+" not found")
			case errors.Is(err, service.ErrDiagnosisRequired):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "diagnosis is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(r)
	}
}
