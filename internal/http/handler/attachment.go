package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patientapi/internal/service"
)

// UploadAttachment accepts a multipart upload under form field "file" and
// stores it against an owned patient.
func UploadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "multipart field 'file' is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		defer f.Close()

		contentType := fh.Header.Get(fiber.HeaderContentType)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		a, err := svc.Upload(c.UserContext(), ident.DoctorID, patientID, f, fh.Filename, contentType, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrPatientNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+patientID+" not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// ListAttachments returns attachment metadata for an owned patient.
func ListAttachments(svc service.AttachmentService) fiber.Handler {
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

// GetAttachment returns a single attachment's metadata.
func GetAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		attachmentID := c.Params("attachment_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := uuid.Parse(attachmentID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		a, err := svc.Get(c.UserContext(), ident.DoctorID, patientID, attachmentID)
		if err != nil {
			return attachmentError(c, err, patientID, attachmentID)
		}
		return c.JSON(a)
	}
}

// DownloadAttachment streams the attachment content with its original
// filename and content type.
func DownloadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		attachmentID := c.Params("attachment_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := uuid.Parse(attachmentID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		rc, a, err := svc.Download(c.UserContext(), ident.DoctorID, patientID, attachmentID)
		if err != nil {
			return attachmentError(c, err, patientID, attachmentID)
		}

		c.Set(fiber.HeaderContentType, a.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+a.Filename+`"`)
		if a.Size > 0 {
			c.Set(fiber.HeaderContentLength, strconv.FormatInt(a.Size, 10))
			return c.SendStream(rc, int(a.Size))
		}
		return c.SendStream(rc)
	}
}

// DeleteAttachment removes the stored object and its metadata row.
func DeleteAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identityFromCtx(c)
		if err != nil {
			return err
		}

		patientID := c.Params("patient_id")
		attachmentID := c.Params("attachment_id")
		if _, err := uuid.Parse(patientID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if _, err := uuid.Parse(attachmentID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), ident.DoctorID, patientID, attachmentID); err != nil {
			return attachmentError(c, err, patientID, attachmentID)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func attachmentError(c *fiber.Ctx, err error, patientID, attachmentID string) error {
	switch {
	case errors.Is(err, service.ErrPatientNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient with "+patientID+" not found")
	case errors.Is(err, service.ErrAttachmentNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "attachment with "+attachmentID+" not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
