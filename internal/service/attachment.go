package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"patientapi/internal/model"
	"patientapi/internal/repository"
	"patientapi/internal/storage"
)

// AttachmentService defines the use cases for clinical file attachments.
// Content lives in object storage; metadata lives in the attachments table.
// All operations resolve the parent patient under the caller's doctor id.
type AttachmentService interface {
	// Upload stores the content in object storage, saves metadata to the DB,
	// and rolls back the stored object if the DB save fails.
	// originalFilename is used only to extract the extension; the stored
	// object key is UUID + extension.
	Upload(ctx context.Context, doctorID, patientID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error)

	// ListByPatient returns all attachments under the patient, newest first.
	ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.Attachment, error)

	// Get returns attachment metadata.
	Get(ctx context.Context, doctorID, patientID, id string) (*model.Attachment, error)

	// Download returns the attachment content as a streaming reader plus its
	// metadata. The caller must close the reader.
	Download(ctx context.Context, doctorID, patientID, id string) (io.ReadCloser, *model.Attachment, error)

	// Delete removes the object from storage, then deletes the metadata row.
	Delete(ctx context.Context, doctorID, patientID, id string) error
}

type attachmentService struct {
	store    storage.Storage
	patients repository.PatientRepository
	repo     repository.AttachmentRepository
}

// NewAttachmentService constructs a new AttachmentService.
func NewAttachmentService(store storage.Storage, patients repository.PatientRepository, repo repository.AttachmentRepository) AttachmentService {
	return &attachmentService{store: store, patients: patients, repo: repo}
}

func (s *attachmentService) resolvePatient(ctx context.Context, doctorID, patientID string) error {
	if doctorID == "" || patientID == "" {
		return ErrIDRequired
	}
	if _, err := s.patients.FindByID(ctx, doctorID, patientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPatientNotFound
		}
		return err
	}
	return nil
}

func (s *attachmentService) Upload(ctx context.Context, doctorID, patientID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	genName := uuid.New().String() + ext
	key := filepath.ToSlash(filepath.Join("attachments", genName))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"patient-id":        patientID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	a := &model.Attachment{
		ID:          uuid.New().String(),
		PatientID:   patientID,
		Filename:    originalFilename,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *attachmentService) ListByPatient(ctx context.Context, doctorID, patientID string) ([]model.Attachment, error) {
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *attachmentService) Get(ctx context.Context, doctorID, patientID, id string) (*model.Attachment, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := s.resolvePatient(ctx, doctorID, patientID); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, patientID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *attachmentService) Download(ctx context.Context, doctorID, patientID, id string) (io.ReadCloser, *model.Attachment, error) {
	a, err := s.Get(ctx, doctorID, patientID, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, a.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	return rc, a, nil
}

func (s *attachmentService) Delete(ctx context.Context, doctorID, patientID, id string) error {
	a, err := s.Get(ctx, doctorID, patientID, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the object
	// reference is not lost.
	if err := s.store.Delete(ctx, a.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
