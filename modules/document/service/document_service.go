package service

import (
	"context"
	"io"

	"gestion-api/core/errors"
	"gestion-api/core/logger"
	"gestion-api/core/storage"
	"gestion-api/core/utils"
	"gestion-api/modules/document/entity"
	"gestion-api/modules/document/repository"

	"github.com/google/uuid"
)

// DocumentService handles document upload, download and deletion
type DocumentService struct {
	repo  repository.DocumentRepositoryInterface
	store storage.ObjectStorage
}

// UploadInput carries one uploaded file.
type UploadInput struct {
	PrestationID uuid.UUID
	FileName     string
	ContentType  string
	Size         int64
	TypeDocument *string
	Notes        *string
	Body         io.Reader
}

// DocumentServiceInterface defines the service contract
type DocumentServiceInterface interface {
	Upload(ctx context.Context, input *UploadInput) (*entity.Document, *errors.AppError)
	Download(ctx context.Context, id uuid.UUID) (*entity.Document, io.ReadCloser, *errors.AppError)
	ListByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Document, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, store storage.ObjectStorage) DocumentServiceInterface {
	return &DocumentService{repo: repo, store: store}
}

// Upload stores the file in the bucket then records it. The object is
// removed again when the database insert fails.
func (s *DocumentService) Upload(ctx context.Context, input *UploadInput) (*entity.Document, *errors.AppError) {
	if input.FileName == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Nom de fichier manquant", nil)
	}

	document := &entity.Document{
		PrestationID: input.PrestationID,
		NomFichier:   utils.StorageFileName(input.FileName),
		NomOriginal:  input.FileName,
		TypeDocument: input.TypeDocument,
		TailleOctets: &input.Size,
		Notes:        input.Notes,
	}

	if err := s.store.Put(ctx, document.StorageKey(), input.Body, input.Size, input.ContentType); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Envoi du fichier impossible", err)
	}

	created, err := s.repo.Create(ctx, document)
	if err != nil {
		if delErr := s.store.Delete(ctx, document.StorageKey()); delErr != nil {
			logger.Warn("DocumentService:Upload orphan cleanup failed", "key", document.StorageKey(), "error", delErr)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Enregistrement du document impossible", err)
	}

	return created, nil
}

func (s *DocumentService) Download(ctx context.Context, id uuid.UUID) (*entity.Document, io.ReadCloser, *errors.AppError) {
	document, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Lecture du document impossible", err)
	}
	if document == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Document introuvable", nil)
	}

	body, err := s.store.Get(ctx, document.StorageKey())
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Téléchargement du fichier impossible", err)
	}
	return document, body, nil
}

func (s *DocumentService) ListByPrestationID(ctx context.Context, prestationID uuid.UUID) ([]entity.Document, *errors.AppError) {
	documents, err := s.repo.ListByPrestationID(ctx, prestationID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture des documents impossible", err)
	}
	return documents, nil
}

// Delete removes the bucket object best-effort, then the row.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	document, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Lecture du document impossible", err)
	}
	if document == nil {
		return errors.NewAppError(errors.ErrNotFound, "Document introuvable", nil)
	}

	if err := s.store.Delete(ctx, document.StorageKey()); err != nil {
		logger.Warn("DocumentService:Delete object delete failed", "key", document.StorageKey(), "error", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Suppression du document impossible", err)
	}
	return nil
}
