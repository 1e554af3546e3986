package postgres

import (
	"context"

	"satoru/internal/domain/entity"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/repository"
	"satoru/internal/errors"
	"satoru/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRepository implements the domain.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	docM := fromDocumentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid document owner")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid document fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	doc.CreatedAt = docM.CreatedAt

	return nil
}

func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var docM model.DocumentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&docM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find document")
	}

	return toDocumentDomain(&docM), nil
}

func (repo *documentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	var docModels []model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list documents")
	}

	docs := make([]*entity.Document, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, toDocumentDomain(&docModels[i]))
	}

	return docs, nil
}

func (repo *documentRepository) Update(ctx context.Context, doc *entity.Document) error {
	result := repo.db.WithContext(ctx).Model(&model.DocumentModel{}).
		Where("id = ?", doc.ID).
		Updates(map[string]any{
			"title":        doc.Title,
			"status":       doc.Status.String(),
			"pages":        doc.Pages,
			"error":        doc.Error,
			"processed_at": doc.ProcessedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DocumentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

type documentStatsRow struct {
	Total      int64
	Completed  int64
	Processing int64
	Failed     int64
	Pages      int64
}

func (repo *documentRepository) Stats(ctx context.Context, userID uuid.UUID) (*entity.DocumentStats, error) {
	var row documentStatsRow
	err := repo.db.WithContext(ctx).Model(&model.DocumentModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status = ?) AS completed, "+
				"COUNT(*) FILTER (WHERE status = ?) AS processing, "+
				"COUNT(*) FILTER (WHERE status = ?) AS failed, "+
				"COALESCE(SUM(pages), 0) AS pages",
			entity.DocumentStatusCompleted.String(),
			entity.DocumentStatusProcessing.String(),
			entity.DocumentStatusFailed.String(),
		).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate documents")
	}

	return &entity.DocumentStats{
		TotalDocuments: row.Total,
		Completed:      row.Completed,
		Processing:     row.Processing,
		Failed:         row.Failed,
		TotalPages:     row.Pages,
	}, nil
}

func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	return &entity.Document{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		FileName:    data.FileName,
		FileSize:    data.FileSize,
		FileURL:     data.FileURL,
		StorageKey:  data.StorageKey,
		Status:      entity.DocumentStatus(data.Status),
		Pages:       data.Pages,
		Error:       data.Error,
		CreatedAt:   data.CreatedAt,
		ProcessedAt: data.ProcessedAt,
	}
}

func fromDocumentDomain(data *entity.Document) *model.DocumentModel {
	return &model.DocumentModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		FileName:    data.FileName,
		FileSize:    data.FileSize,
		FileURL:     data.FileURL,
		StorageKey:  data.StorageKey,
		Status:      data.Status.String(),
		Pages:       data.Pages,
		Error:       data.Error,
		CreatedAt:   data.CreatedAt,
		ProcessedAt: data.ProcessedAt,
	}
}
