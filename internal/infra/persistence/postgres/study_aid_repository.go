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
	"gorm.io/gorm/clause"
)

// studyAidRepository implements the domain.StudyAidRepository interface.
type studyAidRepository struct {
	db *gorm.DB
}

// NewStudyAidRepository is the constructor for studyAidRepository.
func NewStudyAidRepository(db *gorm.DB) repository.StudyAidRepository {
	return &studyAidRepository{db: db}
}

// SaveSummary upserts on document_id so regeneration replaces the previous summary.
func (repo *studyAidRepository) SaveSummary(ctx context.Context, summary *entity.Summary) error {
	summaryM := fromSummaryDomain(summary)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "document_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"summary", "key_points", "insights", "examples", "created_at"}),
	}).Create(summaryM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDocumentNotFound.WrapMessage("summary references a missing document")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save summary")
	}

	summary.CreatedAt = summaryM.CreatedAt

	return nil
}

func (repo *studyAidRepository) FindSummary(ctx context.Context, documentID uuid.UUID) (*entity.Summary, error) {
	var summaryM model.SummaryModel
	if err := repo.db.WithContext(ctx).Where("document_id = ?", documentID).First(&summaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSummaryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find summary")
	}

	return toSummaryDomain(&summaryM), nil
}

// ReplaceFlashcards swaps the whole set. Callers wanting atomicity run it inside a transaction.
func (repo *studyAidRepository) ReplaceFlashcards(ctx context.Context, documentID uuid.UUID, cards []*entity.Flashcard) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("document_id = ?", documentID).Delete(&model.FlashcardModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete flashcards")
	}
	if len(cards) == 0 {
		return nil
	}

	cardModels := make([]*model.FlashcardModel, 0, len(cards))
	for _, card := range cards {
		card.DocumentID = documentID
		cardModels = append(cardModels, fromFlashcardDomain(card))
	}
	if err := db.Create(&cardModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create flashcards")
	}

	for i, m := range cardModels {
		cards[i].ID = m.ID
		cards[i].CreatedAt = m.CreatedAt
	}

	return nil
}

func (repo *studyAidRepository) ListFlashcards(ctx context.Context, documentID uuid.UUID) ([]*entity.Flashcard, error) {
	var cardModels []model.FlashcardModel
	err := repo.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("position ASC").
		Find(&cardModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list flashcards")
	}

	cards := make([]*entity.Flashcard, 0, len(cardModels))
	for i := range cardModels {
		cards = append(cards, toFlashcardDomain(&cardModels[i]))
	}

	return cards, nil
}

func (repo *studyAidRepository) CountFlashcardsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.FlashcardModel{}).
		Joins("JOIN documents ON documents.id = flashcards.document_id").
		Where("documents.user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count flashcards")
	}

	return count, nil
}

func (repo *studyAidRepository) DeleteByDocument(ctx context.Context, documentID uuid.UUID) error {
	db := repo.db.WithContext(ctx)
	if err := db.Where("document_id = ?", documentID).Delete(&model.FlashcardModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete flashcards")
	}
	if err := db.Where("document_id = ?", documentID).Delete(&model.SummaryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete summary")
	}

	return nil
}

func toSummaryDomain(data *model.SummaryModel) *entity.Summary {
	examples := make([]entity.Example, 0, len(data.Examples))
	for _, ex := range data.Examples {
		examples = append(examples, entity.Example{Title: ex.Title, Description: ex.Description, Code: ex.Code})
	}

	return &entity.Summary{
		DocumentID: data.DocumentID,
		Summary:    data.Summary,
		KeyPoints:  data.KeyPoints,
		Insights:   data.Insights,
		Examples:   examples,
		CreatedAt:  data.CreatedAt,
	}
}

func fromSummaryDomain(data *entity.Summary) *model.SummaryModel {
	examples := make([]model.ExampleModel, 0, len(data.Examples))
	for _, ex := range data.Examples {
		examples = append(examples, model.ExampleModel{Title: ex.Title, Description: ex.Description, Code: ex.Code})
	}

	return &model.SummaryModel{
		DocumentID: data.DocumentID,
		Summary:    data.Summary,
		KeyPoints:  data.KeyPoints,
		Insights:   data.Insights,
		Examples:   examples,
	}
}

func toFlashcardDomain(data *model.FlashcardModel) *entity.Flashcard {
	return &entity.Flashcard{
		ID:         data.ID,
		DocumentID: data.DocumentID,
		Question:   data.Question,
		Answer:     data.Answer,
		Difficulty: entity.ParseDifficulty(data.Difficulty),
		Order:      data.Order,
		CreatedAt:  data.CreatedAt,
	}
}

func fromFlashcardDomain(data *entity.Flashcard) *model.FlashcardModel {
	return &model.FlashcardModel{
		ID:         data.ID,
		DocumentID: data.DocumentID,
		Question:   data.Question,
		Answer:     data.Answer,
		Difficulty: string(data.Difficulty),
		Order:      data.Order,
	}
}
