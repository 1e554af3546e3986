package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"satoru/config"
	"satoru/internal/delivery/api/response"
	deliverycontext "satoru/internal/delivery/context"
	"satoru/internal/domain/constants"
	domainerrors "satoru/internal/domain/errors"
	"satoru/internal/domain/service"
	"satoru/internal/errors"
	"satoru/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DocumentHandler serves document upload, listing and study material endpoints.
type DocumentHandler struct {
	documentUC    usecase.DocumentUsecase
	processingUC  usecase.ProcessingUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC   usecase.DocumentUsecase
	ProcessingUC usecase.ProcessingUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler.
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	maxUploadSize := int64(constants.DefaultMaxUploadSize)
	if params.Config.Documents != nil && params.Config.Documents.MaxUploadSize > 0 {
		maxUploadSize = params.Config.Documents.MaxUploadSize
	}

	return &DocumentHandler{
		documentUC:    params.DocumentUC,
		processingUC:  params.ProcessingUC,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

// MaxUploadSize is the largest file the upload endpoint accepts.
func (h *DocumentHandler) MaxUploadSize() int64 {
	return h.maxUploadSize
}

// List returns the caller's documents, newest first.
func (h *DocumentHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	docs, err := h.documentUC.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDocumentViews(docs))
}

// Upload accepts a multipart PDF in the "file" field with an optional "title".
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrDocumentFileMissing)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	// One byte past the limit is enough for the usecase to reject the file.
	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	doc, err := h.documentUC.Upload(c.Request().Context(), &usecase.UploadDocumentInput{
		UserID:      userID,
		Title:       c.FormValue("title"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, service.NewDocumentView(doc))
}

// Stats returns document and flashcard totals for the caller.
func (h *DocumentHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.documentUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsResponse{
		TotalDocuments:  stats.TotalDocuments,
		Completed:       stats.Completed,
		Processing:      stats.Processing,
		Failed:          stats.Failed,
		TotalPages:      stats.TotalPages,
		TotalFlashcards: stats.TotalFlashcards,
	})
}

// Get returns a document with its summary and flashcards.
func (h *DocumentHandler) Get(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	detail, err := h.documentUC.Get(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, documentDetailResponse{
		DocumentView: service.NewDocumentView(detail.Document),
		Summary:      newSummaryResponse(detail.Summary),
		Flashcards:   newFlashcardResponses(detail.Flashcards),
	})
}

// Delete removes a document and everything generated from it.
func (h *DocumentHandler) Delete(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	if err := h.documentUC.Delete(c.Request().Context(), userID, documentID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// File streams the uploaded PDF back to its owner.
func (h *DocumentHandler) File(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	file, err := h.documentUC.DownloadFile(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("inline", map[string]string{"filename": file.FileName}))

	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

// Summary returns the document's summary.
func (h *DocumentHandler) Summary(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	summary, err := h.documentUC.GetSummary(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSummaryResponse(summary))
}

// Flashcards returns the document's flashcards in order.
func (h *DocumentHandler) Flashcards(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	cards, err := h.documentUC.GetFlashcards(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFlashcardResponses(cards))
}

// RegenerateFlashcards replaces the document's flashcards with a fresh set.
func (h *DocumentHandler) RegenerateFlashcards(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	var req regenerateFlashcardsRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	cards, err := h.processingUC.RegenerateFlashcards(c.Request().Context(), userID, documentID, req.Count)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Flashcards regenerated on request", slog.Any("documentID", documentID), slog.Int("count", len(cards)))

	return response.Success(c, http.StatusOK, newFlashcardResponses(cards))
}

// RegenerateSummary replaces the document's summary.
func (h *DocumentHandler) RegenerateSummary(c echo.Context) error {
	userID, documentID, err := h.documentParams(c)
	if err != nil {
		return err
	}

	summary, err := h.processingUC.RegenerateSummary(c.Request().Context(), userID, documentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSummaryResponse(summary))
}

// documentParams returns the caller and the :id path parameter.
func (h *DocumentHandler) documentParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.WithStack(domainerrors.ErrDocumentNotFound)
	}

	return userID, documentID, nil
}
