package extract

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/respond"
	"resume-ats/internal/shared/util"
)

const uploadField = "file"

var (
	// ErrMissingFile is returned when a multipart request has no file part.
	ErrMissingFile = errors.New("no file uploaded")
	errTooLarge    = errors.New("file too large")
)

// Handler serves document text extraction.
type Handler struct {
	MaxUploadBytes int64
}

func NewHandler(maxUploadBytes int64) *Handler {
	return &Handler{MaxUploadBytes: maxUploadBytes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract-text", h.ExtractText)
}

func (h *Handler) ExtractText(c *gin.Context) {
	doc, err := h.FromRequest(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	respond.OK(c, doc)
}

// FromRequest reads the multipart "file" part and extracts its text.
func (h *Handler) FromRequest(c *gin.Context) (Document, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return Document{}, errTooLarge
		}
		if errors.Is(err, http.ErrMissingFile) {
			return Document{}, ErrMissingFile
		}
		return Document{}, fmt.Errorf("%w: %v", ErrMissingFile, err)
	}
	if h.MaxUploadBytes > 0 && fh.Size > h.MaxUploadBytes {
		return Document{}, errTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return Document{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}
	return Extract(c.Request.Context(), data, fh.Header.Get("Content-Type"), util.CleanFileName(fh.Filename))
}

// RespondError maps extraction failures to HTTP responses.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFile):
		respond.Error(c, http.StatusBadRequest, "No file uploaded", "")
	case errors.Is(err, errTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "File too large", "")
	case errors.Is(err, ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, "Unsupported file type", "Upload a PDF, DOCX or TXT file")
	case errors.Is(err, ErrEmptyDocument):
		respond.Error(c, http.StatusUnprocessableEntity, "No text found in document", "")
	default:
		respond.Error(c, http.StatusInternalServerError, "Failed to extract text", strings.TrimSpace(err.Error()))
	}
}
