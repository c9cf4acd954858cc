package analyses

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/extract"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc     *Service
	Extract *extract.Handler
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, extractor *extract.Handler) *Handler {
	return &Handler{Svc: svc, Extract: extractor}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-ats", h.analyzeText)
	rg.POST("/analyze-file", h.analyzeFile)
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorTextTooLarge, "")
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorTextInvalidBody, "")
		return
	}
	h.run(c, req)
}

func (h *Handler) analyzeFile(c *gin.Context) {
	doc, err := h.Extract.FromRequest(c)
	if err != nil {
		extract.RespondError(c, err)
		return
	}
	h.run(c, AnalyzeRequest{
		ResumeText:         doc.Text,
		JobDescriptionText: c.PostForm("jobDescriptionText"),
	})
}

func (h *Handler) run(c *gin.Context, req AnalyzeRequest) {
	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	report, err := h.Svc.Analyze(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrResumeRequired):
			respond.Error(c, http.StatusBadRequest, ErrorTextResumeRequired, "")
		case errors.Is(err, ErrInputTooLarge):
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorTextTooLarge, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusServiceUnavailable, "Request cancelled", "")
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorTextFailed, err.Error())
		}
		return
	}
	c.Set(middleware.ScoreKey, report.Score)
	respond.OK(c, report)
}
