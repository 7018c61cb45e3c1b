package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"askhub/internal/domain"
	"askhub/internal/service"
)

// AssessmentHandler exposes the scoring engine over HTTP. It does no
// computation of its own; everything is delegated to the service.
type AssessmentHandler struct {
	logger *zap.Logger
	svc    *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{logger: logger, svc: svc}
}

type submitAnswer struct {
	QuestionID      int    `json:"question_id" binding:"required"`
	SelectedOptions []int  `json:"selected_options"`
	SelfRating      int    `json:"self_rating" binding:"required,min=1,max=5"`
	SelfNotes       string `json:"self_notes"`
}

// SubmitAttempt handles POST /attempts.
func (h *AssessmentHandler) SubmitAttempt(c *gin.Context) {
	var req struct {
		Username string         `json:"username" binding:"required"`
		Track    string         `json:"track" binding:"required"`
		Answers  []submitAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answers := make(domain.AnswerSet, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = domain.AnswerRecord{
			QuestionID:      a.QuestionID,
			SelectedOptions: a.SelectedOptions,
			SelfRating:      a.SelfRating,
			SelfNotes:       a.SelfNotes,
		}
	}

	res, err := h.svc.SubmitAttempt(c.Request.Context(), req.Username, req.Track, answers)
	if err != nil {
		h.respondServiceError(c, "submit attempt failed", err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// GetAttempt handles GET /attempts/:id.
func (h *AssessmentHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.svc.Attempt(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, "get attempt failed", err)
		return
	}

	reviewed, total := attempt.ReviewProgress()
	c.JSON(http.StatusOK, gin.H{
		"attempt": attempt,
		"review_progress": gin.H{
			"reviewed": reviewed,
			"total":    total,
		},
	})
}

// ApplyReviewerRating handles POST /attempts/:id/review.
func (h *AssessmentHandler) ApplyReviewerRating(c *gin.Context) {
	var req struct {
		QuestionID int    `json:"question_id" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		Notes      string `json:"notes"`
		ReviewedBy string `json:"reviewed_by" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	attempt, err := h.svc.ApplyReviewerRating(c.Request.Context(), c.Param("id"), req.QuestionID, req.Rating, req.Notes, req.ReviewedBy)
	if err != nil {
		h.respondServiceError(c, "apply reviewer rating failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}

// GetResult handles GET /results/:username.
func (h *AssessmentHandler) GetResult(c *gin.Context) {
	res, err := h.svc.LatestResult(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondServiceError(c, "get result failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": res})
}

// GetGaps handles GET /results/:username/gaps.
func (h *AssessmentHandler) GetGaps(c *gin.Context) {
	gaps, err := h.svc.LatestGaps(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondServiceError(c, "get gaps failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gaps": gaps})
}

// GetClassification handles GET /results/:username/personality.
func (h *AssessmentHandler) GetClassification(c *gin.Context) {
	res, err := h.svc.LatestClassification(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondServiceError(c, "get classification failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"classification": res,
		"primary":        domain.PersonalityTypeByCode(res.PrimaryType),
	})
}

// ListTracks handles GET /tracks.
func (h *AssessmentHandler) ListTracks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tracks": h.svc.Tracks()})
}

// ListQuestions handles GET /questions.
func (h *AssessmentHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.svc.Questions()})
}

func (h *AssessmentHandler) respondServiceError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyAnswers),
		errors.Is(err, service.ErrUnknownTrack),
		errors.Is(err, service.ErrUnknownAnswer),
		errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoAttemptFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
