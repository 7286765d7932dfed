package controller

import (
	"errors"
	"net/http"

	"echoprep/internal/dto"
	"echoprep/internal/progression"
	"echoprep/internal/repository"
	"echoprep/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

func (c *SessionController) writeSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInterviewNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found"})
	case errors.Is(err, repository.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No session recorded for this interview yet"})
	case errors.Is(err, progression.ErrBlankAnswer):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Answer must contain at least one non-whitespace character"})
	case errors.Is(err, progression.ErrNotStarted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Interview attempt has not been started"})
	case errors.Is(err, progression.ErrAlreadyCompleted), errors.Is(err, service.ErrSessionCompleted):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Interview is already completed; fetch the report instead"})
	case errors.Is(err, progression.ErrNoQuestions):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Interview has no questions attached"})
	default:
		log.Error().Err(err).Msg("Session flow: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal error", Details: []string{err.Error()}})
	}
}

// Start godoc
// @Summary Start (or retake) an interview attempt
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param retake query bool false "Start a fresh attempt for an already completed interview"
// @Success 200 {object} dto.ProgressResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already completed"
// @Router /interviews/{interview_id}/session/start [post]
func (c *SessionController) Start(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}
	retake := ctx.Query("retake") == "true"

	resp, err := c.sessionService.Start(currentUserID(ctx), interviewID, retake)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Current godoc
// @Summary Current question and progress of the active attempt
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 409 {object} dto.ErrorResponse "Not started"
// @Router /interviews/{interview_id}/session/current [get]
func (c *SessionController) Current(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	resp, err := c.sessionService.Current(currentUserID(ctx), interviewID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Answer godoc
// @Summary Submit the answer for the current question
// @Description Advances to the next question, or finalizes the attempt and persists the session after the last one.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Param answer body dto.AnswerRequest true "Non-blank answer text"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Blank answer"
// @Router /interviews/{interview_id}/session/answer [post]
func (c *SessionController) Answer(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.sessionService.SubmitAnswer(ctx.Request.Context(), currentUserID(ctx), interviewID, req.Answer)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Skip godoc
// @Summary Skip the current question
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.ProgressResponse
// @Router /interviews/{interview_id}/session/skip [post]
func (c *SessionController) Skip(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	resp, err := c.sessionService.Skip(ctx.Request.Context(), currentUserID(ctx), interviewID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary Persisted transcript and feedback for a completed interview
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /interviews/{interview_id}/report [get]
func (c *SessionController) Report(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	resp, err := c.sessionService.Report(currentUserID(ctx), interviewID)
	if err != nil {
		c.writeSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
