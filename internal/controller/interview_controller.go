package controller

import (
	"errors"
	"net/http"
	"strconv"

	"echoprep/internal/dto"
	"echoprep/internal/repository"
	"echoprep/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
	llm              service.GeminiLLMService
}

func NewInterviewController(interviewService service.InterviewService, llm service.GeminiLLMService) *InterviewController {
	return &InterviewController{interviewService: interviewService, llm: llm}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// Create godoc
// @Summary Create a configured interview with a generated question list
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body dto.InterviewCreateRequest true "Role, level, type and skills"
// @Success 201 {object} dto.InterviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /interviews [post]
func (c *InterviewController) Create(ctx *gin.Context) {
	var req dto.InterviewCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.Create(ctx.Request.Context(), currentUserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create interview", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List the authenticated user's interviews, most recent first
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewSummaryResponse
// @Router /interviews [get]
func (c *InterviewController) List(ctx *gin.Context) {
	summaries, err := c.interviewService.ListForUser(currentUserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListInterviews: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list interviews"})
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// Get godoc
// @Summary Get one interview with its question list
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param interview_id path int true "Interview ID"
// @Success 200 {object} dto.InterviewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /interviews/{interview_id} [get]
func (c *InterviewController) Get(ctx *gin.Context) {
	interviewID, ok := parseIDParam(ctx, "interview_id")
	if !ok {
		return
	}

	resp, err := c.interviewService.Get(currentUserID(ctx), interviewID)
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Interview not found"})
			return
		}
		log.Error().Err(err).Uint("interviewID", interviewID).Msg("GetInterview: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch interview"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Aggregate interview statistics for the authenticated user
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserStatsResponse
// @Router /stats [get]
func (c *InterviewController) Stats(ctx *gin.Context) {
	stats, err := c.interviewService.UserStats(currentUserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("Stats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute stats"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// SetupChat godoc
// @Summary One turn of the conversational interview setup assistant
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param turn body dto.SetupChatRequest true "User message plus prior exchanges"
// @Success 200 {object} dto.SetupChatResponse
// @Router /setup-chat [post]
func (c *InterviewController) SetupChat(ctx *gin.Context) {
	var req dto.SetupChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	reply, extracted := c.llm.SetupChat(ctx.Request.Context(), req.Message, req.History)
	ctx.JSON(http.StatusOK, dto.SetupChatResponse{
		Reply:     reply,
		Extracted: extracted,
		Complete:  extracted.IsComplete(),
	})
}
