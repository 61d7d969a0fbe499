package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/middleware"
	"github.com/saripudin14/siwate/internal/service"
)

type InterviewController struct {
	questionService  service.QuestionService
	interviewService service.InterviewService
}

func NewInterviewController(qs service.QuestionService, is service.InterviewService) *InterviewController {
	return &InterviewController{questionService: qs, interviewService: is}
}

// GetAllQuestions godoc
// @Summary List interview questions
// @Description Get every question in the bank, newest first.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *InterviewController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetRandomQuestion godoc
// @Summary Get a random interview question
// @Description Pick one question from the bank at random.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "No questions available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/random [get]
func (c *InterviewController) GetRandomQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetRandomQuestion()
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("GetRandomQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve question"})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// SubmitAnswer godoc
// @Summary Submit an interview answer
// @Description Score the answer with the active backend and store the judged result.
// @Tags Interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmitAnswerRequest true "Question ID and answer text"
// @Success 201 {object} dto.InterviewResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid or empty submission"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Scoring backend misconfigured or internal error"
// @Router /interviews [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing authentication"})
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.interviewService.Submit(ctx.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyAnswer):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrQuestionNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrCredentialMissing):
			log.Error().Err(err).Msg("SubmitAnswer: scoring backend misconfigured")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("SubmitAnswer: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit answer"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetResult godoc
// @Summary Get one interview result
// @Description Fetch a judged result owned by the authenticated user.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.InterviewResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id} [get]
func (c *InterviewController) GetResult(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing authentication"})
		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid result ID"})
		return
	}

	result, err := c.interviewService.GetResult(id, userID)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("GetResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve result"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetHistory godoc
// @Summary List the authenticated user's interview history
// @Description All judged results owned by the caller, newest first.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewResultResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews [get]
func (c *InterviewController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing authentication"})
		return
	}

	results, err := c.interviewService.GetHistory(userID)
	if err != nil {
		log.Error().Err(err).Msg("GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve history"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// DeleteResult godoc
// @Summary Delete one interview result
// @Description Remove a judged result and its answer. Only the owner may delete.
// @Tags Interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid result ID"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interviews/{id} [delete]
func (c *InterviewController) DeleteResult(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing authentication"})
		return
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid result ID"})
		return
	}

	if err := c.interviewService.DeleteResult(id, userID); err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("DeleteResult: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete result"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "result deleted"})
}

func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
