package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saripudin14/siwate/internal/dto"
	"github.com/saripudin14/siwate/internal/service"
)

type AdminController struct {
	questionService service.QuestionService
	datasetService  service.DatasetService
}

func NewAdminController(qs service.QuestionService, ds service.DatasetService) *AdminController {
	return &AdminController{questionService: qs, datasetService: ds}
}

// CreateQuestion godoc
// @Summary (Admin) Add an interview question
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question text"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question"})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetAllQuestions godoc
// @Summary (Admin) List interview questions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete an interview question
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID"})
		return
	}

	if err := c.questionService.DeleteQuestion(id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("DeleteQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "question deleted"})
}

// CreateDatasetExample godoc
// @Summary (Admin) Add a labeled training example
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param example body dto.CreateDatasetRequest true "Answer text and score label"
// @Success 201 {object} dto.DatasetResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dataset [post]
func (c *AdminController) CreateDatasetExample(ctx *gin.Context) {
	var req dto.CreateDatasetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	example, err := c.datasetService.AddExample(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateDatasetExample: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create dataset example"})
		return
	}
	ctx.JSON(http.StatusCreated, example)
}

// GetAllDatasetExamples godoc
// @Summary (Admin) List labeled training examples
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DatasetResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dataset [get]
func (c *AdminController) GetAllDatasetExamples(ctx *gin.Context) {
	examples, err := c.datasetService.GetAllExamples()
	if err != nil {
		log.Error().Err(err).Msg("GetAllDatasetExamples: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve dataset"})
		return
	}
	ctx.JSON(http.StatusOK, examples)
}

// DeleteDatasetExample godoc
// @Summary (Admin) Delete a labeled training example
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Example ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid example ID"
// @Failure 404 {object} dto.ErrorResponse "Example not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dataset/{id} [delete]
func (c *AdminController) DeleteDatasetExample(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid example ID"})
		return
	}

	if err := c.datasetService.DeleteExample(id); err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("DeleteDatasetExample: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete dataset example"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "dataset example deleted"})
}

// TrainModel godoc
// @Summary (Admin) Train the local scoring model
// @Description Fit a regression model on the stored dataset and activate it.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TrainResponse
// @Failure 422 {object} dto.ErrorResponse "Dataset too small to train"
// @Failure 500 {object} dto.ErrorResponse "Training failed"
// @Router /admin/dataset/train [post]
func (c *AdminController) TrainModel(ctx *gin.Context) {
	resp, err := c.datasetService.Train()
	if err != nil {
		if errors.Is(err, service.ErrDatasetTooSmall) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("TrainModel: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to train model"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
