package admin

import (
	"errors"
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminService service.AdminTestService
}

func NewAdminTestController(as service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminService: as}
}

func (ctrl *AdminTestController) RegisterRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	adminGroup.POST("/tests", ctrl.CreateTest)
	adminGroup.POST("/questions/generate", ctrl.GenerateQuestions)
}

// CreateTest godoc
// @Summary Create a test with its answer key
// @Description A test holds either a flat question list or a parts list, never both. Multiple-choice keys may be a legacy option index or the answer text.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test body dto.TestCreateDTO true "Test content including questions and correct answers"
// @Success 201 {object} model.Test
// @Failure 400 {object} dto.ErrorResponse "Invalid test structure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (ctrl *AdminTestController) CreateTest(c *gin.Context) {
	var req dto.TestCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	test, err := ctrl.adminService.CreateTest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateTest: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create test"})
		return
	}
	c.JSON(http.StatusCreated, test)
}

// GenerateQuestions godoc
// @Summary Generate draft questions with the AI
// @Description Returns generated questions for review; nothing is persisted until a test is created from them.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Subject, level, count and question type"
// @Success 200 {object} dto.GeneratedQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "AI service error or unparseable AI response"
// @Router /admin/questions/generate [post]
func (ctrl *AdminTestController) GenerateQuestions(c *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateQuestions: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.adminService.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("GenerateQuestions: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate questions"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
