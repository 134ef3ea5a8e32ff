package user

import (
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService       service.TestService
	validationService service.ValidationService
}

func NewTestController(ts service.TestService, vs service.ValidationService) *TestController {
	return &TestController{testService: ts, validationService: vs}
}

func (ctrl *TestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.GET("", ctrl.GetAllTests)
	tests.GET("/:test_id", ctrl.GetTestDetails)
	tests.POST("/:test_id/validate", ctrl.ValidateAnswers)
}

// GetAllTests godoc
// @Summary List available tests
// @Description Get test summaries without question content. Use the 'category' query param to filter.
// @Tags Tests
// @Produce json
// @Param category query string false "Filter by category (IELTS, Checkpoint, ESL)"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (ctrl *TestController) GetAllTests(c *gin.Context) {
	tests, err := ctrl.testService.GetAllTests(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get a test for taking
// @Description Full test content with questions, sanitized: correct answers and explanations are stripped.
// @Tags Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (ctrl *TestController) GetTestDetails(c *gin.Context) {
	detail, err := ctrl.testService.GetTestDetails(c.Request.Context(), c.Param("test_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ValidateAnswers godoc
// @Summary Grade a submission against the stored answer key
// @Description Compares the submitted answers with the authoritative test record and returns per-question results. Correct answers only appear in the response, never in the request.
// @Tags Tests
// @Accept json
// @Produce json
// @Param test_id path string true "Test ID"
// @Param submission body dto.ValidateAnswersRequest true "Map of question ID to submitted answer"
// @Success 200 {object} scoring.Report
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/validate [post]
func (ctrl *TestController) ValidateAnswers(c *gin.Context) {
	var req dto.ValidateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ValidateAnswers: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	report, err := ctrl.validationService.ValidateAnswers(c.Request.Context(), c.Param("test_id"), req.UserAnswers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
