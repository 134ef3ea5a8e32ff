package user

import (
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultService service.ResultService
}

func NewResultController(rs service.ResultService) *ResultController {
	return &ResultController{resultService: rs}
}

func (ctrl *ResultController) RegisterRoutes(rg *gin.RouterGroup) {
	results := rg.Group("/results")
	results.POST("", ctrl.SaveResult)
	results.GET("/:result_id", ctrl.GetResult)
	results.POST("/:result_id/analyze", ctrl.AnalyzeResult)
	rg.GET("/users/:user_id/results", ctrl.GetUserResults)
}

// SaveResult godoc
// @Summary Record a completed test session
// @Description Persists a test result. The score is recomputed server-side from the stored answer key; any score in the request is ignored.
// @Tags Results
// @Accept json
// @Produce json
// @Param result body dto.SaveResultRequest true "Test ID, user ID and submitted answers"
// @Success 201 {object} dto.TestResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (ctrl *ResultController) SaveResult(c *gin.Context) {
	var req dto.SaveResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SaveResult: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := ctrl.resultService.SaveResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetResult godoc
// @Summary Get a saved test result
// @Tags Results
// @Produce json
// @Param result_id path string true "Result ID"
// @Success 200 {object} dto.TestResultDTO
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{result_id} [get]
func (ctrl *ResultController) GetResult(c *gin.Context) {
	result, err := ctrl.resultService.GetResult(c.Request.Context(), c.Param("result_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserResults godoc
// @Summary List a user's test results
// @Description Results are ordered most recent first.
// @Tags Results
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.TestResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/results [get]
func (ctrl *ResultController) GetUserResults(c *gin.Context) {
	results, err := ctrl.resultService.ListUserResults(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// AnalyzeResult godoc
// @Summary Generate an AI analysis of a test result
// @Description Re-grades the stored answers against the test record, asks the AI for a per-question breakdown, and stores the analysis on the result.
// @Tags Results
// @Produce json
// @Param result_id path string true "Result ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} dto.ErrorResponse "Result or test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error or AI service error"
// @Router /results/{result_id}/analyze [post]
func (ctrl *ResultController) AnalyzeResult(c *gin.Context) {
	analysis, err := ctrl.resultService.AnalyzeResult(c.Request.Context(), c.Param("result_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Analysis: analysis})
}
