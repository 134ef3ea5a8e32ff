package user

import (
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type WritingController struct {
	writingService service.WritingService
	llm            service.GeminiLLMService
}

func NewWritingController(ws service.WritingService, llm service.GeminiLLMService) *WritingController {
	return &WritingController{writingService: ws, llm: llm}
}

func (ctrl *WritingController) RegisterRoutes(rg *gin.RouterGroup) {
	writing := rg.Group("/writing")
	writing.GET("/prompts", ctrl.GetPrompts)
	writing.POST("/submissions", ctrl.SubmitWriting)
	writing.POST("/submissions/:submission_id/grade", ctrl.GradeSubmission)
	rg.GET("/students/:student_id/writing/submissions", ctrl.GetStudentSubmissions)
	rg.POST("/tutor/chat", ctrl.TutorChat)
}

// GetPrompts godoc
// @Summary List writing prompts
// @Tags Writing
// @Produce json
// @Success 200 {array} dto.WritingPromptDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /writing/prompts [get]
func (ctrl *WritingController) GetPrompts(c *gin.Context) {
	prompts, err := ctrl.writingService.ListPrompts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// SubmitWriting godoc
// @Summary Submit an essay for a writing prompt
// @Description The word count is computed server-side from the submitted content.
// @Tags Writing
// @Accept json
// @Produce json
// @Param submission body dto.SubmitWritingRequest true "Prompt ID, student ID and essay content"
// @Success 201 {object} dto.WritingSubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Prompt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /writing/submissions [post]
func (ctrl *WritingController) SubmitWriting(c *gin.Context) {
	var req dto.SubmitWritingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitWriting: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sub, err := ctrl.writingService.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// GradeSubmission godoc
// @Summary Request AI grading for a submission
// @Description Sends the essay and its rubric to the AI, stores the feedback and grade, and moves the submission to ai_graded.
// @Tags Writing
// @Produce json
// @Param submission_id path string true "Submission ID"
// @Param student_id query string false "Student ID for ownership check"
// @Success 200 {object} dto.GradeWritingResponse
// @Failure 403 {object} dto.ErrorResponse "Submission belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error or AI service error"
// @Router /writing/submissions/{submission_id}/grade [post]
func (ctrl *WritingController) GradeSubmission(c *gin.Context) {
	graded, err := ctrl.writingService.Grade(c.Request.Context(), c.Param("submission_id"), c.Query("student_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, graded)
}

// GetStudentSubmissions godoc
// @Summary List a student's writing submissions
// @Description Submissions are ordered most recent first and include any AI feedback and teacher review.
// @Tags Writing
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {array} dto.WritingSubmissionDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/writing/submissions [get]
func (ctrl *WritingController) GetStudentSubmissions(c *gin.Context) {
	subs, err := ctrl.writingService.ListStudentSubmissions(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// TutorChat godoc
// @Summary Ask the AI tutor a question
// @Tags Tutor
// @Accept json
// @Produce json
// @Param message body dto.TutorChatRequest true "Student's message, at most 2000 characters"
// @Success 200 {object} dto.TutorChatResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "AI service error"
// @Router /tutor/chat [post]
func (ctrl *WritingController) TutorChat(c *gin.Context) {
	var req dto.TutorChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("TutorChat: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	reply, err := ctrl.llm.TutorReply(c.Request.Context(), req.Message)
	if err != nil {
		log.Error().Err(err).Msg("TutorChat: AI call failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to get tutor response"})
		return
	}
	c.JSON(http.StatusOK, dto.TutorChatResponse{Response: reply})
}
