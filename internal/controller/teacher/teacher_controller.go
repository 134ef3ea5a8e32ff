package teacher

import (
	"errors"
	"net/http"

	"github.com/dang-hang/CheckPointAI/internal/dto"
	"github.com/dang-hang/CheckPointAI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TeacherController struct {
	classService   service.ClassService
	reportService  service.ReportService
	writingService service.WritingService
}

func NewTeacherController(cs service.ClassService, rs service.ReportService, ws service.WritingService) *TeacherController {
	return &TeacherController{classService: cs, reportService: rs, writingService: ws}
}

func (ctrl *TeacherController) RegisterRoutes(rg *gin.RouterGroup) {
	classes := rg.Group("/classes")
	classes.POST("", ctrl.CreateClass)
	classes.GET("", ctrl.GetClasses)
	classes.GET("/:class_id/students", ctrl.GetRoster)
	classes.POST("/:class_id/students", ctrl.AddStudent)

	rg.POST("/reports/progress", ctrl.GenerateProgressReport)
	rg.POST("/writing/submissions/:submission_id/review", ctrl.ReviewSubmission)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

// CreateClass godoc
// @Summary Create a class
// @Description Creates a class and assigns the requesting teacher to it.
// @Tags Teacher - Classes
// @Accept json
// @Produce json
// @Param class body dto.CreateClassRequest true "Teacher ID and class details"
// @Success 201 {object} dto.ClassDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (ctrl *TeacherController) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateClass: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	class, err := ctrl.classService.CreateClass(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// GetClasses godoc
// @Summary List the teacher's classes
// @Tags Teacher - Classes
// @Produce json
// @Param teacher_id query string true "Teacher ID"
// @Success 200 {array} dto.ClassDTO
// @Failure 400 {object} dto.ErrorResponse "Missing teacher_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (ctrl *TeacherController) GetClasses(c *gin.Context) {
	teacherID := c.Query("teacher_id")
	if teacherID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "teacher_id query parameter is required"})
		return
	}

	classes, err := ctrl.classService.ListClasses(c.Request.Context(), teacherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetRoster godoc
// @Summary List the students enrolled in a class
// @Tags Teacher - Classes
// @Produce json
// @Param class_id path string true "Class ID"
// @Param teacher_id query string true "Teacher ID"
// @Success 200 {array} dto.StudentDTO
// @Failure 400 {object} dto.ErrorResponse "Missing teacher_id"
// @Failure 403 {object} dto.ErrorResponse "Teacher is not assigned to this class"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{class_id}/students [get]
func (ctrl *TeacherController) GetRoster(c *gin.Context) {
	teacherID := c.Query("teacher_id")
	if teacherID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "teacher_id query parameter is required"})
		return
	}

	students, err := ctrl.classService.Roster(c.Request.Context(), teacherID, c.Param("class_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// AddStudent godoc
// @Summary Enroll a student in a class by email
// @Description Looks up the student's profile by email. The student must have signed up already.
// @Tags Teacher - Classes
// @Accept json
// @Produce json
// @Param class_id path string true "Class ID"
// @Param student body dto.AddStudentRequest true "Teacher ID and student email"
// @Success 200 {object} dto.AddStudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Teacher is not assigned to this class"
// @Failure 404 {object} dto.ErrorResponse "No user with that email"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{class_id}/students [post]
func (ctrl *TeacherController) AddStudent(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddStudent: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.classService.AddStudent(c.Request.Context(), c.Param("class_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateProgressReport godoc
// @Summary Generate an AI progress report for a student
// @Description The teacher must share at least one class with the student. Dates are YYYY-MM-DD; the end date is inclusive.
// @Tags Teacher - Reports
// @Accept json
// @Produce json
// @Param report body dto.ProgressReportRequest true "Teacher, student and date range"
// @Success 200 {object} dto.ProgressReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or dates"
// @Failure 403 {object} dto.ErrorResponse "Teacher does not teach this student"
// @Failure 404 {object} dto.ErrorResponse "Student not found or not enrolled anywhere"
// @Failure 500 {object} dto.ErrorResponse "Internal server error or AI service error"
// @Router /reports/progress [post]
func (ctrl *TeacherController) GenerateProgressReport(c *gin.Context) {
	var req dto.ProgressReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateProgressReport: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	report, err := ctrl.reportService.GenerateProgressReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReviewSubmission godoc
// @Summary Record a teacher's review of a writing submission
// @Description Stores the teacher's grade and notes and moves the submission to teacher_reviewed.
// @Tags Teacher - Writing
// @Accept json
// @Produce json
// @Param submission_id path string true "Submission ID"
// @Param review body dto.ReviewSubmissionRequest true "Teacher grade (0-100) and optional notes"
// @Success 200 {object} dto.WritingSubmissionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /writing/submissions/{submission_id}/review [post]
func (ctrl *TeacherController) ReviewSubmission(c *gin.Context) {
	var req dto.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ReviewSubmission: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sub, err := ctrl.writingService.Review(c.Request.Context(), c.Param("submission_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
