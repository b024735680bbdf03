package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Furquan712/geo-survey/pkg/apihelpers/middlewares"
	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func (h *HttpEndpoints) AddSurveysAPI(rg *gin.RouterGroup) {
	surveysGroup := rg.Group("/surveys")
	surveysGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	surveysGroup.Use(mw.IsAgentUser())
	{
		surveysGroup.GET("/assigned", h.getAssignedSurveys)
		surveysGroup.POST("/submit", mw.RequirePayload(), h.submitSurvey)
		surveysGroup.GET("/submission-count", h.getSubmissionCount)
		surveysGroup.GET("/day-report", h.getDayReport)
		surveysGroup.POST("/day-report", mw.RequirePayload(), h.saveDayReport)
	}
}

func (h *HttpEndpoints) getAssignedSurveys(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	surveys, err := h.surveyDBConn.GetSurveyTemplatesAssignedToAgent(token.Subject)
	if err != nil {
		slog.Error("failed to fetch assigned surveys", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch assigned surveys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

type SubmitSurveyReq struct {
	TemplateID string                   `json:"templateId"`
	AgentID    string                   `json:"agentId"`
	FormData   map[string]interface{}   `json:"formData"`
	Location   *surveyTypes.GeoLocation `json:"location"`
	Date       *time.Time               `json:"date"`
}

func checkLocation(loc *surveyTypes.GeoLocation) error {
	if loc == nil {
		return nil
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return errors.New("latitude out of range")
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return errors.New("longitude out of range")
	}
	return nil
}

func (h *HttpEndpoints) submitSurvey(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	var req SubmitSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TemplateID == "" || req.Date == nil || len(req.FormData) < 1 {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if req.AgentID != "" && req.AgentID != token.Subject {
		slog.Warn("submission with foreign agent id", slog.String("agentID", req.AgentID), slog.String("caller", token.Subject))
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot submit for another agent"})
		return
	}
	if err := checkLocation(req.Location); err != nil {
		slog.Error("invalid location", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.surveyDBConn.GetSurveyTemplateByTemplateID(req.TemplateID)
	if err != nil {
		slog.Warn("submission for unknown template", slog.String("templateID", req.TemplateID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "survey template not found"})
		return
	}

	if !template.IsAssignedTo(token.Subject) {
		slog.Warn("submission from unassigned agent", slog.String("templateID", req.TemplateID), slog.String("agentID", token.Subject))
		c.JSON(http.StatusForbidden, gin.H{"error": "survey is not assigned to you"})
		return
	}

	submission := surveyTypes.Submission{
		AdminID:    template.AdminID,
		AgentID:    token.Subject,
		TemplateID: template.TemplateID,
		FormName:   template.Name,
		Date:       *req.Date,
		FormData:   req.FormData,
		Location:   req.Location,
		CreatedAt:  time.Now(),
	}

	saved, err := h.surveyDBConn.AddSurveySubmission(&submission)
	if err != nil {
		slog.Error("failed to save submission", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	slog.Info("survey submission saved", slog.String("templateID", template.TemplateID), slog.String("agentID", token.Subject))

	c.JSON(http.StatusCreated, gin.H{"submission": saved})
}

func (h *HttpEndpoints) getSubmissionCount(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	templateID := c.DefaultQuery("templateId", "")
	if templateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId is required"})
		return
	}

	count, err := h.surveyDBConn.CountSubmissionsForAgent(templateID, token.Subject)
	if err != nil {
		slog.Error("failed to count submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *HttpEndpoints) getDayReport(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	templateID := c.DefaultQuery("templateId", "")
	date := c.DefaultQuery("date", "")
	if templateID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId and date are required"})
		return
	}
	if !surveyTypes.CheckDayReportDateFormat(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must have the format YYYY-MM-DD"})
		return
	}

	report, err := h.surveyDBConn.GetDayReport(templateID, token.Subject, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusOK, gin.H{"report": nil})
			return
		}
		slog.Error("failed to fetch day report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch day report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

type SaveDayReportReq struct {
	TemplateID string `json:"templateId"`
	Date       string `json:"date"`
	// pointer so an empty report text still counts as present
	ReportData *string `json:"reportData"`
}

func (h *HttpEndpoints) saveDayReport(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	var req SaveDayReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.TemplateID == "" || req.Date == "" || req.ReportData == nil {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}
	if !surveyTypes.CheckDayReportDateFormat(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must have the format YYYY-MM-DD"})
		return
	}

	template, err := h.surveyDBConn.GetSurveyTemplateByTemplateID(req.TemplateID)
	if err != nil {
		slog.Warn("day report for unknown template", slog.String("templateID", req.TemplateID), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "survey template not found"})
		return
	}

	if !template.IsAssignedTo(token.Subject) {
		slog.Warn("day report from unassigned agent", slog.String("templateID", req.TemplateID), slog.String("agentID", token.Subject))
		c.JSON(http.StatusForbidden, gin.H{"error": "survey is not assigned to you"})
		return
	}

	report := surveyTypes.DayReport{
		AdminID:    template.AdminID,
		AgentID:    token.Subject,
		TemplateID: template.TemplateID,
		FormName:   template.Name,
		Date:       req.Date,
		ReportData: *req.ReportData,
	}

	if err := h.surveyDBConn.SaveDayReport(&report); err != nil {
		slog.Error("failed to save day report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save day report"})
		return
	}

	slog.Info("day report saved", slog.String("templateID", template.TemplateID), slog.String("agentID", token.Subject), slog.String("date", req.Date))

	c.JSON(http.StatusOK, gin.H{"message": "day report saved"})
}
