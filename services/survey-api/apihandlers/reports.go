package apihandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Furquan712/geo-survey/pkg/apihelpers/middlewares"
	"github.com/Furquan712/geo-survey/pkg/reporting"
	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddReportsAPI(rg *gin.RouterGroup) {
	reportsGroup := rg.Group("/reports")
	reportsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	reportsGroup.Use(mw.IsAdminUser())
	{
		reportsGroup.GET("/agents", h.getAgentsWithSubmissions)
		reportsGroup.GET("/surveys", h.getSurveysWithSubmissions)
		reportsGroup.GET("/submissions", h.getFilteredSubmissions)
		reportsGroup.GET("/submissions/export", h.exportSubmissionsCSV)
		reportsGroup.GET("/chart-data", h.getChartData)
	}
}

func (h *HttpEndpoints) getAgentsWithSubmissions(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	agentIDs, err := h.surveyDBConn.GetAgentIDsWithSubmissions(token.Subject)
	if err != nil {
		slog.Error("failed to fetch agent ids", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch agents"})
		return
	}

	agents, err := h.userDBConn.GetUsersByIDs(agentIDs)
	if err != nil {
		slog.Error("failed to fetch agent accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch agents"})
		return
	}

	agentInfos := make([]gin.H, 0, len(agents))
	for _, agent := range agents {
		agentInfos = append(agentInfos, gin.H{
			"agentId": agent.ID.Hex(),
			"name":    agent.Name,
			"email":   agent.Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"agents": agentInfos})
}

func (h *HttpEndpoints) getSurveysWithSubmissions(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	surveys, err := h.surveyDBConn.GetSurveysWithSubmissions(token.Subject)
	if err != nil {
		slog.Error("failed to fetch surveys with submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch surveys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

func (h *HttpEndpoints) findSubmissionsForQuery(c *gin.Context) (submissions []surveyTypes.SubmissionView, ok bool) {
	token, hasToken := mw.GetValidatedUserClaims(c)
	if !hasToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return nil, false
	}

	templateID := c.DefaultQuery("templateId", "")
	agentID := c.DefaultQuery("agentId", "")
	if templateID == "" || agentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "templateId and agentId are required"})
		return nil, false
	}

	submissions, err := h.surveyDBConn.FindSubmissions(token.Subject, templateID, agentID)
	if err != nil {
		slog.Error("failed to fetch submissions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch submissions"})
		return nil, false
	}
	return submissions, true
}

func (h *HttpEndpoints) getFilteredSubmissions(c *gin.Context) {
	submissions, ok := h.findSubmissionsForQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *HttpEndpoints) exportSubmissionsCSV(c *gin.Context) {
	submissions, ok := h.findSubmissionsForQuery(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("submissions_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv")

	if err := reporting.WriteSubmissionsCSV(c.Writer, submissions); err != nil {
		slog.Error("failed to write csv export", slog.String("error", err.Error()))
		return
	}
}

func (h *HttpEndpoints) getChartData(c *gin.Context) {
	submissions, ok := h.findSubmissionsForQuery(c)
	if !ok {
		return
	}

	chartGroups := reporting.BuildChartGroups(submissions)

	c.JSON(http.StatusOK, gin.H{"chartData": chartGroups})
}
