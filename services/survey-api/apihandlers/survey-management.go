package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Furquan712/geo-survey/pkg/apihelpers/middlewares"
	surveyDB "github.com/Furquan712/geo-survey/pkg/db/survey"
	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *HttpEndpoints) AddSurveyManagementAPI(rg *gin.RouterGroup) {
	templatesGroup := rg.Group("/survey-templates")
	templatesGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	templatesGroup.Use(mw.IsAdminUser())
	{
		templatesGroup.GET("", h.getOwnSurveyTemplates)
		templatesGroup.POST("", mw.RequirePayload(), h.createSurveyTemplate)
		templatesGroup.POST("/:templateId/assign", mw.RequirePayload(), h.assignAgentsToTemplate)
	}
}

type CreateSurveyTemplateReq struct {
	Name           string                 `json:"name"`
	Questions      []surveyTypes.Question `json:"questions"`
	AssignedAgents []string               `json:"assignedAgents"`
}

// checkQuestions validates each question of a template. An empty question
// list is allowed, templates can be drafted first and filled in later.
func checkQuestions(questions []surveyTypes.Question) error {
	for _, q := range questions {
		if q.Text == "" {
			return errors.New("question text must not be empty")
		}
		if !surveyTypes.IsValidQuestionType(q.Type) {
			return errors.New("unknown question type: " + q.Type)
		}
		if surveyTypes.QuestionTypeRequiresOptions(q.Type) && len(q.Options) < 1 {
			return errors.New("question type " + q.Type + " needs options")
		}
	}
	return nil
}

func (h *HttpEndpoints) createSurveyTemplate(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	var req CreateSurveyTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		slog.Error("missing template name")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing template name"})
		return
	}
	if err := checkQuestions(req.Questions); err != nil {
		slog.Error("invalid question list", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.surveyDBConn.GetSurveyTemplateByName(req.Name); err == nil {
		slog.Warn("template name already in use", slog.String("name", req.Name))
		c.JSON(http.StatusBadRequest, gin.H{"error": "a survey with this name already exists"})
		return
	}

	assignedAgents := req.AssignedAgents
	if assignedAgents == nil {
		assignedAgents = []string{}
	}
	questions := req.Questions
	if questions == nil {
		questions = []surveyTypes.Question{}
	}

	template := surveyTypes.SurveyTemplate{
		TemplateID:     uuid.New().String(),
		Name:           req.Name,
		Questions:      questions,
		AdminID:        token.Subject,
		AssignedAgents: assignedAgents,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	created, err := h.surveyDBConn.CreateSurveyTemplate(&template)
	if err != nil {
		slog.Error("failed to create survey template", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create survey template"})
		return
	}

	slog.Info("survey template created", slog.String("templateID", created.TemplateID), slog.String("createdBy", token.Subject))

	c.JSON(http.StatusCreated, gin.H{"message": "survey template created", "template": created})
}

func (h *HttpEndpoints) getOwnSurveyTemplates(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	templates, err := h.surveyDBConn.GetSurveyTemplatesByAdminID(token.Subject)
	if err != nil {
		slog.Error("failed to fetch survey templates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch survey templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

type AssignAgentsReq struct {
	AgentIDs []string `json:"agentIds"`
}

func (h *HttpEndpoints) assignAgentsToTemplate(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	templateID := c.Param("templateId")

	var req AssignAgentsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.AgentIDs) < 1 {
		slog.Error("missing agent ids")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing agent ids"})
		return
	}

	err := h.surveyDBConn.AddAgentsToSurveyTemplate(templateID, token.Subject, req.AgentIDs)
	if err != nil {
		if errors.Is(err, surveyDB.ErrTemplateNotOwned) {
			slog.Warn("assign attempt on foreign or missing template", slog.String("templateID", templateID), slog.String("by", token.Subject))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("failed to assign agents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign agents"})
		return
	}

	slog.Info("agents assigned to survey template", slog.String("templateID", templateID), slog.Int("count", len(req.AgentIDs)))

	c.JSON(http.StatusOK, gin.H{"message": "agents assigned"})
}
