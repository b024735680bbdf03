package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Furquan712/geo-survey/pkg/apihelpers/middlewares"
	"github.com/Furquan712/geo-survey/pkg/user-management/pwhash"
	userTypes "github.com/Furquan712/geo-survey/pkg/user-management/types"
	umUtils "github.com/Furquan712/geo-survey/pkg/user-management/utils"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddAgentManagementAPI(rg *gin.RouterGroup) {
	agentsGroup := rg.Group("/agents")
	agentsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	agentsGroup.Use(mw.IsAdminUser())
	{
		agentsGroup.GET("", h.getAgents)
		agentsGroup.POST("", mw.RequirePayload(), h.createAgent)
	}
}

type CreateAgentReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNo  string `json:"phoneNo"`
}

func (h *HttpEndpoints) createAgent(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	var req CreateAgentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)
	if !umUtils.CheckEmailFormat(req.Email) {
		slog.Error("invalid email format", slog.String("email", req.Email))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email format"})
		return
	}
	if !umUtils.CheckPasswordFormat(req.Password) {
		slog.Error("invalid password format")
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too weak"})
		return
	}

	if _, err := h.userDBConn.GetUserByEmail(req.Email); err == nil {
		slog.Warn("agent creation attempt with existing email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	password, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	newAgent := userTypes.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  password,
		Role:      userTypes.USER_ROLE_AGENT,
		AdminID:   token.Subject,
		PhoneNo:   req.PhoneNo,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	agent, err := h.userDBConn.CreateUser(&newAgent)
	if err != nil {
		slog.Error("failed to create agent", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create agent"})
		return
	}

	slog.Info("agent account created", slog.String("agentID", agent.ID.Hex()), slog.String("createdBy", token.Subject))

	go h.sendWelcomeEmail(agent.Email, agent.Name, token.Name)

	c.JSON(http.StatusCreated, gin.H{"message": "agent created"})
}

func (h *HttpEndpoints) getAgents(c *gin.Context) {
	token, ok := mw.GetValidatedUserClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no validated token found"})
		return
	}

	agents, err := h.userDBConn.GetAgentsByAdminID(token.Subject)
	if err != nil {
		slog.Error("failed to fetch agents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch agents"})
		return
	}

	agentInfos := make([]gin.H, 0, len(agents))
	for _, agent := range agents {
		agentInfos = append(agentInfos, gin.H{
			"id":    agent.ID.Hex(),
			"name":  agent.Name,
			"email": agent.Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"agents": agentInfos})
}
