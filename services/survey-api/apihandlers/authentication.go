package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/Furquan712/geo-survey/pkg/apihelpers/middlewares"
	jwthandling "github.com/Furquan712/geo-survey/pkg/jwt-handling"
	"github.com/Furquan712/geo-survey/pkg/user-management/pwhash"
	userTypes "github.com/Furquan712/geo-survey/pkg/user-management/types"
	umUtils "github.com/Furquan712/geo-survey/pkg/user-management/utils"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signup", mw.RequirePayload(), h.signupWithEmail)
		authGroup.POST("/login", mw.RequirePayload(), h.loginWithEmail)
	}
}

type SignupWithEmailReq struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	PhoneNo          string `json:"phoneNo"`
	OrganisationName string `json:"organisationName"`
	OrganisationType string `json:"organisationType"`
}

func (h *HttpEndpoints) signupWithEmail(c *gin.Context) {
	var req SignupWithEmailReq
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
		slog.Warn("signup attempt with existing email", slog.String("email", umUtils.BlurEmailAddress(req.Email)))
		randomWait(1, 5)
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	password, err := pwhash.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	newUser := userTypes.User{
		Name:             req.Name,
		Email:            req.Email,
		Password:         password,
		Role:             userTypes.USER_ROLE_ADMIN,
		PhoneNo:          req.PhoneNo,
		OrganisationName: req.OrganisationName,
		OrganisationType: req.OrganisationType,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	user, err := h.userDBConn.CreateUser(&newUser)
	if err != nil {
		slog.Error("failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	slog.Info("admin account created", slog.String("subject", user.ID.Hex()))

	c.JSON(http.StatusCreated, gin.H{"message": "account created"})
}

type LoginWithEmailReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *HttpEndpoints) loginWithEmail(c *gin.Context) {
	var req LoginWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	req.Email = umUtils.SanitizeEmail(req.Email)

	user, err := h.userDBConn.GetUserByEmail(req.Email)
	if err != nil {
		slog.Warn("login attempt with wrong email address", slog.String("email", umUtils.BlurEmailAddress(req.Email)), slog.String("error", err.Error()))
		randomWait(1, 5)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	match, err := pwhash.ComparePasswordWithHash(user.Password, req.Password)
	if err != nil || !match {
		if err == nil {
			err = errors.New("passwords do not match")
		}
		slog.Warn("login attempt with wrong password", slog.String("email", umUtils.BlurEmailAddress(req.Email)), slog.String("error", err.Error()))
		randomWait(1, 5)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := jwthandling.GenerateNewUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		user.Role,
		user.Name,
		user.Email,
		user.AdminID,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.userDBConn.UpdateUserTimestamp(user.ID.Hex()); err != nil {
		slog.Error("failed to update user timestamp", slog.String("error", err.Error()))
	}

	slog.Info("login successful", slog.String("subject", user.ID.Hex()), slog.String("role", user.Role))

	// only the documented account infos, never the stored user document
	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken": token,
			"expiresIn":   h.tokenExpiresIn.Seconds(),
		},
		"user": gin.H{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
