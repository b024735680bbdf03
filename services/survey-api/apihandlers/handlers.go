package apihandlers

import (
	"net/http"
	"time"

	surveyDB "github.com/Furquan712/geo-survey/pkg/db/survey"
	userDB "github.com/Furquan712/geo-survey/pkg/db/user"
	emailClient "github.com/Furquan712/geo-survey/pkg/messaging/email"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type HttpEndpoints struct {
	userDBConn     *userDB.UserDBService
	surveyDBConn   *surveyDB.SurveyDBService
	emailClient    *emailClient.SmtpClients
	tokenSignKey   string
	tokenExpiresIn time.Duration
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	userDBConn *userDB.UserDBService,
	surveyDBConn *surveyDB.SurveyDBService,
	emailClient *emailClient.SmtpClients,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:   tokenSignKey,
		tokenExpiresIn: tokenExpiresIn,
		userDBConn:     userDBConn,
		surveyDBConn:   surveyDBConn,
		emailClient:    emailClient,
	}
}
