package apihandlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/Furquan712/geo-survey/pkg/jwt-handling"
	surveyTypes "github.com/Furquan712/geo-survey/pkg/surveys/types"
)

const testSignKey = "test-sign-key"

func newSurveysTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHTTPHandler(testSignKey, time.Minute, nil, nil, nil)
	h.AddSurveysAPI(r.Group("/v1"))

	agentToken, err := jwthandling.GenerateNewUserToken(time.Minute, "agent-1", "AGENT", "B", "b@t.com", "admin-1", testSignKey)
	if err != nil {
		t.Fatal(err)
	}
	return r, agentToken
}

func performPost(r *gin.Engine, path string, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitSurveyValidation(t *testing.T) {
	r, agentToken := newSurveysTestRouter(t)

	t.Run("with missing template id", func(t *testing.T) {
		w := performPost(r, "/v1/surveys/submit", agentToken,
			`{"date":"2024-01-05T10:00:00Z","formData":{"Status":"ok"}}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("with missing date", func(t *testing.T) {
		w := performPost(r, "/v1/surveys/submit", agentToken,
			`{"templateId":"t-1","formData":{"Status":"ok"}}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("with missing form data", func(t *testing.T) {
		w := performPost(r, "/v1/surveys/submit", agentToken,
			`{"templateId":"t-1","date":"2024-01-05T10:00:00Z"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("with a foreign agent id", func(t *testing.T) {
		w := performPost(r, "/v1/surveys/submit", agentToken,
			`{"templateId":"t-1","agentId":"agent-2","date":"2024-01-05T10:00:00Z","formData":{"Status":"ok"}}`)
		if w.Code != http.StatusForbidden {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("with an out of range location", func(t *testing.T) {
		w := performPost(r, "/v1/surveys/submit", agentToken,
			`{"templateId":"t-1","date":"2024-01-05T10:00:00Z","formData":{"Status":"ok"},"location":{"latitude":95,"longitude":10}}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestCheckLocation(t *testing.T) {
	cases := []struct {
		name    string
		loc     *surveyTypes.GeoLocation
		wantErr bool
	}{
		{"nil location", nil, false},
		{"valid location", &surveyTypes.GeoLocation{Latitude: 48.2, Longitude: 16.37}, false},
		{"boundary values", &surveyTypes.GeoLocation{Latitude: -90, Longitude: 180}, false},
		{"latitude too high", &surveyTypes.GeoLocation{Latitude: 90.01, Longitude: 0}, true},
		{"latitude too low", &surveyTypes.GeoLocation{Latitude: -90.01, Longitude: 0}, true},
		{"longitude too high", &surveyTypes.GeoLocation{Latitude: 0, Longitude: 180.01}, true},
		{"longitude too low", &surveyTypes.GeoLocation{Latitude: 0, Longitude: -180.01}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkLocation(c.loc)
			if c.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
