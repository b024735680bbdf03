package email

import (
	"strings"
	"testing"
)

func TestResolveTemplate(t *testing.T) {
	t.Run("with empty template", func(t *testing.T) {
		_, err := ResolveTemplate("test", "   ", nil)
		if err == nil {
			t.Error("should return error for empty template")
		}
	})

	t.Run("with invalid template", func(t *testing.T) {
		_, err := ResolveTemplate("test", "{{.broken", nil)
		if err == nil {
			t.Error("should return error for unparsable template")
		}
	})

	t.Run("with valid template", func(t *testing.T) {
		content, err := ResolveTemplate("test", "Hello {{.name}}!", map[string]string{"name": "Anna"})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if content != "Hello Anna!" {
			t.Errorf("unexpected content: %s", content)
		}
	})

	t.Run("welcome email template", func(t *testing.T) {
		content, err := ResolveTemplate("welcome-email", welcomeEmailTemplate, map[string]string{
			"agentName":    "Anna",
			"organisation": "Field Org",
			"email":        "anna@example.com",
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if !strings.Contains(content, "Hello Anna") ||
			!strings.Contains(content, "by Field Org") ||
			!strings.Contains(content, "anna@example.com") {
			t.Errorf("unexpected content: %s", content)
		}
	})
}
