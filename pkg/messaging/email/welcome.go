package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

const welcomeEmailSubject = "Your field agent account is ready"

const welcomeEmailTemplate = `<html>
<body>
<p>Hello {{.agentName}},</p>
<p>An account has been created for you{{if .organisation}} by {{.organisation}}{{end}}.</p>
<p>You can log in with your email address: <b>{{.email}}</b></p>
<p>Your administrator will share your initial password with you separately.</p>
</body>
</html>`

func ResolveTemplate(tempName string, templateDef string, contentInfos map[string]string) (content string, err error) {
	if strings.TrimSpace(templateDef) == "" {
		return "", errors.New("empty template `" + tempName + "`")
	}
	tmpl, err := template.New(tempName).Parse(templateDef)
	if err != nil {
		err = fmt.Errorf("error when parsing template %s: %v", tempName, err)
		return "", err
	}
	var tpl bytes.Buffer

	err = tmpl.Execute(&tpl, contentInfos)
	if err != nil {
		err = fmt.Errorf("error during executing template %s: %v", tempName, err)
		return "", err
	}
	return tpl.String(), nil
}

// SendWelcomeEmail notifies a newly created agent account about its login email.
func (sc *SmtpClients) SendWelcomeEmail(to string, agentName string, organisation string) error {
	content, err := ResolveTemplate("welcome-email", welcomeEmailTemplate, map[string]string{
		"agentName":    agentName,
		"organisation": organisation,
		"email":        to,
	})
	if err != nil {
		return err
	}
	return sc.SendMail([]string{to}, welcomeEmailSubject, content)
}
