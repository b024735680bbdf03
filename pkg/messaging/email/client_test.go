package email

import (
	"sync"
	"testing"
)

func TestBuildEmail(t *testing.T) {
	sc := &SmtpClients{
		servers: SmtpServerList{
			From:    "Survey Platform <no-reply@survey.org>",
			Sender:  "no-reply@survey.org",
			ReplyTo: []string{"support@survey.org"},
		},
	}

	t.Run("with sender infos from config", func(t *testing.T) {
		e := sc.buildEmail([]string{"agent1@field.org"}, "Welcome", "<p>hello</p>")
		if len(e.To) != 1 || e.To[0] != "agent1@field.org" {
			t.Errorf("unexpected recipients: %v", e.To)
		}
		if e.From != "Survey Platform <no-reply@survey.org>" {
			t.Errorf("unexpected from: %s", e.From)
		}
		if e.Sender != "no-reply@survey.org" {
			t.Errorf("unexpected sender: %s", e.Sender)
		}
		if len(e.ReplyTo) != 1 || e.ReplyTo[0] != "support@survey.org" {
			t.Errorf("unexpected reply to: %v", e.ReplyTo)
		}
		if e.Subject != "Welcome" {
			t.Errorf("unexpected subject: %s", e.Subject)
		}
		if string(e.HTML) != "<p>hello</p>" {
			t.Errorf("unexpected content: %s", string(e.HTML))
		}
	})
}

func TestSendMailConcurrently(t *testing.T) {
	// no reachable servers configured, every send must fail with an
	// error instead of corrupting the pool state
	sc := &SmtpClients{servers: SmtpServerList{}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := sc.SendMail([]string{"agent1@field.org"}, "Welcome", "<p>hello</p>")
			if err == nil {
				t.Error("expected an error without configured servers")
			}
		}()
	}
	wg.Wait()
}
