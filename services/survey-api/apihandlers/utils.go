package apihandlers

import (
	"log/slog"
	"math/rand"
	"time"
)

func randomWait(minTimeSec int, maxTimeSec int) {
	time.Sleep(time.Duration(rand.Intn(maxTimeSec-minTimeSec)+minTimeSec) * time.Second)
}

func (h *HttpEndpoints) sendWelcomeEmail(to string, agentName string, organisation string) {
	if h.emailClient == nil {
		return
	}
	if err := h.emailClient.SendWelcomeEmail(to, agentName, organisation); err != nil {
		slog.Error("failed to send welcome email", slog.String("error", err.Error()))
		return
	}
	slog.Debug("welcome email sent", slog.String("email", to))
}
