package controllers

import (
	"net/http"

	"github.com/google/go-github/v74/github"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
	"github.com/ross-rotordynamics/ross-bott/internal/webhook"
)

const maxWebhookBodySize = 1 << 20 // 1 MB

// WebhookController receives GitHub webhook deliveries on POST /.
// Flow per request: verify the HMAC signature against the shared secret,
// reject on mismatch, otherwise parse and dispatch. Once verification
// passes the response is always 200, whatever the handler does.
type WebhookController struct {
	config     *structures.Config
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	dispatcher *webhook.Dispatcher
}

func NewWebhookController(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, dispatcher *webhook.Dispatcher) *WebhookController {
	return &WebhookController{
		config:     config,
		logger:     logger,
		metrics:    metrics,
		dispatcher: dispatcher,
	}
}

func (wc *WebhookController) HandleEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodySize)

	payload, err := github.ValidatePayload(r, []byte(wc.config.Repo.WebhookSecret))
	if err != nil {
		wc.logger.Warnf(providers.TypeHook, "Rejected webhook delivery: %s", err)
		wc.metrics.IncWebhookRejected()
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		// Verified but unparseable; acknowledge so GitHub does not retry.
		wc.logger.Warnf(providers.TypeHook, "Unparseable %s payload: %s", eventType, err)
		w.WriteHeader(http.StatusOK)
		return
	}

	_ = wc.dispatcher.Dispatch(r.Context(), eventType, event)
	w.WriteHeader(http.StatusOK)
}
