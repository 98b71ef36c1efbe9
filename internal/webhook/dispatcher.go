package webhook

import (
	"context"

	"github.com/ross-rotordynamics/ross-bott/internal/providers"
)

// HandlerFunc processes one parsed webhook event. The payload is the
// go-github event struct for the delivery's event type.
type HandlerFunc func(ctx context.Context, payload any) error

// Dispatcher routes verified webhook events to the handler registered for
// (event type, action). Unmatched events are accepted and dropped. Handler
// failures are logged and counted but never surfaced to the webhook caller;
// GitHub would only retry the delivery, not fix the handler.
type Dispatcher struct {
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	handlers map[string]HandlerFunc
}

func NewDispatcher(logger providers.Logger, metrics providers.MetricsProviderInterface, greeter *IssueGreeter) *Dispatcher {
	d := &Dispatcher{
		logger:   logger,
		metrics:  metrics,
		handlers: make(map[string]HandlerFunc),
	}
	d.Register("issues", "opened", greeter.Handle)
	return d
}

func handlerKey(event, action string) string {
	return event + "/" + action
}

func (d *Dispatcher) Register(event, action string, h HandlerFunc) {
	d.handlers[handlerKey(event, action)] = h
}

// Dispatch runs the handler registered for the event. The returned error is
// the handler's own; callers decide whether it matters (the HTTP controller
// does not, the tests do).
func (d *Dispatcher) Dispatch(ctx context.Context, event string, payload any) error {
	action := ""
	if a, ok := payload.(interface{ GetAction() string }); ok {
		action = a.GetAction()
	}
	d.metrics.IncWebhookEvents(event, action)

	h, ok := d.handlers[handlerKey(event, action)]
	if !ok {
		d.logger.Debugf(providers.TypeHook, "No handler for %s/%s, event dropped", event, action)
		return nil
	}

	if err := h(ctx, payload); err != nil {
		d.logger.Errorf(providers.TypeHook, "Handler for %s/%s failed: %s", event, action, err)
		d.metrics.IncHandlerErrors(event, action)
		return err
	}
	d.logger.Infof(providers.TypeHook, "Handled %s/%s", event, action)
	return nil
}
