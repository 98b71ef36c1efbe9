package controllers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ross-rotordynamics/ross-bott/internal/structures"
	"github.com/ross-rotordynamics/ross-bott/internal/testutil"
	"github.com/ross-rotordynamics/ross-bott/internal/webhook"
)

const webhookTestSecret = "hunter2"

type recordingComments struct {
	comments []string
}

func (r *recordingComments) CreateComment(_ context.Context, _ int, body string) error {
	r.comments = append(r.comments, body)
	return nil
}

func newWebhookTestController(comments *recordingComments) (*WebhookController, *testutil.MockMetrics) {
	conf := &structures.Config{
		Repo: structures.RepoConfig{WebhookSecret: webhookTestSecret},
	}
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	greeter := webhook.NewIssueGreeter(logger, comments)
	dispatcher := webhook.NewDispatcher(logger, metrics, greeter)
	return NewWebhookController(conf, logger, metrics, dispatcher), metrics
}

func signedRequest(t *testing.T, event, secret string, payload []byte) *http.Request {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func TestHandleEvent_ValidSignatureDispatches(t *testing.T) {
	comments := &recordingComments{}
	wc, metrics := newWebhookTestController(comments)

	payload := []byte(`{"action":"opened","issue":{"number":7},"sender":{"login":"alice"}}`)
	req := signedRequest(t, "issues", webhookTestSecret, payload)
	rr := httptest.NewRecorder()
	wc.HandleEvent(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, metrics.WebhookEvents)
	require.Len(t, comments.comments, 1)
	assert.Contains(t, comments.comments[0], "@alice")
}

func TestHandleEvent_BadSignatureNeverDispatches(t *testing.T) {
	comments := &recordingComments{}
	wc, metrics := newWebhookTestController(comments)

	payload := []byte(`{"action":"opened","issue":{"number":7},"sender":{"login":"alice"}}`)
	req := signedRequest(t, "issues", "wrong-secret", payload)
	rr := httptest.NewRecorder()
	wc.HandleEvent(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 1, metrics.Rejected)
	assert.Zero(t, metrics.WebhookEvents)
	assert.Empty(t, comments.comments)
}

func TestHandleEvent_MissingSignature(t *testing.T) {
	comments := &recordingComments{}
	wc, metrics := newWebhookTestController(comments)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "issues")
	rr := httptest.NewRecorder()
	wc.HandleEvent(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 1, metrics.Rejected)
}

func TestHandleEvent_UnmatchedEventStillOK(t *testing.T) {
	comments := &recordingComments{}
	wc, metrics := newWebhookTestController(comments)

	payload := []byte(`{"action":"created"}`)
	req := signedRequest(t, "star", webhookTestSecret, payload)
	rr := httptest.NewRecorder()
	wc.HandleEvent(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, metrics.WebhookEvents)
	assert.Empty(t, comments.comments)
}

func TestHandleEvent_UnparseablePayloadAcknowledged(t *testing.T) {
	comments := &recordingComments{}
	wc, _ := newWebhookTestController(comments)

	payload := []byte(`not json at all`)
	req := signedRequest(t, "issues", webhookTestSecret, payload)
	rr := httptest.NewRecorder()
	wc.HandleEvent(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, comments.comments)
}
