package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tablescout/internal/domain/constants"
	"tablescout/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	localSubscriptionName = "projects/local/subscriptions/claim-events"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to their endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher delivers claim events straight to a push endpoint, so a
// local consumer sees the same envelope as behind a real push subscription.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a publisher that POSTs push envelopes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishClaimEvent wraps the event in a push envelope and POSTs it.
func (p *localHTTPPublisher) PublishClaimEvent(ctx context.Context, event *service.ClaimEvent) error {
	msg, err := newClaimMessage(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = localSubscriptionName
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(constants.HeaderRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push claim event for place %s", event.PlaceID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	p.logger.Debug("Claim event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("place_id", event.PlaceID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
