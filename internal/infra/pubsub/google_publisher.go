package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"tablescout/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends claim events to a Cloud Pub/Sub topic.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicID   string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic, failing fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "claim topic %s", topicID)
	}

	return &googlePublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicID:   topicID,
		logger:    logger,
	}, nil
}

// PublishClaimEvent publishes and waits for the server acknowledgement.
func (p *googlePublisher) PublishClaimEvent(ctx context.Context, event *service.ClaimEvent) error {
	msg, err := newClaimMessage(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish claim event for place %s", event.PlaceID)
	}

	p.logger.Debug("Claim event published",
		slog.String("topic_id", p.topicID),
		slog.String("place_id", event.PlaceID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
