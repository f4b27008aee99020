package pubsub

import (
	"encoding/json"
	"strconv"

	"tablescout/internal/domain/service"

	"github.com/pkg/errors"
)

// claimEventType is the event_type attribute of claim events
const claimEventType = "place.claim.updated"

// claimMessage is a claim event ready for either transport.
type claimMessage struct {
	data       []byte
	attributes map[string]string
}

// newClaimMessage encodes the event. Attributes let subscribers filter
// without decoding the payload.
func newClaimMessage(event *service.ClaimEvent) (*claimMessage, error) {
	if event == nil || event.PlaceID == "" {
		return nil, errors.New("claim event without place id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": claimEventType,
		"event_id":   event.EventID,
		"place_id":   event.PlaceID,
		"removed":    strconv.FormatBool(event.Removed),
	}
	if event.ClaimedBy != "" {
		attributes["claimed_by"] = event.ClaimedBy
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &claimMessage{data: data, attributes: attributes}, nil
}
