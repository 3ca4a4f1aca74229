package publishers

import "context"

// Publisher sends refresh events to a downstream sink (HTTP, SQS, SNS,
// GCP Pub/Sub).
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}
