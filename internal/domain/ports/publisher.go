package ports

import "context"

// Publisher stores the rendered README, replacing any previous content.
type Publisher interface {
	Publish(ctx context.Context, content string) error
}
