package ports

import "context"

type EventPublisher interface {
	PublishUploaded(ctx context.Context, videoID, filename string) error
}
