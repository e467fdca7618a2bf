package ports

import (
	"context"
	"io"

	"video-metadata-service/internal/core/domain"
)

// VideoUseCase is the Inbound Port
type VideoUseCase interface {
	Upload(ctx context.Context, title, description, filename string, file io.Reader) (string, error)
	Get(ctx context.Context, id string) (*domain.VideoRecord, error)
	List(ctx context.Context, query domain.ListQuery) (domain.ListResult, error)
	Delete(ctx context.Context, id string) error
	GroupByHour(ctx context.Context) (map[string][]domain.VideoRecord, error)
}

// VideoRepository is the Outbound Port for record storage. GetByID and
// Delete return domain.ErrNotFound for unknown ids; List returns a
// snapshot in insertion order.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.VideoRecord) error
	GetByID(ctx context.Context, id string) (*domain.VideoRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.VideoRecord, error)
}

// Storage is the Outbound Port for file operations
type Storage interface {
	SaveUpload(filename string, data io.Reader) (path string, size int64, err error)
	DeleteFile(path string) error
}

// MetadataProbe is the Outbound Port for media inspection. Duration
// reports the length of the file at path in seconds.
type MetadataProbe interface {
	Duration(ctx context.Context, path string) (float64, error)
}
