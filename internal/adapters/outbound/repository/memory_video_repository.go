package repository

import (
	"context"
	"sync"

	"video-metadata-service/internal/core/domain"
	"video-metadata-service/internal/core/ports"
)

// memoryVideoRepository keeps all records in process memory. A single
// slice preserves insertion order; the mutex serializes mutation so
// concurrent uploads and deletes cannot lose writes. Reads hand out
// copies, never the backing slice.
type memoryVideoRepository struct {
	mu     sync.RWMutex
	videos []domain.VideoRecord
}

func NewMemoryVideoRepository() ports.VideoRepository {
	return &memoryVideoRepository{}
}

func (r *memoryVideoRepository) Create(ctx context.Context, video *domain.VideoRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos = append(r.videos, *video)
	return nil
}

func (r *memoryVideoRepository) GetByID(ctx context.Context, id string) (*domain.VideoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.videos {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryVideoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.videos {
		if v.ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryVideoRepository) List(ctx context.Context) ([]domain.VideoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]domain.VideoRecord, len(r.videos))
	copy(snapshot, r.videos)
	return snapshot, nil
}
