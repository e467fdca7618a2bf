package services

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"video-metadata-service/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *domain.VideoRecord) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*domain.VideoRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoRecord), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) List(ctx context.Context) ([]domain.VideoRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VideoRecord), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUpload(filename string, data io.Reader) (string, int64, error) {
	args := m.Called(filename, data)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) DeleteFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

type MockMetadataProbe struct {
	mock.Mock
}

func (m *MockMetadataProbe) Duration(ctx context.Context, path string) (float64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(float64), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishUploaded(ctx context.Context, videoID, filename string) error {
	args := m.Called(ctx, videoID, filename)
	return args.Error(0)
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type sequenceIDs struct {
	n atomic.Int64
}

func (g *sequenceIDs) NewID() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}
