package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"video-metadata-service/internal/core/domain"
	"video-metadata-service/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "video_upload_duration_seconds",
		Help:    "Duration of the upload workflow in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_uploads_total",
		Help: "Total number of upload requests handled",
	}, []string{"status"})
)

type videoService struct {
	repo    ports.VideoRepository
	storage ports.Storage
	probe   ports.MetadataProbe
	events  ports.EventPublisher
	clock   ports.Clock
	ids     ports.IDGenerator
}

// NewVideoService wires the upload workflow and the read paths over the
// outbound ports. events may be nil, in which case no upload events are
// published.
func NewVideoService(r ports.VideoRepository, s ports.Storage, p ports.MetadataProbe, e ports.EventPublisher, c ports.Clock, ids ports.IDGenerator) *videoService {
	return &videoService{
		repo:    r,
		storage: s,
		probe:   p,
		events:  e,
		clock:   c,
		ids:     ids,
	}
}

// Upload validates the request, persists the file, probes it for a
// duration and inserts the resulting record. No record is stored on any
// failure path, and a file whose probe failed is removed again.
func (s *videoService) Upload(ctx context.Context, title, description, filename string, file io.Reader) (string, error) {
	start := time.Now()
	var status = "success"

	defer func() {
		uploadDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
		uploadsTotal.WithLabelValues(status).Inc()
	}()

	if strings.TrimSpace(title) == "" {
		status = "invalid"
		return "", domain.ErrTitleRequired
	}
	if file == nil {
		status = "invalid"
		return "", domain.ErrFileRequired
	}

	path, size, err := s.storage.SaveUpload(filename, file)
	if err != nil {
		status = "error"
		return "", fmt.Errorf("error saving upload: %w", err)
	}

	duration, err := s.probe.Duration(ctx, path)
	if err != nil {
		log.Printf("❌ Error probing %s: %v", path, err)
		s.storage.DeleteFile(path)
		status = "error"
		return "", fmt.Errorf("%w: %v", domain.ErrProbe, err)
	}

	video := &domain.VideoRecord{
		ID:          s.ids.NewID(),
		Title:       title,
		Description: description,
		UploadDate:  s.clock.Now(),
		FileSize:    size,
		Duration:    &duration,
		Path:        path,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.storage.DeleteFile(path)
		status = "error"
		return "", fmt.Errorf("error storing video record: %w", err)
	}

	// Publishing is best effort: the record is already committed, a
	// downstream outage must not fail the upload.
	if s.events != nil {
		if err := s.events.PublishUploaded(ctx, video.ID, filename); err != nil {
			log.Printf("⚠️ Error publishing upload event for video %s: %v", video.ID, err)
		}
	}

	return video.ID, nil
}

func (s *videoService) Get(ctx context.Context, id string) (*domain.VideoRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *videoService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List filters by title substring and upload day, then paginates.
// Malformed or missing paging values fall back to the defaults rather
// than failing the request. Total counts the filtered set before the
// page is cut.
func (s *videoService) List(ctx context.Context, query domain.ListQuery) (domain.ListResult, error) {
	page := query.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}

	videos, err := s.repo.List(ctx)
	if err != nil {
		return domain.ListResult{}, fmt.Errorf("error listing videos: %w", err)
	}

	filtered := videos
	if query.Title != "" {
		filtered = nil
		for _, v := range videos {
			if strings.Contains(v.Title, query.Title) {
				filtered = append(filtered, v)
			}
		}
	}
	if query.UploadDate != nil {
		kept := filtered
		filtered = nil
		for _, v := range kept {
			if sameDay(v.UploadDate, *query.UploadDate) {
				filtered = append(filtered, v)
			}
		}
	}

	// page and limit arrive unbounded from the query string, so the
	// window arithmetic must not multiply them blindly: only compute
	// offsets once the page is known to start inside the filtered set.
	paged := make([]domain.VideoRecord, 0)
	if n := len(filtered); n > 0 && page-1 <= (n-1)/limit {
		pageStart := (page - 1) * limit
		pageEnd := pageStart + limit
		if pageEnd > n || pageEnd < 0 {
			pageEnd = n
		}
		paged = append(paged, filtered[pageStart:pageEnd]...)
	}

	return domain.ListResult{
		Total:  len(filtered),
		Page:   page,
		Videos: paged,
	}, nil
}

// GroupByHour buckets every stored record by the local hour of its
// upload date under a "HH:00" key. Hours with no records are absent
// from the result.
func (s *videoService) GroupByHour(ctx context.Context) (map[string][]domain.VideoRecord, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing videos: %w", err)
	}

	groups := make(map[string][]domain.VideoRecord)
	for _, v := range videos {
		key := fmt.Sprintf("%02d:00", v.UploadDate.Hour())
		groups[key] = append(groups[key], v)
	}
	return groups, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
