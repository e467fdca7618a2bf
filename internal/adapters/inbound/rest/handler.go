package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"video-metadata-service/internal/core/domain"
	"video-metadata-service/internal/core/ports"
)

const maxUploadMemory = 32 << 20 // 32MB multipart memory limit

// Handler exposes the video use cases over HTTP.
type Handler struct {
	videos ports.VideoUseCase
}

func NewHandler(videos ports.VideoUseCase) *Handler {
	return &Handler{videos: videos}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/videos/upload", h.handleUpload)
	mux.HandleFunc("GET /api/videos/grouped", h.handleGrouped)
	mux.HandleFunc("GET /api/videos/{id}", h.handleGet)
	mux.HandleFunc("GET /api/videos", h.handleList)
	mux.HandleFunc("DELETE /api/videos/{id}", h.handleDelete)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")

	// A missing file field is passed through as a nil reader; the
	// service reports it as a validation failure.
	var upload io.Reader
	var filename string
	if file, header, err := r.FormFile("video"); err == nil {
		defer file.Close()
		upload = file
		filename = header.Filename
	}

	id, err := h.videos.Upload(r.Context(), title, description, filename, upload)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	video, err := h.videos.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := domain.ListQuery{Title: params.Get("title")}
	if raw := params.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			query.Page = n
		}
	}
	if raw := params.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			query.Limit = n
		}
	}
	if raw := params.Get("uploadDate"); raw != "" {
		if t, ok := parseDateFilter(raw); ok {
			query.UploadDate = &t
		}
	}

	result, err := h.videos.List(r.Context(), query)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.videos.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.videos.GroupByHour(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// parseDateFilter accepts a plain date or a full timestamp in the
// server's time zone. Anything else is treated as "no filter".
func parseDateFilter(raw string) (time.Time, bool) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTitleRequired), errors.Is(err, domain.ErrFileRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrProbe):
		writeError(w, http.StatusInternalServerError, domain.ErrProbe.Error())
	default:
		log.Printf("❌ Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
