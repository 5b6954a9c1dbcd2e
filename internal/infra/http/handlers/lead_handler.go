package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

// 10 MB is plenty for a lead list; bigger files are almost always a
// mis-export.
const maxCSVSize = 10 << 20

type LeadHandler struct {
	ImportUC    *usecase.ImportLeadsUseCase
	LeadRepo    entity.LeadRepositoryInterface
	HistoryRepo entity.ImportHistoryRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	importUC *usecase.ImportLeadsUseCase,
	leadRepo entity.LeadRepositoryInterface,
	historyRepo entity.ImportHistoryRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		ImportUC:    importUC,
		LeadRepo:    leadRepo,
		HistoryRepo: historyRepo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 uploads/min per IP
	}
}

func (h *LeadHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many uploads, slow down")
		return
	}

	fileName, data, ok := readCSVUpload(w, r)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	output, err := h.ImportUC.Preview(r.Context(), userID, campaignID, fileName, data)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many uploads, slow down")
		return
	}

	fileName, data, ok := readCSVUpload(w, r)
	if !ok {
		return
	}

	mapping, ok := readMappingField(w, r)
	if !ok {
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	output, err := h.ImportUC.Execute(r.Context(), usecase.ImportLeadsInput{
		CampaignID: campaignID,
		UserID:     userID,
		FileName:   fileName,
		Data:       data,
		Mapping:    mapping,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadsImported(output.ImportedRows)
	writeJSON(w, http.StatusCreated, output)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	leads, err := h.LeadRepo.ListByCampaign(r.Context(), userID, campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not list leads")
		return
	}
	if leads == nil {
		leads = []*entity.UploadedLead{}
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	leadID := chi.URLParam(r, "leadId")

	if err := h.LeadRepo.Delete(r.Context(), userID, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "LEAD_NOT_FOUND", "lead not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not delete lead")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) HandleImportHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	history, err := h.HistoryRepo.ListByCampaign(r.Context(), userID, campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load import history")
		return
	}
	if history == nil {
		history = []*entity.ImportHistory{}
	}

	writeJSON(w, http.StatusOK, history)
}

// readCSVUpload pulls the "file" part out of a multipart upload. Writes
// the error response itself when something is off.
func readCSVUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	if err := r.ParseMultipartForm(maxCSVSize); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "expected a multipart upload with a 'file' part")
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "'file' part is required")
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCSVSize+1))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "READ_FAILED", "could not read uploaded file")
		return "", nil, false
	}
	if len(data) > maxCSVSize {
		writeErrorResponse(w, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "csv exceeds the 10MB limit")
		return "", nil, false
	}

	return header.Filename, data, true
}

// readMappingField parses the optional "mapping" form part, a JSON object
// of column index to lead field confirmed by the user in the preview.
// Absent means infer from the header again.
func readMappingField(w http.ResponseWriter, r *http.Request) (usecase.ColumnMapping, bool) {
	raw := r.FormValue("mapping")
	if raw == "" {
		return nil, true
	}

	var spec map[string]string
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_MAPPING", "'mapping' must be a JSON object of column index to field")
		return nil, false
	}

	mapping, err := usecase.ParseColumnMapping(spec)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_MAPPING", err.Error())
		return nil, false
	}

	return mapping, true
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
