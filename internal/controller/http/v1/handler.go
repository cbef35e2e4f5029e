package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kurochkinivan/parquet_loader/internal/domain"
	"github.com/kurochkinivan/parquet_loader/internal/pipeline"
)

type RunsHandler struct {
	runsRepository     RunsRepository
	outcomesRepository OutcomesRepository
	runRequester       RunRequester
}

type RunsRepository interface {
	Runs(ctx context.Context, limit, offset uint64) ([]*domain.Run, int, error)
	RunByID(ctx context.Context, id uuid.UUID) (*domain.Run, error)
}

type OutcomesRepository interface {
	OutcomesByRun(ctx context.Context, runID uuid.UUID) ([]*domain.Outcome, error)
}

type RunRequester interface {
	Request() (uuid.UUID, error)
}

func NewRunsHandler(
	runsRepository RunsRepository,
	outcomesRepository OutcomesRepository,
	runRequester RunRequester,
) *RunsHandler {
	return &RunsHandler{
		runsRepository:     runsRepository,
		outcomesRepository: outcomesRepository,
		runRequester:       runRequester,
	}
}

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

type GetRunsResponse struct {
	Runs       []*domain.Run `json:"runs"`
	Pagination Pagination    `json:"pagination"`
}

type GetRunResponse struct {
	Run      *domain.Run       `json:"run"`
	Outcomes []*domain.Outcome `json:"outcomes"`
}

type TriggerRunResponse struct {
	RunID uuid.UUID `json:"run_id"`
}

func (h *RunsHandler) GetRuns(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	runs, total, err := h.runsRepository.Runs(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetRunsResponse{
		Runs: runs,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

func (h *RunsHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(chi.URLParam(r, "run_id"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}

	run, err := h.runsRepository.RunByID(r.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outcomes, err := h.outcomesRepository.OutcomesByRun(r.Context(), runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetRunResponse{
		Run:      run,
		Outcomes: outcomes,
	})
}

// TriggerRun starts a run in the background and answers before it finishes.
func (h *RunsHandler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	runID, err := h.runRequester.Request()
	if err != nil {
		if errors.Is(err, pipeline.ErrRunInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, TriggerRunResponse{RunID: runID})
}

func (h *RunsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
