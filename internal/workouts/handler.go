package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymprogress/internal/progress"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type setsRepo interface {
	Add(ctx context.Context, userID uuid.UUID, set progress.WorkoutSetRecord) (int64, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]progress.WorkoutSetRecord, error)
}

type AddSetResponse struct {
	ID int64 `json:"id"`
}

type ListSetsResponse struct {
	Sets  []progress.WorkoutSetRecord `json:"sets"`
	Total int                         `json:"total"`
}

type Handler struct {
	repo setsRepo
}

func NewHandler(repo setsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var set progress.WorkoutSetRecord
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := handler.repo.Add(ctx, userID, set)
	if err != nil {
		if errors.Is(err, ErrInvalidSet) || errors.Is(err, ErrUnknownExercise) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrDuplicateSet) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Errorf("add workout set for %s: %s", userID, err)
		http.Error(w, "failed to add workout set", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddSetResponse{ID: id})
	if err != nil {
		log.Errorf("marshal add set response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	sets, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list workout sets for %s: %s", userID, err)
		http.Error(w, "failed to list workout sets", http.StatusInternalServerError)
		return
	}
	if sets == nil {
		sets = []progress.WorkoutSetRecord{}
	}

	respJson, err := json.Marshal(ListSetsResponse{Sets: sets, Total: len(sets)})
	if err != nil {
		log.Errorf("marshal list sets response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
