package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

// maxEvaluateBodyBytes caps the body of an evaluate request, roughly 20k sets.
const maxEvaluateBodyBytes = 4 << 20

var ErrInvalidUserID = errors.New("invalid user id")

type progressService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*Summary, error)
	Streak(ctx context.Context, userID uuid.UUID) (int, error)
	XP(ctx context.Context, userID uuid.UUID) (*XPResult, error)
	Achievements(ctx context.Context, userID uuid.UUID) (*AchievementsResult, error)
	Evaluate(ctx context.Context, records []WorkoutSetRecord) *Summary
}

type StreakResponse struct {
	UserID        string `json:"userId"`
	Streak        int    `json:"streak"`
	ToleranceDays int    `json:"toleranceDays"`
}

type EvaluateRequest struct {
	Records []WorkoutSetRecord `json:"records"`
}

type LevelsResponse struct {
	Levels []XPLevel `json:"levels"`
}

type Handler struct {
	service       progressService
	toleranceDays int
}

func NewHandler(service progressService, toleranceDays int) *Handler {
	if toleranceDays <= 0 {
		toleranceDays = DefaultStreakToleranceDays
	}
	return &Handler{
		service:       service,
		toleranceDays: toleranceDays,
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Summary(ctx, userID)
	if err != nil {
		log.Errorf("get progress summary for %s: %s", userID, err)
		http.Error(w, "failed to get progress summary", http.StatusInternalServerError)
		return
	}

	writeJSON(w, summary)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.streak")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	streak, err := handler.service.Streak(ctx, userID)
	if err != nil {
		log.Errorf("get streak for %s: %s", userID, err)
		http.Error(w, "failed to get streak", http.StatusInternalServerError)
		return
	}

	writeJSON(w, StreakResponse{
		UserID:        userID.String(),
		Streak:        streak,
		ToleranceDays: handler.toleranceDays,
	})
}

func (handler *Handler) HandleXP(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.xp")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	xp, err := handler.service.XP(ctx, userID)
	if err != nil {
		log.Errorf("get xp for %s: %s", userID, err)
		http.Error(w, "failed to get xp", http.StatusInternalServerError)
		return
	}

	writeJSON(w, xp)
}

func (handler *Handler) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.achievements")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	achievements, err := handler.service.Achievements(ctx, userID)
	if err != nil {
		log.Errorf("get achievements for %s: %s", userID, err)
		http.Error(w, "failed to get achievements", http.StatusInternalServerError)
		return
	}

	writeJSON(w, achievements)
}

// HandleEvaluate computes progress for records sent in the request body,
// without touching the stored history.
func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.evaluate")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxEvaluateBodyBytes)
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Debugf("evaluate progress: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, handler.service.Evaluate(ctx, req.Records))
}

func (handler *Handler) HandleLevels(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, LevelsResponse{Levels: Levels()})
}

func (handler *Handler) HandleAchievementCatalog(w http.ResponseWriter, _ *http.Request) {
	catalog := AchievementCatalog()
	writeJSON(w, AchievementsResult{
		Achievements: catalog,
		TotalCount:   len(catalog),
	})
}

func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return userID, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal progress response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
