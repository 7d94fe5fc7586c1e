package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymprogress/internal/progress"
)

type progressService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*progress.Summary, error)
	Streak(ctx context.Context, userID uuid.UUID) (int, error)
	XP(ctx context.Context, userID uuid.UUID) (*progress.XPResult, error)
	Achievements(ctx context.Context, userID uuid.UUID) (*progress.AchievementsResult, error)
	Evaluate(ctx context.Context, records []progress.WorkoutSetRecord) *progress.Summary
}

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

// UserInput is the input of the per user tools.
type UserInput struct {
	UserID string `json:"user_id" jsonschema:"The user id (UUID)"`
}

// EvaluateInput is the input for evaluate_workout_sets.
type EvaluateInput struct {
	Records []progress.WorkoutSetRecord `json:"records" jsonschema:"The workout sets to evaluate"`
}

type streakOutput struct {
	UserID string `json:"userId"`
	Streak int    `json:"streak"`
}

func (h *Handler) GetProgressSummaryTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		summary, err := h.service.Summary(ctx, userID)
		if err != nil {
			return errorResult("Error fetching progress summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

func (h *Handler) GetStreakTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		streak, err := h.service.Streak(ctx, userID)
		if err != nil {
			return errorResult("Error fetching streak: " + err.Error()), nil, nil
		}
		return jsonResult(streakOutput{UserID: userID.String(), Streak: streak}), nil, nil
	}
}

func (h *Handler) GetXPTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		xp, err := h.service.XP(ctx, userID)
		if err != nil {
			return errorResult("Error fetching xp: " + err.Error()), nil, nil
		}
		return jsonResult(xp), nil, nil
	}
}

func (h *Handler) GetAchievementsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return errorResult("Invalid user_id: use a UUID"), nil, nil
		}
		achievements, err := h.service.Achievements(ctx, userID)
		if err != nil {
			return errorResult("Error fetching achievements: " + err.Error()), nil, nil
		}
		return jsonResult(achievements), nil, nil
	}
}

func (h *Handler) GetLevelsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(progress.Levels()), nil, nil
	}
}

func (h *Handler) EvaluateWorkoutSetsTool() func(context.Context, *mcp.CallToolRequest, EvaluateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in EvaluateInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Evaluate(ctx, in.Records)), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}
