package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "gymprogress"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server exposing a user's streak, XP, level and achievements,
// plus the static level ladder. Mounted at /mcp by the backend and served over stdio
// by cmd/progress_mcp.
func NewServer(service progressService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_summary",
		Description: "Returns the full gamified progress of a user: current streak, XP total with level and breakdown, achievements with progress, and aggregate stats (sets, workout days, max weight, volume, personal bests). Arg: user_id (UUID).",
	}, h.GetProgressSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streak",
		Description: "Returns the current workout streak of a user: the number of workout days in the latest run where consecutive workouts are at most a few days apart. Arg: user_id (UUID).",
	}, h.GetStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_xp",
		Description: "Returns the XP total of a user, the current and next level, progress to the next level in percent, and the XP breakdown per source (sets, workout days, personal records, streak bonus, heavy lifts). Arg: user_id (UUID).",
	}, h.GetXPTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_achievements",
		Description: "Returns all achievements with unlock state and progress towards their target for a user. Arg: user_id (UUID).",
	}, h.GetAchievementsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_levels",
		Description: "Returns the level ladder: level number, title, icon and the minimum XP needed for each level.",
	}, h.GetLevelsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "evaluate_workout_sets",
		Description: "Computes streak, XP, level and achievements for the given workout sets, without reading any stored history. Arg: records (list of sets with workoutDate YYYY-MM-DD, exerciseName, setNumber, weightKg, reps).",
	}, h.EvaluateWorkoutSetsTool())

	return s
}
