package progress

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Summary bundles everything the progress screens need, computed for one "today".
type Summary struct {
	Date         string             `json:"date"`
	Streak       int                `json:"streak"`
	XP           XPResult           `json:"xp"`
	Achievements AchievementsResult `json:"achievements"`
	Stats        Stats              `json:"stats"`
}

// Engine holds the streak policy and the clock. It has no other state, and is
// safe for concurrent use.
type Engine struct {
	ToleranceDays int
	Now           func() time.Time
}

func NewEngine(toleranceDays int) *Engine {
	if toleranceDays <= 0 {
		toleranceDays = DefaultStreakToleranceDays
	}
	return &Engine{
		ToleranceDays: toleranceDays,
		Now:           time.Now,
	}
}

func (e *Engine) today() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Engine) tolerance() int {
	if e.ToleranceDays <= 0 {
		return DefaultStreakToleranceDays
	}
	return e.ToleranceDays
}

func (e *Engine) Streak(dates []string) int {
	return CurrentStreak(dates, e.today(), e.tolerance())
}

func (e *Engine) XP(records []WorkoutSetRecord) XPResult {
	return ComputeXP(records, e.today(), e.tolerance())
}

func (e *Engine) Achievements(records []WorkoutSetRecord) AchievementsResult {
	return EvaluateAchievements(records, e.today(), e.tolerance())
}

// Summary computes the stats once and derives XP and achievements from them.
func (e *Engine) Summary(records []WorkoutSetRecord) Summary {
	return e.SummaryAt(records, e.today())
}

// SummaryAt is Summary for an explicit today.
func (e *Engine) SummaryAt(records []WorkoutSetRecord, today time.Time) Summary {
	stats := ComputeStats(records, today, e.tolerance())
	return Summary{
		Date:         calendarDay(today).Format(DateLayout),
		Streak:       stats.CurrentStreak,
		XP:           xpFromStats(stats),
		Achievements: achievementsFromStats(stats),
		Stats:        stats,
	}
}

// Fingerprint identifies the input of a Summary call: the records (order
// independent), the calendar day of today and the tolerance.
func (e *Engine) Fingerprint(records []WorkoutSetRecord) (string, error) {
	return e.FingerprintAt(records, e.today())
}

// FingerprintAt is Fingerprint for an explicit today. A caller that caches
// SummaryAt results must pass the same today to both.
func (e *Engine) FingerprintAt(records []WorkoutSetRecord, today time.Time) (string, error) {
	encoded := make([]string, 0, len(records))
	for i := range records {
		recordJson, err := json.Marshal(records[i])
		if err != nil {
			return "", fmt.Errorf("marshal record %d: %w", i, err)
		}
		encoded = append(encoded, string(recordJson))
	}
	sort.Strings(encoded)

	h := sha256.New()
	for _, rec := range encoded {
		h.Write([]byte(rec))
		h.Write([]byte{'\n'})
	}
	_, _ = fmt.Fprintf(h, "%s|%d", calendarDay(today).Format(DateLayout), e.tolerance())
	return hex.EncodeToString(h.Sum(nil)), nil
}
