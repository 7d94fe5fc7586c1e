package progress

// XPLevel is one tier of the level ladder.
type XPLevel struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	MinXP int    `json:"minXp"`
}

// keep in sync with the level ladder shown by the app
var levels = [...]XPLevel{
	{Level: 1, Title: "Rookie", Icon: "🌱", MinXP: 0},
	{Level: 2, Title: "Beginner", Icon: "💪", MinXP: 500},
	{Level: 3, Title: "Regular", Icon: "🏃", MinXP: 1500},
	{Level: 4, Title: "Dedicated", Icon: "🔥", MinXP: 3500},
	{Level: 5, Title: "Athlete", Icon: "⚡", MinXP: 7000},
	{Level: 6, Title: "Warrior", Icon: "⚔️", MinXP: 12000},
	{Level: 7, Title: "Champion", Icon: "🏆", MinXP: 20000},
	{Level: 8, Title: "Master", Icon: "🥇", MinXP: 32000},
	{Level: 9, Title: "Titan", Icon: "🦾", MinXP: 50000},
	{Level: 10, Title: "Legend", Icon: "👑", MinXP: 80000},
}

// Levels returns a copy of the level ladder, lowest level first.
func Levels() []XPLevel {
	out := make([]XPLevel, len(levels))
	copy(out, levels[:])
	return out
}

// MaxLevel is the highest reachable level.
func MaxLevel() XPLevel {
	return levels[len(levels)-1]
}

// LevelFor returns the highest level whose MinXP is not above totalXP.
// Negative XP resolves to the first level.
func LevelFor(totalXP int) XPLevel {
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i].MinXP <= totalXP {
			return levels[i]
		}
	}
	return levels[0]
}

// nextLevel returns the level right after lvl, or false if lvl is the top one.
func nextLevel(lvl XPLevel) (XPLevel, bool) {
	for i := range levels {
		if levels[i].Level == lvl.Level && i+1 < len(levels) {
			return levels[i+1], true
		}
	}
	return XPLevel{}, false
}
