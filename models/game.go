package models

import "time"

// Game types
const (
	GameBreathing    = "breathing"
	GameTapToRelax   = "tap_to_relax"
	GameMemoryPuzzle = "memory_puzzle"
	GameCalmTimer    = "calm_timer"
)

// ValidGameType reports whether t is a known game type
func ValidGameType(t string) bool {
	switch t {
	case GameBreathing, GameTapToRelax, GameMemoryPuzzle, GameCalmTimer:
		return true
	}
	return false
}

// GameSession holds the structure for the game_sessions collection
type GameSession struct {
	ID                string    `json:"id" bson:"_id"`
	UserID            *string   `json:"user_id" bson:"userId"`
	GameType          string    `json:"game_type" bson:"gameType"`
	DurationSeconds   int       `json:"duration_seconds" bson:"durationSeconds"`
	Score             int       `json:"score" bson:"score"`
	Completed         bool      `json:"completed" bson:"completed"`
	StressLevelBefore *int      `json:"stress_level_before,omitempty" bson:"stressLevelBefore,omitempty"`
	StressLevelAfter  *int      `json:"stress_level_after,omitempty" bson:"stressLevelAfter,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"createdAt"`
}
