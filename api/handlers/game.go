package handlers

import (
	"net/http"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/models"
)

const (
	defaultRecentSessions = 10
	maxRecentSessions     = 100
	mySessionsLimit       = 20
)

// Game exists for handling stress buster game session requests
type Game struct {
	Base
	DB databases.GameDatabase
}

type gameSessionRequest struct {
	GameType          string `json:"gameType"`
	DurationSeconds   int    `json:"durationSeconds"`
	Score             int    `json:"score"`
	Completed         bool   `json:"completed"`
	StressLevelBefore *int   `json:"stressLevelBefore"`
	StressLevelAfter  *int   `json:"stressLevelAfter"`
}

func validStressLevel(l *int) bool {
	return l == nil || (*l >= 1 && *l <= 10)
}

func (req gameSessionRequest) validate() error {
	if req.GameType == "" {
		return api.BadRequest("Game type is required")
	}
	var fe fieldErrors
	fe.check(models.ValidGameType(req.GameType), "gameType", "Unknown game type")
	fe.check(req.DurationSeconds >= 0, "durationSeconds", "Duration cannot be negative")
	fe.check(validStressLevel(req.StressLevelBefore), "stressLevelBefore", "Stress level must be between 1 and 10")
	fe.check(validStressLevel(req.StressLevelAfter), "stressLevelAfter", "Stress level must be between 1 and 10")
	return fe.err()
}

// GameSessionResponse is returned for a saved session
type GameSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// SaveSessionHandler records a finished game session
func (g Game) SaveSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req gameSessionRequest
	if err := decodeBody(r, &req); err != nil {
		g.Render.Error(w, r, err)
		return
	}
	if err := req.validate(); err != nil {
		g.Render.Error(w, r, err)
		return
	}

	ctx, cancel := g.queryContext(r)
	defer cancel()

	session, err := g.DB.InsertOne(ctx, models.GameSession{
		UserID:            userIDFrom(r),
		GameType:          req.GameType,
		DurationSeconds:   req.DurationSeconds,
		Score:             req.Score,
		Completed:         req.Completed,
		StressLevelBefore: req.StressLevelBefore,
		StressLevelAfter:  req.StressLevelAfter,
	})
	if err != nil {
		g.Render.Error(w, r, err)
		return
	}
	g.Render.Success(w, http.StatusCreated, "Game session saved successfully", GameSessionResponse{SessionID: session.ID})
}

// RecentSessionsHandler lists the latest sessions of all players
func (g Game) RecentSessionsHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultRecentSessions)
	if limit > maxRecentSessions {
		limit = maxRecentSessions
	}

	ctx, cancel := g.queryContext(r)
	defer cancel()

	sessions, err := g.DB.ListRecent(ctx, limit)
	if err != nil {
		g.Render.Error(w, r, err)
		return
	}
	g.Render.Success(w, http.StatusOK, "Game sessions retrieved successfully", sessions)
}

// MySessionsHandler lists the latest sessions of the authenticated user
func (g Game) MySessionsHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := api.IdentityFrom(r.Context())

	ctx, cancel := g.queryContext(r)
	defer cancel()

	sessions, err := g.DB.ListByUser(ctx, id.UserID, mySessionsLimit)
	if err != nil {
		g.Render.Error(w, r, err)
		return
	}
	g.Render.Success(w, http.StatusOK, "Game sessions retrieved successfully", sessions)
}
