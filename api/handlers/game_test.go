package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/models"
)

func TestGame_SaveSession(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		userID *string
	}{
		{"anonymous player", "", nil},
		{"signed in player", "u1", strPtr("u1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			a.games.On("InsertOne", anyCtx, mock.MatchedBy(func(g models.GameSession) bool {
				return assert.ObjectsAreEqual(tt.userID, g.UserID) && g.GameType == models.GameBreathing &&
					*g.StressLevelBefore == 8 && *g.StressLevelAfter == 4
			})).Return(&models.GameSession{ID: "g1"}, nil)

			token := ""
			if tt.token != "" {
				token = userToken(t, tt.token)
			}
			body := map[string]interface{}{
				"gameType": "breathing", "durationSeconds": 120, "score": 10, "completed": true,
				"stressLevelBefore": 8, "stressLevelAfter": 4,
			}
			response := a.executeRequest(newRequest("POST", "/api/games/sessions", body, token))

			checkResponseCode(t, http.StatusCreated, response.Code)
			var saved GameSessionResponse
			require.NoError(t, json.Unmarshal(decode(t, response).Data, &saved))
			assert.Equal(t, "g1", saved.SessionID)
		})
	}
}

func TestGame_SaveSessionValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]interface{}
		message string
		fields  int
	}{
		{"missing game type", map[string]interface{}{"durationSeconds": 10}, "Game type is required", 0},
		{"unknown game type", map[string]interface{}{"gameType": "chess"}, "Validation failed", 1},
		{"out of range stress", map[string]interface{}{"gameType": "calm_timer", "stressLevelBefore": 0, "stressLevelAfter": 11, "durationSeconds": -5}, "Validation failed", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)

			response := a.executeRequest(newRequest("POST", "/api/games/sessions", tt.body, ""))

			checkResponseCode(t, http.StatusBadRequest, response.Code)
			e := decode(t, response)
			assert.Equal(t, tt.message, e.Message)
			assert.Len(t, e.Errors, tt.fields)
			a.games.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
		})
	}
}

func TestGame_RecentSessions(t *testing.T) {
	a := newTestApp(t)
	a.games.On("ListRecent", anyCtx, int64(100)).Return([]models.GameSession{{ID: "g1"}}, nil)

	response := a.executeRequest(newRequest("GET", "/api/games/sessions?limit=1000", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestGame_MySessions(t *testing.T) {
	a := newTestApp(t)
	a.games.On("ListByUser", anyCtx, "u1", int64(mySessionsLimit)).Return([]models.GameSession{{ID: "g1"}}, nil)

	response := a.executeRequest(newRequest("GET", "/api/games/sessions/my", nil, userToken(t, "u1")))

	checkResponseCode(t, http.StatusOK, response.Code)
}
