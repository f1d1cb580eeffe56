package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stressbuster/stressbuster-api/chatbot"
	"github.com/stressbuster/stressbuster-api/models"
)

func appendOK(a *testApp) {
	a.chat.On("Append", anyCtx, mock.Anything).Return(func(_ context.Context, m models.ChatMessage) *models.ChatMessage {
		return &m
	}, nil)
}

func TestChatbot_Message(t *testing.T) {
	a := newTestApp(t)
	var saved []models.ChatMessage
	a.chat.On("Append", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(models.ChatMessage))
	}).Return(&models.ChatMessage{}, nil)

	response := a.executeRequest(newRequest("POST", "/api/chatbot/message",
		map[string]string{"message": "I feel anxious and can't sleep", "sessionId": "s1"}, userToken(t, "u1")))

	checkResponseCode(t, http.StatusOK, response.Code)
	var reply chatbot.Reply
	require.NoError(t, json.Unmarshal(decode(t, response).Data, &reply))
	assert.Equal(t, chatbot.IntentAnxiety, reply.Intent)
	assert.Equal(t, chatbot.SentimentNegative, reply.Sentiment)

	require.Len(t, saved, 2)
	assert.Equal(t, models.SenderUser, saved[0].Sender)
	require.NotNil(t, saved[0].UserID)
	assert.Equal(t, "u1", *saved[0].UserID)
	assert.Equal(t, models.SenderBot, saved[1].Sender)
	assert.Equal(t, reply.Message, saved[1].Message)
}

func TestChatbot_MessageAnonymous(t *testing.T) {
	a := newTestApp(t)
	a.chat.On("Append", anyCtx, mock.MatchedBy(func(m models.ChatMessage) bool { return m.UserID == nil })).
		Return(&models.ChatMessage{}, nil).Twice()

	response := a.executeRequest(newRequest("POST", "/api/chatbot/message",
		map[string]string{"message": "hello", "sessionId": "s1"}, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestChatbot_MessageRequiresSession(t *testing.T) {
	a := newTestApp(t)

	response := a.executeRequest(newRequest("POST", "/api/chatbot/message", map[string]string{"message": "hello"}, ""))

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Equal(t, "Message and sessionId are required", decode(t, response).Message)
	a.chat.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestChatbot_Conversation(t *testing.T) {
	a := newTestApp(t)
	a.chat.On("ListBySession", anyCtx, "s1").Return([]models.ChatMessage{
		{ID: "m1", SessionID: "s1", Message: "hello", Sender: models.SenderUser},
		{ID: "m2", SessionID: "s1", Message: "hi", Sender: models.SenderBot},
	}, nil)

	response := a.executeRequest(newRequest("GET", "/api/chatbot/conversation/s1", nil, ""))

	checkResponseCode(t, http.StatusOK, response.Code)
	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(decode(t, response).Data, &messages))
	assert.Len(t, messages, 2)
}

func TestChatbot_WebSocket(t *testing.T) {
	a := newTestApp(t)
	appendOK(a)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/chatbot/ws?sessionId=s1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var greeting ChatFrame
	require.NoError(t, conn.ReadJSON(&greeting))
	assert.Equal(t, FrameGreeting, greeting.Type)
	assert.Equal(t, "s1", greeting.SessionID)
	assert.Equal(t, chatbot.Greeting, greeting.Message)

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "I want to hurt myself"}))
	var reply ChatFrame
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, FrameReply, reply.Type)
	require.NotNil(t, reply.Data)
	assert.Equal(t, chatbot.IntentEmergency, reply.Data.Intent)

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "   "}))
	var failed ChatFrame
	require.NoError(t, conn.ReadJSON(&failed))
	assert.Equal(t, FrameError, failed.Type)
	assert.Equal(t, "Message and sessionId are required", failed.Message)
}

func TestChatbot_WebSocketNewSession(t *testing.T) {
	a := newTestApp(t)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/api/chatbot/ws", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	var greeting ChatFrame
	require.NoError(t, conn.ReadJSON(&greeting))
	assert.Len(t, greeting.SessionID, 36)
}
