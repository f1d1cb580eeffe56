package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/chatbot"
)

// Chatbot exists for handling chatbot requests
type Chatbot struct {
	Base
	Service *chatbot.Service
	// Origins allowed to open the websocket channel, empty allows all
	Origins []string
}

type chatMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// MessageHandler answers a single chat message
func (c Chatbot) MessageHandler(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := decodeBody(r, &req); err != nil {
		c.Render.Error(w, r, err)
		return
	}

	ctx, cancel := c.queryContext(r)
	defer cancel()

	reply, err := c.Service.Reply(ctx, chatbot.Incoming{
		UserID:    userIDFrom(r),
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		c.Render.Error(w, r, err)
		return
	}
	c.Render.Success(w, http.StatusOK, "Message processed successfully", reply)
}

// ConversationHandler returns the messages of a session, oldest first. Sessions may be
// anonymous, so the history is not tied to the caller: the session id is the only secret.
func (c Chatbot) ConversationHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	ctx, cancel := c.queryContext(r)
	defer cancel()

	messages, err := c.Service.Conversation(ctx, sessionID)
	if err != nil {
		c.Render.Error(w, r, err)
		return
	}
	c.Render.Success(w, http.StatusOK, "Conversation retrieved successfully", messages)
}

// userIDFrom returns the authenticated user id, nil for anonymous or admin callers
func userIDFrom(r *http.Request) *string {
	id, ok := api.IdentityFrom(r.Context())
	if !ok || id.Admin || id.UserID == "" {
		return nil
	}
	userID := id.UserID
	return &userID
}
