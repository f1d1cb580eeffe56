package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/chatbot"
)

const (
	// maxFrameSize bounds a single incoming chat frame
	maxFrameSize = 4096
	// idleTimeout closes a channel that sent nothing for this long
	idleTimeout = 10 * time.Minute
	writeWait   = 10 * time.Second
)

// Frame types sent over the chat channel
const (
	FrameGreeting = "greeting"
	FrameReply    = "reply"
	FrameError    = "error"
)

// ChatFrame is one server to client message on the chat channel
type ChatFrame struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId"`
	Message   string         `json:"message,omitempty"`
	Data      *chatbot.Reply `json:"data,omitempty"`
}

func (c Chatbot) upgrader() websocket.Upgrader {
	allowed := make(map[string]struct{}, len(c.Origins))
	allowAll := len(c.Origins) == 0
	for _, o := range c.Origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if allowAll || origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
	}
}

// WebSocketHandler upgrades to a chat channel. Each text frame {message, sessionId} is
// answered like a POST to the message endpoint.
func (c Chatbot) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := c.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already wrote the error response
		zap.S().Debugw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	userID := userIDFrom(r)
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// keep the request id, drop the request deadline
	base := context.WithoutCancel(r.Context())

	conn.SetReadLimit(maxFrameSize)
	if err := c.write(conn, ChatFrame{Type: FrameGreeting, SessionID: sessionID, Message: chatbot.Greeting}); err != nil {
		return
	}

	for {
		conn.SetReadDeadline(time.Now().Add(idleTimeout))
		var req chatMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.S().Debugw("chat channel closed", "sessionId", sessionID, "error", err)
			}
			return
		}
		if req.SessionID == "" {
			req.SessionID = sessionID
		}

		ctx, cancel := api.WithQueryTimeout(base, c.QueryTimeout)
		reply, err := c.Service.Reply(ctx, chatbot.Incoming{UserID: userID, SessionID: req.SessionID, Message: req.Message})
		cancel()

		frame := ChatFrame{Type: FrameReply, SessionID: req.SessionID, Data: &reply}
		if err != nil {
			he := api.Classify(err)
			if he.Status >= http.StatusInternalServerError {
				zap.S().Errorw("chat reply failed", "sessionId", req.SessionID, "error", err)
			}
			frame = ChatFrame{Type: FrameError, SessionID: req.SessionID, Message: he.Message}
		}
		if err := c.write(conn, frame); err != nil {
			return
		}
	}
}

func (c Chatbot) write(conn *websocket.Conn, f ChatFrame) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(f); err != nil {
		zap.S().Debugw("chat write failed", "sessionId", f.SessionID, "error", err)
		return err
	}
	return nil
}
