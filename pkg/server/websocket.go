package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/stringjsx/internal/errors"
)

const (
	// wsWriteWait bounds a single frame write.
	wsWriteWait = 10 * time.Second

	// wsPongWait is how long a connection may stay silent.
	wsPongWait = 60 * time.Second

	// wsPingPeriod must be shorter than wsPongWait.
	wsPingPeriod = wsPongWait * 9 / 10
)

// handleWebSocket renders each text frame as a document. Replies are the
// rendered markup, or a JSON error frame when the document fails.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.RecordWebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.metrics.RecordWebSocketOpen()
	defer s.metrics.RecordWebSocketClose()

	conn.SetReadLimit(s.config.MaxBodyBytes)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(conn, done)

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.metrics.RecordWebSocketError("read")
				s.logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		reply := s.renderFrame(r, msgType, msg)

		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
			s.metrics.RecordWebSocketError("write")
			s.logger.Debug("websocket write failed", "error", err)
			return
		}
	}
}

// renderFrame turns one incoming frame into a reply frame.
func (s *Server) renderFrame(r *http.Request, msgType int, msg []byte) []byte {
	var err error
	if msgType == websocket.TextMessage {
		var html []byte
		html, err = s.renderBytes(r, msg)
		if err == nil {
			return html
		}
	} else {
		err = errors.New("E212").WithDetail("Documents must be sent as text frames.")
	}

	e, _ := classify(err)
	s.metrics.RecordRenderError("/ws", e.Code)
	data, _ := json.Marshal(errorResponse{Error: e})
	return data
}

func (s *Server) renderBytes(r *http.Request, msg []byte) ([]byte, error) {
	html, err := s.renderDocument(r.Context(), strings.NewReader(string(msg)))
	if err != nil {
		return nil, err
	}
	s.metrics.RecordRendered(len(html))
	return []byte(html), nil
}

// pingLoop keeps the connection alive until done is closed. WriteControl
// may run concurrently with the reader loop's writes.
func (s *Server) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
