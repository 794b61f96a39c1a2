package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, s *Server, header http.Header) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msgType int, doc string) string {
	t.Helper()
	require.NoError(t, conn.WriteMessage(msgType, []byte(doc)))
	_, reply, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(reply)
}

func TestWebSocketRendersEachFrame(t *testing.T) {
	conn := dialWS(t, newTestServer(t), nil)

	assert.Equal(t, `<ul><li>a &amp; b</li><li class="last">z</li></ul>`,
		roundTrip(t, conn, websocket.TextMessage, itemDoc))
	assert.Equal(t, "<br>", roundTrip(t, conn, websocket.TextMessage, `{"tag": "br", "children": ["x"]}`))
}

func TestWebSocketErrorFrames(t *testing.T) {
	conn := dialWS(t, newTestServer(t), nil)

	var body errorBody
	require.NoError(t, json.Unmarshal([]byte(roundTrip(t, conn, websocket.TextMessage, `{"tag": `)), &body))
	assert.Equal(t, "E210", body.Error.Code)

	body = errorBody{}
	require.NoError(t, json.Unmarshal([]byte(roundTrip(t, conn, websocket.BinaryMessage, `"x"`)), &body))
	assert.Equal(t, "E212", body.Error.Code)

	// The connection survives failed documents.
	assert.Equal(t, "<i>ok</i>", roundTrip(t, conn, websocket.TextMessage, `{"tag": "i", "children": "ok"}`))
}

func TestWebSocketReadLimit(t *testing.T) {
	conn := dialWS(t, newTestServer(t), nil)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`"`+strings.Repeat("x", 8192)+`"`)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "oversized frames close the connection")
}

func TestWebSocketRejectsCrossOrigin(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
