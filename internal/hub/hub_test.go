package hub

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamhub/internal/model"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// startHub runs a hub behind an httptest server. Each dial registers the
// connection under the user id sent in the X-User-ID header.
func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	h := New()
	go h.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			userID = uuid.New()
		}
		client := NewClient(conn, &model.User{
			ID:       userID,
			Username: "peer-" + userID.String()[:8],
			Role:     model.RoleColaborador,
		})
		h.Register(client)
		go h.ReadLoop(client)
	}))
	t.Cleanup(srv.Close)
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{"X-User-ID": []string{userID.String()}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	return payload
}

func assertSilent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestRelayExcludesSender(t *testing.T) {
	_, srv := startHub(t)

	sender := dial(t, srv, uuid.New())
	peerA := dial(t, srv, uuid.New())
	peerB := dial(t, srv, uuid.New())
	time.Sleep(50 * time.Millisecond)

	frame := []byte(`{"type":"new_message","data":{"content":"oi"}}`)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))

	assert.JSONEq(t, string(frame), string(readFrame(t, peerA)))
	assert.JSONEq(t, string(frame), string(readFrame(t, peerB)))
	assertSilent(t, sender)
}

func TestMalformedFramesDropped(t *testing.T) {
	_, srv := startHub(t)

	sender := dial(t, srv, uuid.New())
	peer := dial(t, srv, uuid.New())
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"data":"sem tipo"}`)))

	// The connection survives malformed frames; the next valid one relays.
	frame := []byte(`{"type":"new_message"}`)
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, frame))
	assert.JSONEq(t, string(frame), string(readFrame(t, peer)))
}

func TestBroadcastExceptSkipsAllUserConnections(t *testing.T) {
	h, srv := startHub(t)

	author := uuid.New()
	authorTab1 := dial(t, srv, author)
	authorTab2 := dial(t, srv, author)
	peer := dial(t, srv, uuid.New())
	time.Sleep(50 * time.Millisecond)

	payload := []byte(`{"type":"new_message","data":{"content":"via rest"}}`)
	h.BroadcastExcept(author, payload)

	assert.JSONEq(t, string(payload), string(readFrame(t, peer)))
	assertSilent(t, authorTab1)
	assertSilent(t, authorTab2)
}

func TestPeerDisconnectDoesNotBreakBroadcast(t *testing.T) {
	h, srv := startHub(t)

	gone := dial(t, srv, uuid.New())
	stay := dial(t, srv, uuid.New())
	time.Sleep(50 * time.Millisecond)

	gone.Close()
	time.Sleep(50 * time.Millisecond)

	payload := []byte(`{"type":"new_message"}`)
	h.BroadcastExcept(uuid.New(), payload)

	assert.JSONEq(t, string(payload), string(readFrame(t, stay)))
}
