package websocket

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
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(r.URL.Query().Get("uid"), conn)
		if !m.Add(client) {
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump(m)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, uid string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?uid=" + uid
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	var event Event
	require.NoError(t, json.Unmarshal(raw, &event))
	return event
}

func TestNotifyReachesEveryConnectionOfUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager()
	m.Start(ctx)
	srv := startServer(t, m)

	tab1 := dial(t, srv, "bob")
	defer tab1.Close()
	tab2 := dial(t, srv, "bob")
	defer tab2.Close()
	other := dial(t, srv, "eve")
	defer other.Close()

	require.Eventually(t, func() bool {
		m.mutex.RLock()
		defer m.mutex.RUnlock()
		return len(m.clients["bob"]) == 2 && len(m.clients["eve"]) == 1
	}, 2*time.Second, 10*time.Millisecond)

	m.Notify([]string{"bob"}, "message", map[string]string{"text": "Nice drop!"})

	for _, conn := range []*websocket.Conn{tab1, tab2} {
		event := readEvent(t, conn)
		assert.Equal(t, "message", event.Type)
		assert.Equal(t, map[string]interface{}{"text": "Nice drop!"}, event.Data)
	}

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestPingGetsPong(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager()
	m.Start(ctx)
	srv := startServer(t, m)

	conn := dial(t, srv, "alice")
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	assert.Equal(t, EventPong, readEvent(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	assert.Equal(t, EventError, readEvent(t, conn).Type)
}

func TestDisconnectUnregisters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager()
	m.Start(ctx)
	srv := startServer(t, m)

	conn := dial(t, srv, "alice")
	require.Eventually(t, func() bool { return m.IsOnline("alice") }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return !m.IsOnline("alice") }, 2*time.Second, 10*time.Millisecond)
}

func TestAddAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	m.Start(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case <-m.done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
	assert.False(t, m.Add(NewClient("late", nil)))
}
