package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(msg, &out))
	return out
}

func TestHubPresenceAndBroadcast(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, 1)
	}))
	defer srv.Close()

	first := dial(t, srv)
	defer first.Close()
	ev := readEvent(t, first)
	require.Equal(t, EventPresence, ev["type"])
	require.Equal(t, float64(1), ev["payload"].(map[string]any)["admins"])

	second := dial(t, srv)
	defer second.Close()
	ev = readEvent(t, first)
	require.Equal(t, EventPresence, ev["type"])
	require.Equal(t, float64(2), ev["payload"].(map[string]any)["admins"])
	_ = readEvent(t, second)

	hub.Publish(Event{Type: EventBookingCreated, Payload: map[string]any{"id": 7}})
	for _, c := range []*websocket.Conn{first, second} {
		ev = readEvent(t, c)
		require.Equal(t, EventBookingCreated, ev["type"])
		require.Equal(t, float64(7), ev["payload"].(map[string]any)["id"])
	}
}

func TestHubRejectsForeignOrigin(t *testing.T) {
	hub := NewHub([]string{"https://admin.example.com"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, 1)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHubRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	hub.Publish(Event{Type: EventContactReceived})
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
	require.Equal(t, 0, hub.Connected())
}

func TestMultiPublishSkipsNil(t *testing.T) {
	var got []string
	rec := publisherFunc(func(e Event) { got = append(got, e.Type) })
	Multi{nil, rec, rec}.Publish(Event{Type: EventReviewSubmitted})
	require.Equal(t, []string{EventReviewSubmitted, EventReviewSubmitted}, got)
}

type publisherFunc func(Event)

func (f publisherFunc) Publish(e Event) { f(e) }
