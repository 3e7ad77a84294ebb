package stream

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/san-kum/faraday/internal/control"
	"github.com/san-kum/faraday/internal/induction"
	"github.com/san-kum/faraday/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) sim.Snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var s sim.Snapshot
	require.NoError(t, json.Unmarshal(data, &s))
	return s
}

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	a, b := dial(t, h), dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 2 }, time.Second, 5*time.Millisecond)

	h.OnTick(sim.Snapshot{
		State:   induction.State{Position: 42, Turns: 9, Playing: true},
		Speed:   2,
		History: []induction.Sample{{Time: 0.1, Flux: 92.5, EMF: -3.2}},
	})

	for _, conn := range []*websocket.Conn{a, b} {
		s := readSnapshot(t, conn)
		assert.Equal(t, 42.0, s.State.Position)
		assert.Equal(t, 9, s.State.Turns)
		assert.Equal(t, 2.0, s.Speed)
		assert.Len(t, s.History, 1)
	}
}

func TestHub_IgnoresClientMessages(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	conn := dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"turns":20}`)))
	h.OnTick(sim.Snapshot{State: induction.State{Turns: 3}})
	assert.Equal(t, 3, readSnapshot(t, conn).State.Turns)
	assert.Equal(t, 1, h.Clients())
}

func TestHub_SessionObserver(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	conn := dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	r := sim.NewRunner(induction.DefaultParams(), control.DefaultTravel(), control.DefaultAmplitude)
	r.AddObserver(h)
	_, err := r.Run(context.Background(), sim.Scenario{Mode: sim.ModeSweep, FPS: 10, Duration: 0.5, Turns: 5, Speed: 1, From: -100, To: 0})
	require.NoError(t, err)

	first := readSnapshot(t, conn)
	assert.Equal(t, 5, first.State.Turns)
	assert.True(t, first.State.Dragging)
}

func TestHub_CloseDisconnects(t *testing.T) {
	h := NewHub(log.New(io.Discard))
	conn := dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	h.Close()
	assert.Equal(t, 0, h.Clients())

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
