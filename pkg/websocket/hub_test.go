package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForTopics(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(hub.Topics()) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d topics", want)
}

func TestHubBroadcastToTopic(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	lagos := &Client{Hub: hub, Send: make(chan []byte, 4), Topic: "tenant-lagos"}
	abuja := &Client{Hub: hub, Send: make(chan []byte, 4), Topic: "tenant-abuja"}
	hub.Register <- lagos
	hub.Register <- abuja
	waitForTopics(t, hub, 2)

	sent := hub.BroadcastToTopic("tenant-lagos", []byte(`{"type":"dashboard_snapshot"}`))
	assert.Equal(t, 1, sent)

	select {
	case msg := <-lagos.Send:
		assert.Contains(t, string(msg), "dashboard_snapshot")
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the snapshot")
	}

	select {
	case <-abuja.Send:
		t.Fatal("other tenant's subscriber received the snapshot")
	default:
	}
}

func TestHubUnregisterRemovesTopic(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 4), Topic: "tenant-lagos"}
	hub.Register <- client
	waitForTopics(t, hub, 1)

	hub.Unregister <- client
	waitForTopics(t, hub, 0)

	assert.Equal(t, 0, hub.BroadcastToTopic("tenant-lagos", []byte("x")))
}

func TestHubStats(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.Register <- &Client{Hub: hub, Send: make(chan []byte, 4), Topic: "tenant-lagos"}
	waitForTopics(t, hub, 1)

	stats := hub.GetStats()
	require.Equal(t, 1, stats["connections"])
	assert.Equal(t, int64(1), stats["total_connections"])
}
