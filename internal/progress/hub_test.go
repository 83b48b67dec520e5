package progress

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHubBroadcastToTCPClient(t *testing.T) {
	hub := NewHub()
	server, client := net.Pipe()
	defer client.Close()

	hub.Add(server)
	require.Equal(t, 1, hub.Count())

	done := make(chan JobEvent, 1)
	go func() {
		line, err := bufio.NewReader(client).ReadBytes('\n')
		if err != nil {
			close(done)
			return
		}
		var ev JobEvent
		_ = json.Unmarshal(line, &ev)
		done <- ev
	}()

	hub.Broadcast(Completed("job-1", 5, 2, 1))

	select {
	case ev := <-done:
		require.Equal(t, EventJobCompleted, ev.Type)
		require.Equal(t, "job-1", ev.JobID)
		require.Equal(t, 5, ev.UniqueContacts)
		require.Equal(t, 2, ev.Duplicates)
		require.Equal(t, 1, ev.Rejected)
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestHubDropsDeadClient(t *testing.T) {
	hub := NewHub()
	server, client := net.Pipe()
	hub.Add(server)
	_ = client.Close()

	// write fails against the closed pipe and the client is evicted
	hub.Broadcast(Started("job-1", "contacts.csv"))
	require.Equal(t, 0, hub.Count())
}

func TestHubStats(t *testing.T) {
	hub := NewHub()
	require.Equal(t, Stats{}, hub.Stats())

	server, client := net.Pipe()
	defer client.Close()
	hub.Add(server)
	require.Equal(t, Stats{TCPClients: 1}, hub.Stats())

	hub.Remove(server)
	require.Equal(t, Stats{}, hub.Stats())
}

func TestEventConstructors(t *testing.T) {
	ev := Progress("j", StageCleaning, 3, 10)
	require.Equal(t, EventJobProgress, ev.Type)
	require.Equal(t, StageCleaning, ev.Stage)
	require.Equal(t, 3, ev.Done)
	require.Equal(t, 10, ev.Total)
	require.False(t, ev.At.IsZero())

	fail := Failed("j", "boom")
	require.Equal(t, EventJobFailed, fail.Type)
	require.Equal(t, "boom", fail.Error)
}
