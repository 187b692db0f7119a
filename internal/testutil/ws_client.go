package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Mac-Cooper1/Pick6/internal/ws"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test client for the league live feed
type WSClient struct {
	t      *testing.T
	conn   *gorillaWS.Conn
	events chan *ws.Event
	errors chan error
	done   chan struct{}
	mu     sync.Mutex
}

// NewWSClient connects to the live feed and starts reading events
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:      t,
		conn:   conn,
		events: make(chan *ws.Event, 100),
		errors: make(chan error, 10),
		done:   make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func (c *WSClient) readPump() {
	defer close(c.events)
	for {
		select {
		case <-c.done:
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				select {
				case <-c.done:
					return
				case c.errors <- err:
				}
				return
			}

			var event ws.Event
			if err := json.Unmarshal(data, &event); err != nil {
				c.errors <- err
				continue
			}

			select {
			case c.events <- &event:
			case <-c.done:
				return
			}
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// WaitForEvent blocks until an event of the given type arrives or the timeout expires
func (c *WSClient) WaitForEvent(eventType ws.EventType, timeout time.Duration) *ws.Event {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-c.events:
			if !ok {
				c.t.Fatalf("connection closed while waiting for %s", eventType)
				return nil
			}
			if event.Type == eventType {
				return event
			}
		case err := <-c.errors:
			c.t.Fatalf("websocket error while waiting for %s: %v", eventType, err)
			return nil
		case <-deadline:
			c.t.Fatalf("timed out waiting for %s", eventType)
			return nil
		}
	}
}
