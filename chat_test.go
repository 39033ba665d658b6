package nanocreatures

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

const chatResponseFixture = `{
	"message": "hi there",
	"session_id": "sess-1",
	"timestamp": "2024-01-01T00:00:00Z",
	"results": {"memories": [{"id": "m1"}]},
	"query_type": {"is_question": true}
}`

func TestSendMessageMatchesChatBody(t *testing.T) {
	var bodies [][]byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, body)
		w.Write([]byte(chatResponseFixture))
	})
	ctx := context.Background()

	if _, err := client.SendMessage(ctx, "tok", "c1", "hello"); err != nil {
		t.Fatalf("send message: %v", err)
	}
	if _, err := client.Chat(ctx, "tok", "c1", ChatParams{Message: "hello"}); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if len(bodies) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(bodies))
	}
	if !bytes.Equal(bodies[0], bodies[1]) {
		t.Errorf("bodies differ: %s vs %s", bodies[0], bodies[1])
	}
	if string(bodies[0]) != `{"message":"hello"}` {
		t.Errorf("unexpected body: %s", bodies[0])
	}
}

func TestChatCarriesSessionID(t *testing.T) {
	var body []byte
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.Write([]byte(chatResponseFixture))
	})

	_, err := client.Chat(context.Background(), "tok", "c1", ChatParams{Message: "again", SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if path != "/api/creatures/c1/chat" {
		t.Errorf("unexpected path: %s", path)
	}
	if string(body) != `{"message":"again","sessionId":"sess-1"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestChatDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatResponseFixture))
	})

	resp, err := client.Chat(context.Background(), "tok", "c1", ChatParams{Message: "hello"})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Message != "hi there" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.SessionID != "sess-1" {
		t.Errorf("unexpected session id: %q", resp.SessionID)
	}
	if !resp.QueryType["is_question"] {
		t.Errorf("unexpected query_type: %v", resp.QueryType)
	}
	var memories []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Results["memories"], &memories); err != nil {
		t.Fatalf("unmarshal results block: %v", err)
	}
	if len(memories) != 1 || memories[0].ID != "m1" {
		t.Errorf("unexpected results: %v", memories)
	}
}
