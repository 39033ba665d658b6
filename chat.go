package nanocreatures

import (
	"context"
	"net/http"
	"net/url"
)

// Chat sends a message to a creature. Session continuity is the caller's:
// pass back the SessionID from a previous response to stay in the same
// conversation.
func (c *Client) Chat(ctx context.Context, token, creatureID string, params ChatParams) (*ChatResponse, error) {
	var out ChatResponse
	path := "/api/creatures/" + url.PathEscape(creatureID) + "/chat"
	if err := c.do(ctx, http.MethodPost, path, token, params, &out, "Failed to send chat message"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage is Chat with a bare string, wrapped as {"message": ...}.
func (c *Client) SendMessage(ctx context.Context, token, creatureID, message string) (*ChatResponse, error) {
	return c.Chat(ctx, token, creatureID, ChatParams{Message: message})
}
