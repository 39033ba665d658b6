package nanocreatures

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListCreatures(ctx context.Context, token string) ([]Creature, error) {
	var out struct {
		Creatures []Creature `json:"creatures"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/creatures", token, nil, &out, "Failed to list creatures"); err != nil {
		return nil, err
	}
	return out.Creatures, nil
}

func (c *Client) CreateCreature(ctx context.Context, token string, params CreateCreatureParams) (*Creature, error) {
	var out Creature
	if err := c.do(ctx, http.MethodPost, "/api/creatures", token, params, &out, "Failed to create creature"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCreature(ctx context.Context, token, creatureID string, params UpdateCreatureParams) (*Creature, error) {
	var out Creature
	path := "/api/creatures/" + url.PathEscape(creatureID)
	if err := c.do(ctx, http.MethodPut, path, token, params, &out, "Failed to update creature"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCreature(ctx context.Context, token, creatureID string) error {
	path := "/api/creatures/" + url.PathEscape(creatureID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, "Failed to delete creature")
}
