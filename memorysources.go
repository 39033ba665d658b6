package nanocreatures

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
)

// memorySourceRequest is the create payload. Only the fields relevant to
// the source type are populated, so omitempty keeps the rest off the wire.
type memorySourceRequest struct {
	Name        string           `json:"name"`
	Type        MemorySourceType `json:"type"`
	Content     string           `json:"content,omitempty"`
	FileURL     string           `json:"fileUrl,omitempty"`
	FileName    string           `json:"fileName,omitempty"`
	FileSize    int64            `json:"fileSize,omitempty"`
	FileContent string           `json:"fileContent,omitempty"`
}

func (c *Client) CreateMemorySource(ctx context.Context, token, creatureID string, params CreateMemorySourceParams) (*MemorySource, error) {
	req := memorySourceRequest{Name: params.Name, Type: params.Type}
	switch params.Type {
	case MemorySourceStaticText:
		req.Content = params.Content
	case MemorySourceDocument:
		if len(params.Data) > 0 {
			req.FileContent = base64.StdEncoding.EncodeToString(params.Data)
			req.FileName = params.FileName
			req.FileSize = int64(len(params.Data))
		} else {
			req.FileURL = params.FileURL
			req.FileName = params.FileName
			req.FileSize = params.FileSize
		}
	}

	var out MemorySource
	path := memorySourcesPath(creatureID)
	if err := c.do(ctx, http.MethodPost, path, token, req, &out, "Failed to create memory source"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMemorySources(ctx context.Context, token, creatureID string) ([]MemorySource, error) {
	var out []MemorySource
	if err := c.do(ctx, http.MethodGet, memorySourcesPath(creatureID), token, nil, &out, "Failed to list memory sources"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateMemorySource(ctx context.Context, token, creatureID, sourceID string, params UpdateMemorySourceParams) (*MemorySource, error) {
	var out MemorySource
	path := memorySourcesPath(creatureID) + "/" + url.PathEscape(sourceID)
	if err := c.do(ctx, http.MethodPut, path, token, params, &out, "Failed to update memory source"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMemorySource(ctx context.Context, token, creatureID, sourceID string) error {
	path := memorySourcesPath(creatureID) + "/" + url.PathEscape(sourceID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, "Failed to delete memory source")
}

func memorySourcesPath(creatureID string) string {
	return "/api/creatures/" + url.PathEscape(creatureID) + "/memory-sources"
}
