package nanocreatures

import "encoding/json"

// Nullable response fields are pointers without omitempty so a decoded
// entity re-encodes with explicit nulls instead of dropping the field.

type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type Creature struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	APIKey      *string `json:"apiKey"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type MemorySourceType string

const (
	MemorySourceStaticText MemorySourceType = "STATIC_TEXT"
	MemorySourceDocument   MemorySourceType = "DOCUMENT"
)

// MemorySource holds either Content (STATIC_TEXT) or the file fields
// (DOCUMENT); the server populates exactly one side.
type MemorySource struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      MemorySourceType `json:"type"`
	Content   *string          `json:"content"`
	FileURL   *string          `json:"fileUrl"`
	FileName  *string          `json:"fileName"`
	FileSize  *int64           `json:"fileSize"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// AuthResponse is returned by both sign-up and sign-in.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ChatResponse struct {
	Message   string                     `json:"message"`
	Results   map[string]json.RawMessage `json:"results,omitempty"`
	SessionID string                     `json:"session_id"`
	Timestamp string                     `json:"timestamp"`
	QueryType map[string]bool            `json:"query_type,omitempty"`
	Filters   map[string]json.RawMessage `json:"filters,omitempty"`
}

type SignUpParams struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}

type SignInParams struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type CreateCreatureParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCreatureParams uses pointers so unset fields are omitted while a
// field explicitly set to "" is still sent.
type UpdateCreatureParams struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateMemorySourceParams describes a new memory source. For STATIC_TEXT
// only Content is read; for DOCUMENT either Data (raw bytes, sent inline)
// or FileURL/FileName/FileSize (by reference) is read.
type CreateMemorySourceParams struct {
	Name     string
	Type     MemorySourceType
	Content  string
	FileURL  string
	FileName string
	FileSize int64
	Data     []byte
}

type UpdateMemorySourceParams struct {
	Name     *string `json:"name,omitempty"`
	Content  *string `json:"content,omitempty"`
	FileURL  *string `json:"fileUrl,omitempty"`
	FileName *string `json:"fileName,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`
}

type ChatParams struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}
