package models

import "encoding/json"

// Envelope is the uniform backend response shape. Data is decoded per-endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// BlogListData is the list-posts payload: all posts plus the identifiers of the
// posts the current session may mutate.
type BlogListData struct {
	Blog     []Post   `json:"blog"`
	OwnedIDs []string `json:"author"`
}
