package models

// Commenter is the authoring user embedded in a comment payload.
type Commenter struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Comment is a reply attached to exactly one post. Comments are immutable and
// undeletable from this client.
type Comment struct {
	ID        string    `json:"_id"`
	Comment   string    `json:"comment"`
	User      Commenter `json:"userId"`
	CreatedAt string    `json:"createdAt"`
}
