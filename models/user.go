package models

// UserProfile is the login response payload. It is persisted as the session's
// "user" entry and reused opportunistically by other views.
type UserProfile struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
