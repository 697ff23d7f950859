package models

// Field limits enforced client-side before any request is issued.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 5000
	CommentMaxLen     = 500
	ImageMaxBytes     = 5 * 1024 * 1024
)

// Author identifies the user who wrote a post.
type Author struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Post is the blog post DTO as delivered by the backend. The client never owns
// canonical post state; it holds at most one transient copy per view.
type Post struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Author      Author `json:"author"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
