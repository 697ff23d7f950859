package views

import (
	"context"

	"github.com/supanugit/Blog-Frontend/models"
)

// BlogService is the slice of the backend API consumed by the blog views.
// *api.Client satisfies it.
type BlogService interface {
	ListPosts(ctx context.Context) ([]models.Post, []string, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, title, description string, image models.ImageFile) error
	UpdatePost(ctx context.Context, id, title, description string) error
	DeletePost(ctx context.Context, id string) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, text string) error
}

// AuthService is the auth slice of the backend API.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)
	Register(ctx context.Context, email, password string) error
}

// ProfileStore persists the logged-in user's profile for opportunistic reuse
// by other views. The caller binds it to the browser session.
type ProfileStore interface {
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
}

// Navigator receives the redirects a view decides on, immediate or scheduled.
// Scheduled redirects are cancelled when the view is closed.
type Navigator interface {
	Replace(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// Replace calls f(path).
func (f NavigatorFunc) Replace(path string) { f(path) }
