package views

import (
	"context"
	"strings"
	"sync"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

// ListView holds the state of the blog list page: the fetched posts, the
// ownership set, the active filter term and the open per-post action menu.
// All state is owned exclusively by this view and discarded on Close.
type ListView struct {
	svc BlogService

	mu         sync.Mutex
	closed     bool
	loading    bool
	errText    string
	posts      []models.Post
	owned      map[string]struct{}
	filter     string
	openMenuID string
}

// NewListView creates a list view backed by svc. Call Load to activate it.
func NewListView(svc BlogService) *ListView {
	return &ListView{svc: svc, loading: true}
}

// Load fetches all posts together with the ownership set. On failure the view
// records a user-visible error; Retry re-runs the fetch in place.
func (v *ListView) Load(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	posts, ownedIDs, err := v.svc.ListPosts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.loading = false
	if err != nil {
		v.errText = api.MessageOr(err, "Failed to fetch blogs")
		return
	}
	v.errText = ""
	v.posts = posts
	v.owned = make(map[string]struct{}, len(ownedIDs))
	for _, id := range ownedIDs {
		v.owned[id] = struct{}{}
	}
}

// Retry re-runs the fetch without resetting filter or menu state.
func (v *ListView) Retry(ctx context.Context) { v.Load(ctx) }

// SetFilter updates the search term applied by Visible.
func (v *ListView) SetFilter(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = term
}

// Filter returns the active search term.
func (v *ListView) Filter() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Visible returns the rendered subset of posts: those whose title, description
// or author name contains the filter term case-insensitively. An empty term
// renders all posts.
func (v *ListView) Visible() []models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter == "" {
		return append([]models.Post(nil), v.posts...)
	}
	var out []models.Post
	for _, p := range v.posts {
		if matchesFilter(p, v.filter) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p models.Post, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Author.Name), term)
}

// IsOwned reports whether the current session may edit or delete the post.
// Edit/delete actions render if and only if this returns true.
func (v *ListView) IsOwned(postID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.owned[postID]
	return ok
}

// ToggleMenu opens the action menu for postID, closing any other open menu.
// Toggling the already open menu closes it. At most one menu is open.
func (v *ListView) ToggleMenu(postID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.openMenuID == postID {
		v.openMenuID = ""
		return
	}
	v.openMenuID = postID
}

// OpenMenuID returns the id of the post whose menu is open, or "".
func (v *ListView) OpenMenuID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.openMenuID
}

// Delete issues the destructive request only when the user has confirmed. On
// success the list is re-fetched so the rendered state matches backend truth;
// on failure an error is surfaced without altering the current list.
func (v *ListView) Delete(ctx context.Context, postID string, confirmed bool) {
	if !confirmed {
		return
	}
	if err := v.svc.DeletePost(ctx, postID); err != nil {
		v.mu.Lock()
		if !v.closed {
			v.errText = api.MessageOr(err, "Failed to delete blog")
		}
		v.mu.Unlock()
		return
	}
	v.mu.Lock()
	v.openMenuID = ""
	v.mu.Unlock()
	v.Load(ctx)
}

// Loading reports whether a fetch is in flight.
func (v *ListView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Err returns the current user-visible error, or "".
func (v *ListView) Err() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errText
}

// Posts returns the full fetched post list, unfiltered.
func (v *ListView) Posts() []models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Post(nil), v.posts...)
}

// Close discards the view. Late responses are dropped, never applied.
func (v *ListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
