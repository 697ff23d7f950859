package views

import (
	"context"
	"sync"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

const msgEditFailed = "Failed to update blog"

// EditView loads one post and applies a partial update of title and
// description. The image is not editable in this flow. A failed fetch is
// terminal: the view offers only back-navigation, no retry.
type EditView struct {
	svc    BlogService
	nav    Navigator
	postID string

	mu          sync.Mutex
	closed      bool
	loading     bool
	notFound    bool
	post        *models.Post
	title       string
	description string
	saving      bool
	status      Status
}

// NewEditView creates an edit view for the given post id.
func NewEditView(svc BlogService, nav Navigator, postID string) *EditView {
	return &EditView{svc: svc, nav: nav, postID: postID, loading: true}
}

// Load fetches the post and seeds the editable fields. Any fetch failure
// renders the terminal not-found / not-permitted state.
func (v *EditView) Load(ctx context.Context) {
	post, err := v.svc.GetPost(ctx, v.postID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.loading = false
	if err != nil || post == nil {
		v.notFound = true
		return
	}
	v.post = post
	v.title = post.Title
	v.description = post.Description
}

// NotFound reports the terminal fetch-failure state.
func (v *EditView) NotFound() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notFound
}

// SetTitle updates the unsaved title.
func (v *EditView) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.title = title
}

// SetDescription updates the unsaved body.
func (v *EditView) SetDescription(description string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.description = description
}

// Title returns the unsaved title.
func (v *EditView) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// Description returns the unsaved body.
func (v *EditView) Description() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.description
}

// Post returns the fetched post, or nil.
func (v *EditView) Post() *models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post
}

// Save sends the partial update. On success it navigates to the detail view;
// on failure it surfaces a blocking alert and keeps the unsaved edits.
func (v *EditView) Save(ctx context.Context) {
	v.mu.Lock()
	if v.closed || v.saving || v.post == nil {
		v.mu.Unlock()
		return
	}
	v.saving = true
	title, description := v.title, v.description
	v.mu.Unlock()

	err := v.svc.UpdatePost(ctx, v.postID, title, description)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.saving = false
	if err != nil {
		v.status = failure(api.MessageOr(err, msgEditFailed))
		return
	}
	v.status = success("Blog updated successfully!")
	if v.nav != nil {
		v.nav.Replace("/blog/" + v.postID)
	}
}

// Saving reports whether the update request is in flight.
func (v *EditView) Saving() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.saving
}

// Status returns the current user-facing message.
func (v *EditView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Loading reports whether the initial fetch is in flight.
func (v *EditView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Close discards the view.
func (v *EditView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
