package views

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

// Messages shown by the detail view.
const (
	msgCommentEmpty   = "Comment cannot be empty!"
	msgCommentAdded   = "Comment added successfully!"
	msgCommentFailed  = "Failed to add comment"
	msgDetailLoginBad = "Login First"
)

// How long the comment success message stays visible.
const commentClearDelay = 3 * time.Second

// FailureKind distinguishes why the detail fetch failed. The original client
// collapsed these into one "please log in" state; both kinds are exposed here
// and the caller decides whether to collapse them.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNotFound
	FailureUnauthorized
	FailureRequest
)

// DetailView holds the state of a single post page: the post, its comments
// and the comment submission machine (Idle -> Submitting -> outcome -> Idle).
type DetailView struct {
	svc    BlogService
	postID string

	mu          sync.Mutex
	closed      bool
	loading     bool
	post        *models.Post
	comments    []models.Comment
	failKind    FailureKind
	failText    string
	commentText string
	submitting  bool
	status      Status

	clearDelay time.Duration
	timers     timerGroup
}

// NewDetailView creates a detail view for the given post id.
func NewDetailView(svc BlogService, postID string) *DetailView {
	return &DetailView{
		svc:        svc,
		postID:     postID,
		loading:    true,
		clearDelay: commentClearDelay,
	}
}

// Load fetches the post and its comment list. The two results land in
// independent state slices, so their completion order does not matter. A
// failure on either puts the view in a terminal error state whose only
// recovery is the login flow.
func (v *DetailView) Load(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	post, err := v.svc.GetPost(ctx, v.postID)
	if err != nil {
		v.fail(err)
		return
	}
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.post = post
	v.mu.Unlock()

	comments, err := v.svc.ListComments(ctx, v.postID)
	if err != nil {
		v.fail(err)
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.comments = comments
	v.loading = false
}

func (v *DetailView) fail(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.loading = false
	v.failText = api.MessageOr(err, "Failed to fetch blog or comments")
	switch {
	case api.IsNotFound(err):
		v.failKind = FailureNotFound
	case api.IsUnauthorized(err):
		v.failKind = FailureUnauthorized
	default:
		v.failKind = FailureRequest
	}
}

// Failed reports whether the view is in its terminal error state.
func (v *DetailView) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failKind != FailureNone
}

// Failure returns the failure kind and the recovery prompt shown to the user.
func (v *DetailView) Failure() (FailureKind, string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.failKind == FailureNone {
		return FailureNone, ""
	}
	return v.failKind, msgDetailLoginBad
}

// SetCommentText updates the comment draft, capped at the 500 character limit
// as direct input feedback rather than a validation failure.
func (v *DetailView) SetCommentText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	runes := []rune(text)
	if len(runes) > models.CommentMaxLen {
		runes = runes[:models.CommentMaxLen]
	}
	v.commentText = string(runes)
}

// CommentText returns the current draft. It survives a failed submission.
func (v *DetailView) CommentText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.commentText
}

// Remaining returns how many characters the draft may still grow by.
func (v *DetailView) Remaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return models.CommentMaxLen - len([]rune(v.commentText))
}

// SubmitComment runs the comment state machine once. Empty or whitespace-only
// text is rejected locally with a warning and no request. On success the
// input is cleared, the comment list is re-fetched so server-assigned fields
// are authoritative, and the success message auto-clears after three seconds.
// On failure the backend message is surfaced and the draft is preserved.
func (v *DetailView) SubmitComment(ctx context.Context) {
	v.mu.Lock()
	if v.closed || v.submitting {
		v.mu.Unlock()
		return
	}
	text := strings.TrimSpace(v.commentText)
	if text == "" {
		v.status = warning(msgCommentEmpty)
		v.mu.Unlock()
		return
	}
	v.submitting = true
	v.status = Status{}
	v.mu.Unlock()

	err := v.svc.AddComment(ctx, v.postID, text)
	if err != nil {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed {
			return
		}
		v.submitting = false
		v.status = failure(api.MessageOr(err, msgCommentFailed))
		return
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.commentText = ""
	v.status = success(msgCommentAdded)
	v.mu.Unlock()

	if comments, err := v.svc.ListComments(ctx, v.postID); err == nil {
		v.mu.Lock()
		if !v.closed {
			v.comments = comments
		}
		v.mu.Unlock()
	}

	v.timers.After(v.clearDelay, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed {
			return
		}
		if v.status.Severity == SeveritySuccess {
			v.status = Status{}
		}
	})

	v.mu.Lock()
	v.submitting = false
	v.mu.Unlock()
}

// Post returns the fetched post, or nil before Load completes.
func (v *DetailView) Post() *models.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post
}

// Comments returns the fetched comment list.
func (v *DetailView) Comments() []models.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Comment(nil), v.comments...)
}

// Status returns the current user-facing message.
func (v *DetailView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Submitting reports whether a comment request is in flight.
func (v *DetailView) Submitting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitting
}

// Loading reports whether the initial fetches are in flight.
func (v *DetailView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Close discards the view and cancels pending timers. Late responses and
// fired timers become no-ops.
func (v *DetailView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.timers.Stop()
}
