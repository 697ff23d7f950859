package views

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

func newDetailFixture() (*fakeBlogSvc, *DetailView) {
	svc := &fakeBlogSvc{
		post: &models.Post{ID: "p1", Title: "Hello World", Author: models.Author{ID: "u1", Name: "Alice"}},
		comments: []models.Comment{
			{ID: "c1", Comment: "First!", User: models.Commenter{Email: "bob@example.com", Name: "Bob"}},
		},
	}
	return svc, NewDetailView(svc, "p1")
}

func TestDetailViewLoad(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()

	assert.True(t, v.Loading())
	v.Load(context.Background())

	assert.False(t, v.Loading())
	assert.False(t, v.Failed())
	require.NotNil(t, v.Post())
	assert.Equal(t, "Hello World", v.Post().Title)
	assert.Len(t, v.Comments(), 1)
	svc.mu.Lock()
	assert.Equal(t, 1, svc.getCalls)
	assert.Equal(t, 1, svc.commentsCalls)
	svc.mu.Unlock()
}

func TestDetailViewLoadFailureKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"missing post", &api.Error{Status: 404, Kind: api.KindNotFound, Message: "Blog not found"}, FailureNotFound},
		{"no session", &api.Error{Status: 401, Kind: api.KindUnauthorized, Message: "login required"}, FailureUnauthorized},
		{"network", errors.New("connection refused"), FailureRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, v := newDetailFixture()
			defer v.Close()
			svc.getErr = tc.err

			v.Load(context.Background())

			assert.True(t, v.Failed())
			kind, prompt := v.Failure()
			assert.Equal(t, tc.want, kind)
			// Every fetch failure funnels into the same login prompt.
			assert.Equal(t, "Login First", prompt)
		})
	}
}

func TestDetailViewCommentListFailureAlsoFails(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()
	svc.commentsErr = &api.Error{Status: 401, Kind: api.KindUnauthorized, Message: "login required"}

	v.Load(context.Background())

	assert.True(t, v.Failed())
	kind, _ := v.Failure()
	assert.Equal(t, FailureUnauthorized, kind)
}

func TestDetailViewCommentDraftCap(t *testing.T) {
	_, v := newDetailFixture()
	defer v.Close()

	v.SetCommentText(strings.Repeat("x", 600))
	assert.Len(t, v.CommentText(), models.CommentMaxLen)
	assert.Zero(t, v.Remaining())

	v.SetCommentText("hi")
	assert.Equal(t, models.CommentMaxLen-2, v.Remaining())
}

func TestDetailViewSubmitEmptyComment(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()
	v.Load(context.Background())

	v.SetCommentText("   \n\t ")
	v.SubmitComment(context.Background())

	// Whitespace-only drafts never reach the backend.
	svc.mu.Lock()
	assert.Zero(t, svc.addCalls)
	svc.mu.Unlock()
	st := v.Status()
	assert.Equal(t, "Comment cannot be empty!", st.Text)
	assert.Equal(t, SeverityWarning, st.Severity)
}

func TestDetailViewSubmitCommentSuccess(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()
	v.clearDelay = 10 * time.Millisecond
	v.Load(context.Background())

	v.SetCommentText("  nice post  ")
	v.SubmitComment(context.Background())

	svc.mu.Lock()
	assert.Equal(t, 1, svc.addCalls)
	assert.Equal(t, "nice post", svc.lastAddText)
	// One fetch from Load plus exactly one refresh after the submit.
	assert.Equal(t, 2, svc.commentsCalls)
	svc.mu.Unlock()

	assert.Empty(t, v.CommentText())
	assert.False(t, v.Submitting())
	st := v.Status()
	assert.Equal(t, "Comment added successfully!", st.Text)
	assert.Equal(t, SeveritySuccess, st.Severity)

	// The success message clears itself shortly after.
	assert.Eventually(t, func() bool { return v.Status().IsZero() }, time.Second, 5*time.Millisecond)
}

func TestDetailViewSubmitCommentFailure(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()
	v.clearDelay = 10 * time.Millisecond
	v.Load(context.Background())

	svc.mu.Lock()
	svc.addErr = &api.Error{Status: 500, Kind: api.KindRequest, Message: "database down"}
	svc.mu.Unlock()

	v.SetCommentText("still here")
	v.SubmitComment(context.Background())

	// The draft survives so the user can retry, and no refresh happens.
	assert.Equal(t, "still here", v.CommentText())
	svc.mu.Lock()
	assert.Equal(t, 1, svc.commentsCalls)
	svc.mu.Unlock()
	st := v.Status()
	assert.Equal(t, "database down", st.Text)
	assert.Equal(t, SeverityError, st.Severity)

	// Error messages do not auto-clear.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "database down", v.Status().Text)
}

func TestDetailViewSubmitCommentFallbackMessage(t *testing.T) {
	svc, v := newDetailFixture()
	defer v.Close()
	v.Load(context.Background())

	svc.mu.Lock()
	svc.addErr = errors.New("dial tcp: refused")
	svc.mu.Unlock()

	v.SetCommentText("hello")
	v.SubmitComment(context.Background())
	assert.Equal(t, "Failed to add comment", v.Status().Text)
}

func TestDetailViewCloseCancelsClearTimer(t *testing.T) {
	svc, v := newDetailFixture()
	v.clearDelay = 10 * time.Millisecond
	v.Load(context.Background())

	v.SetCommentText("bye")
	v.SubmitComment(context.Background())
	v.Close()

	time.Sleep(50 * time.Millisecond)
	// Nothing mutates after Close, including the fired timer.
	assert.Equal(t, "Comment added successfully!", v.Status().Text)
	svc.mu.Lock()
	assert.Equal(t, 2, svc.commentsCalls)
	svc.mu.Unlock()
}
