package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

func TestEditViewLoadSeedsFields(t *testing.T) {
	svc := &fakeBlogSvc{post: &models.Post{ID: "p1", Title: "Old Title", Description: "Old body"}}
	v := NewEditView(svc, nil, "p1")
	defer v.Close()

	v.Load(context.Background())

	assert.False(t, v.NotFound())
	assert.Equal(t, "Old Title", v.Title())
	assert.Equal(t, "Old body", v.Description())
}

func TestEditViewLoadFailureIsTerminal(t *testing.T) {
	svc := &fakeBlogSvc{getErr: &api.Error{Status: 404, Kind: api.KindNotFound, Message: "Blog not found"}}
	v := NewEditView(svc, nil, "missing")
	defer v.Close()

	v.Load(context.Background())
	assert.True(t, v.NotFound())

	// Saving from the terminal state is a no-op.
	v.SetTitle("New")
	v.Save(context.Background())
	svc.mu.Lock()
	assert.Zero(t, svc.updateCalls)
	svc.mu.Unlock()
}

func TestEditViewSaveSuccessNavigates(t *testing.T) {
	svc := &fakeBlogSvc{post: &models.Post{ID: "p1", Title: "Old", Description: "Old"}}
	nav := &recordingNav{}
	v := NewEditView(svc, nav, "p1")
	defer v.Close()
	v.Load(context.Background())

	v.SetTitle("New Title")
	v.SetDescription("New body")
	v.Save(context.Background())

	svc.mu.Lock()
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, "New Title", svc.lastTitle)
	assert.Equal(t, "New body", svc.lastDescription)
	svc.mu.Unlock()

	paths := nav.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, "/blog/p1", paths[0])
}

func TestEditViewSaveFailureKeepsEdits(t *testing.T) {
	svc := &fakeBlogSvc{post: &models.Post{ID: "p1", Title: "Old", Description: "Old"}}
	nav := &recordingNav{}
	v := NewEditView(svc, nav, "p1")
	defer v.Close()
	v.Load(context.Background())

	svc.mu.Lock()
	svc.updateErr = &api.Error{Status: 403, Kind: api.KindUnauthorized, Message: "not your blog"}
	svc.mu.Unlock()

	v.SetTitle("New Title")
	v.Save(context.Background())

	assert.Equal(t, "New Title", v.Title())
	st := v.Status()
	assert.Equal(t, "not your blog", st.Text)
	assert.Equal(t, SeverityError, st.Severity)
	assert.Empty(t, nav.Paths())
}
