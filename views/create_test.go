package views

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

func pngImage(size int) models.ImageFile {
	return models.ImageFile{
		Name:        "cover.png",
		ContentType: "image/png",
		Data:        make([]byte, size),
	}
}

func TestCreateViewSubmitValidationOrder(t *testing.T) {
	oversized := pngImage(models.ImageMaxBytes + 1)
	textFile := models.ImageFile{Name: "notes.txt", ContentType: "text/plain", Data: []byte("hi")}

	cases := []struct {
		name        string
		title       string
		description string
		image       *models.ImageFile
		want        string
		severity    Severity
	}{
		{"missing title", "  ", "body", &oversized, "Title and description are required!", SeverityWarning},
		{"missing description", "title", "", &oversized, "Title and description are required!", SeverityWarning},
		{"missing image", "title", "body", nil, "Please select an image for your blog", SeverityWarning},
		{"oversized image", "title", "body", &oversized, "Image size must be less than 5MB", SeverityError},
		{"non-image file", "title", "body", &textFile, "Please select an image file", SeverityError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeBlogSvc{}
			v := NewCreateView(svc, nil)
			defer v.Close()

			v.SetTitle(tc.title)
			v.SetDescription(tc.description)
			if tc.image != nil {
				v.SetImage(tc.image)
			}
			v.Submit(context.Background())

			// The first failing check wins and no request is issued.
			svc.mu.Lock()
			assert.Zero(t, svc.createCalls)
			svc.mu.Unlock()
			st := v.Status()
			assert.Equal(t, tc.want, st.Text)
			assert.Equal(t, tc.severity, st.Severity)
		})
	}
}

func TestCreateViewSubmitSuccess(t *testing.T) {
	svc := &fakeBlogSvc{}
	nav := &recordingNav{}
	v := NewCreateView(svc, nav)
	defer v.Close()
	v.redirectDelay = 10 * time.Millisecond

	v.SetTitle("  My Post  ")
	v.SetDescription(" body ")
	img := pngImage(1024)
	v.SetImage(&img)
	v.Submit(context.Background())

	svc.mu.Lock()
	assert.Equal(t, 1, svc.createCalls)
	assert.Equal(t, "My Post", svc.lastTitle)
	assert.Equal(t, "body", svc.lastDescription)
	assert.Equal(t, "cover.png", svc.lastImage.Name)
	svc.mu.Unlock()

	st := v.Status()
	assert.Equal(t, "Blog created successfully! Redirecting...", st.Text)
	assert.Equal(t, SeveritySuccess, st.Severity)

	path, _, ok := v.PendingRedirect()
	require.True(t, ok)
	assert.Equal(t, "/blog", path)

	assert.Eventually(t, func() bool {
		paths := nav.Paths()
		return len(paths) == 1 && paths[0] == "/blog"
	}, time.Second, 5*time.Millisecond)
}

func TestCreateViewSubmitFailureKeepsForm(t *testing.T) {
	svc := &fakeBlogSvc{createErr: &api.Error{Status: 500, Kind: api.KindRequest, Message: "disk full"}}
	v := NewCreateView(svc, nil)
	defer v.Close()

	v.SetTitle("My Post")
	v.SetDescription("body")
	img := pngImage(1024)
	v.SetImage(&img)
	v.Submit(context.Background())

	// Backend detail is hidden behind the one generic failure message.
	st := v.Status()
	assert.Equal(t, "Failed to create blog. Please try again.", st.Text)
	assert.Equal(t, SeverityError, st.Severity)
	assert.Equal(t, "My Post", v.Title())
	assert.Equal(t, "body", v.Description())
	require.NotNil(t, v.Image())

	_, _, ok := v.PendingRedirect()
	assert.False(t, ok)
}

func TestCreateViewAttachImageValidation(t *testing.T) {
	v := NewCreateView(&fakeBlogSvc{}, nil)
	defer v.Close()

	good := pngImage(1024)
	v.AttachImage(good)
	require.NotNil(t, v.Image())

	// A bad follow-up selection is rejected and the previous one kept.
	v.AttachImage(pngImage(models.ImageMaxBytes + 1))
	assert.Equal(t, "Image size must be less than 5MB", v.Status().Text)
	require.NotNil(t, v.Image())
	assert.Equal(t, good.Name, v.Image().Name)

	v.AttachImage(models.ImageFile{Name: "notes.txt", ContentType: "text/plain"})
	assert.Equal(t, "Please select an image file", v.Status().Text)
	assert.Equal(t, good.Name, v.Image().Name)
}

func TestCreateViewRemainingCounters(t *testing.T) {
	v := NewCreateView(&fakeBlogSvc{}, nil)
	defer v.Close()

	assert.Equal(t, models.TitleMaxLen, v.TitleRemaining())
	v.SetTitle("abcde")
	assert.Equal(t, models.TitleMaxLen-5, v.TitleRemaining())
	v.SetDescription("hi")
	assert.Equal(t, models.DescriptionMaxLen-2, v.DescriptionRemaining())
}

func TestCreateViewPreviewEncodes(t *testing.T) {
	v := NewCreateView(&fakeBlogSvc{}, nil)
	defer v.Close()

	img := models.ImageFile{Name: "dot.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	v.AttachImage(img)

	assert.Eventually(t, func() bool {
		return strings.HasPrefix(v.Preview(), "data:image/png;base64,")
	}, time.Second, 5*time.Millisecond)
}
