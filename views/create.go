package views

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/supanugit/Blog-Frontend/models"
)

// Messages shown by the create view.
const (
	msgCreateRequired   = "Title and description are required!"
	msgCreateNoImage    = "Please select an image for your blog"
	msgImageTooLarge    = "Image size must be less than 5MB"
	msgImageNotImage    = "Please select an image file"
	msgCreateOK         = "Blog created successfully! Redirecting..."
	msgCreateFailed     = "Failed to create blog. Please try again."
	createRedirectDelay = 2 * time.Second
	createRedirectPath  = "/blog"
)

// CreateView accumulates a new post draft: title, description and one image
// file. Form state is preserved across failed submissions so the user can
// retry without retyping.
type CreateView struct {
	svc BlogService
	nav Navigator

	mu          sync.Mutex
	closed      bool
	title       string
	description string
	image       *models.ImageFile
	preview     string
	submitting  bool
	status      Status

	redirectDelay time.Duration
	timers        timerGroup
}

// NewCreateView creates a create-post view. nav may be nil when the caller
// handles redirects itself.
func NewCreateView(svc BlogService, nav Navigator) *CreateView {
	return &CreateView{svc: svc, nav: nav, redirectDelay: createRedirectDelay}
}

// SetTitle updates the draft title.
func (v *CreateView) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.title = title
}

// SetDescription updates the draft body.
func (v *CreateView) SetDescription(description string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.description = description
}

// TitleRemaining returns how many characters the title may still grow by.
func (v *CreateView) TitleRemaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return models.TitleMaxLen - len([]rune(v.title))
}

// DescriptionRemaining returns how many characters the body may still grow by.
func (v *CreateView) DescriptionRemaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return models.DescriptionMaxLen - len([]rune(v.description))
}

// Title returns the draft title.
func (v *CreateView) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// Description returns the draft body.
func (v *CreateView) Description() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.description
}

// AttachImage validates and stores the selected file, then builds a local
// base64 preview asynchronously. The preview never touches the network and
// cannot block submission. Oversized or non-image files are rejected with an
// error message and the previous selection is kept.
func (v *CreateView) AttachImage(file models.ImageFile) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if file.Size() > models.ImageMaxBytes {
		v.status = failure(msgImageTooLarge)
		return
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		v.status = failure(msgImageNotImage)
		return
	}
	v.image = &file
	v.status = Status{}

	go func(f models.ImageFile) {
		dataURL := "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed || v.image == nil || v.image.Name != f.Name {
			return
		}
		v.preview = dataURL
	}(file)
}

// SetImage stores a file without the selection-time checks of AttachImage.
// Submit still validates size and type, so callers that only see the file at
// submission time get the full ordered validation there.
func (v *CreateView) SetImage(file *models.ImageFile) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.image = file
}

// Preview returns the base64 data URL of the selected image once the
// asynchronous encode has finished, or "".
func (v *CreateView) Preview() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preview
}

// Image returns the selected file, or nil.
func (v *CreateView) Image() *models.ImageFile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.image
}

// Submit validates the draft and issues the multipart creation request. The
// checks run in order: required text fields, image present, image size, image
// type; the first failing check wins and no request is issued. On success a
// redirect to the list page is scheduled; on failure the form is preserved.
func (v *CreateView) Submit(ctx context.Context) {
	v.mu.Lock()
	if v.closed || v.submitting {
		v.mu.Unlock()
		return
	}
	title := strings.TrimSpace(v.title)
	description := strings.TrimSpace(v.description)
	if title == "" || description == "" {
		v.status = warning(msgCreateRequired)
		v.mu.Unlock()
		return
	}
	if v.image == nil {
		v.status = warning(msgCreateNoImage)
		v.mu.Unlock()
		return
	}
	image := *v.image
	if image.Size() > models.ImageMaxBytes {
		v.status = failure(msgImageTooLarge)
		v.mu.Unlock()
		return
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		v.status = failure(msgImageNotImage)
		v.mu.Unlock()
		return
	}
	v.submitting = true
	v.status = Status{}
	v.mu.Unlock()

	err := v.svc.CreatePost(ctx, title, description, image)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.submitting = false
	if err != nil {
		v.status = failure(msgCreateFailed)
		return
	}
	v.status = success(msgCreateOK)
	if v.nav != nil {
		v.timers.After(v.redirectDelay, func() { v.nav.Replace(createRedirectPath) })
	}
}

// PendingRedirect reports the scheduled post-success navigation, for renderers
// that express the delay themselves.
func (v *CreateView) PendingRedirect() (path string, delay time.Duration, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status.Severity != SeveritySuccess {
		return "", 0, false
	}
	return createRedirectPath, v.redirectDelay, true
}

// Submitting reports whether the creation request is in flight.
func (v *CreateView) Submitting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitting
}

// Status returns the current user-facing message.
func (v *CreateView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// Close discards the view and cancels the pending redirect.
func (v *CreateView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.timers.Stop()
}
