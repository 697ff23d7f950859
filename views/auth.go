package views

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/models"
)

// Messages shown by the auth views.
const (
	msgLoginMissing    = "Please enter email and password"
	msgEmailInvalid    = "Please enter a valid email address"
	msgLoginOK         = "Login successful!"
	msgLoginFailed     = "Invalid credentials"
	msgRegisterMissing = "All fields are required"
	msgPasswordShort   = "Password must be at least 6 characters long"
	msgPasswordMatch   = "Passwords do not match"
	msgRegisterOK      = "Account created successfully! Redirecting to login..."
	msgRegisterFailed  = "Something went wrong"
	msgServerDown      = "Unable to reach the server. Please try again later."

	loginRedirectDelay    = 1500 * time.Millisecond
	registerRedirectDelay = 2 * time.Second
	passwordMinLen        = 6
)

// validEmail is the basic shape check: an "@" with a "." somewhere after it.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

// LoginView validates and submits credentials. On success the returned
// profile is persisted for reuse by other views and a delayed redirect to the
// home page is scheduled.
type LoginView struct {
	svc   AuthService
	store ProfileStore
	nav   Navigator

	mu       sync.Mutex
	closed   bool
	email    string
	password string
	loading  bool
	status   Status
	profile  *models.UserProfile

	redirectDelay time.Duration
	timers        timerGroup
}

// NewLoginView creates a login view. store and nav may be nil.
func NewLoginView(svc AuthService, store ProfileStore, nav Navigator) *LoginView {
	return &LoginView{svc: svc, store: store, nav: nav, redirectDelay: loginRedirectDelay}
}

// SetCredentials updates the form fields.
func (v *LoginView) SetCredentials(email, password string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.email = email
	v.password = password
}

// Submit validates the credentials and issues the login request. Validation
// failures are warnings and never reach the network; the loading flag is
// cleared on every path.
func (v *LoginView) Submit(ctx context.Context) {
	v.mu.Lock()
	if v.closed || v.loading {
		v.mu.Unlock()
		return
	}
	v.status = Status{}
	email, password := v.email, v.password
	if email == "" || password == "" {
		v.status = warning(msgLoginMissing)
		v.mu.Unlock()
		return
	}
	if !validEmail(email) {
		v.status = warning(msgEmailInvalid)
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.loading = false
		v.mu.Unlock()
	}()

	profile, err := v.svc.Login(ctx, email, password)
	if err != nil {
		v.mu.Lock()
		if !v.closed {
			v.status = failure(api.MessageOr(err, msgLoginFailed))
		}
		v.mu.Unlock()
		return
	}

	if v.store != nil {
		// Best effort: a failed save must not block the login flow.
		_ = v.store.SaveProfile(ctx, profile)
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.profile = profile
	v.status = success(msgLoginOK)
	v.mu.Unlock()

	if v.nav != nil {
		v.timers.After(v.redirectDelay, func() { v.nav.Replace("/") })
	}
}

// Profile returns the authenticated profile after a successful submit.
func (v *LoginView) Profile() *models.UserProfile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.profile
}

// Loading reports whether the login request is in flight.
func (v *LoginView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Status returns the current user-facing message.
func (v *LoginView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// PendingRedirect reports the scheduled post-login navigation.
func (v *LoginView) PendingRedirect() (path string, delay time.Duration, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status.Severity != SeveritySuccess {
		return "", 0, false
	}
	return "/", v.redirectDelay, true
}

// Close discards the view and cancels the pending redirect.
func (v *LoginView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.timers.Stop()
}

// RegisterView validates and submits a new account. Validation runs in a
// fixed order and the first failing check wins: all fields present, email
// shape, password length, password confirmation.
type RegisterView struct {
	svc AuthService
	nav Navigator

	mu       sync.Mutex
	closed   bool
	email    string
	password string
	confirm  string
	loading  bool
	status   Status

	redirectDelay time.Duration
	timers        timerGroup
}

// NewRegisterView creates a register view. nav may be nil.
func NewRegisterView(svc AuthService, nav Navigator) *RegisterView {
	return &RegisterView{svc: svc, nav: nav, redirectDelay: registerRedirectDelay}
}

// SetFields updates the form fields.
func (v *RegisterView) SetFields(email, password, confirm string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.email = email
	v.password = password
	v.confirm = confirm
}

// Fields returns the current form values; they survive failed submissions.
func (v *RegisterView) Fields() (email, password, confirm string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.email, v.password, v.confirm
}

// Submit validates the form and issues the registration request. On success
// the form is cleared and a delayed redirect to the login page is scheduled;
// on failure the form stays populated for correction.
func (v *RegisterView) Submit(ctx context.Context) {
	v.mu.Lock()
	if v.closed || v.loading {
		v.mu.Unlock()
		return
	}
	v.status = Status{}
	email, password, confirm := v.email, v.password, v.confirm
	switch {
	case email == "" || password == "" || confirm == "":
		v.status = warning(msgRegisterMissing)
	case !validEmail(email):
		v.status = warning(msgEmailInvalid)
	case len(password) < passwordMinLen:
		v.status = warning(msgPasswordShort)
	case password != confirm:
		v.status = warning(msgPasswordMatch)
	}
	if !v.status.IsZero() {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.loading = false
		v.mu.Unlock()
	}()

	err := v.svc.Register(ctx, email, password)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	if err != nil {
		fallback := msgRegisterFailed
		if api.IsUnreachable(err) {
			fallback = msgServerDown
		}
		v.status = failure(api.MessageOr(err, fallback))
		v.mu.Unlock()
		return
	}
	v.email, v.password, v.confirm = "", "", ""
	v.status = success(msgRegisterOK)
	v.mu.Unlock()

	if v.nav != nil {
		v.timers.After(v.redirectDelay, func() { v.nav.Replace("/login") })
	}
}

// Loading reports whether the registration request is in flight.
func (v *RegisterView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Status returns the current user-facing message.
func (v *RegisterView) Status() Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// PendingRedirect reports the scheduled post-register navigation.
func (v *RegisterView) PendingRedirect() (path string, delay time.Duration, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status.Severity != SeveritySuccess {
		return "", 0, false
	}
	return "/login", v.redirectDelay, true
}

// Close discards the view and cancels the pending redirect.
func (v *RegisterView) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.timers.Stop()
}
