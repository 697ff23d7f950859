package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/supanugit/Blog-Frontend/api"
	"github.com/supanugit/Blog-Frontend/config"
	"github.com/supanugit/Blog-Frontend/middleware"
	"github.com/supanugit/Blog-Frontend/models"
	"github.com/supanugit/Blog-Frontend/utils"
	"github.com/supanugit/Blog-Frontend/views"
)

// AuthController renders the login and register pages and relays backend
// session cookies to the browser.
type AuthController struct {
	client *api.Client
}

// NewAuthController creates an AuthController backed by the given API client.
func NewAuthController(client *api.Client) *AuthController {
	return &AuthController{client: client}
}

// loginService adapts the API client to the auth view and captures the
// Set-Cookie headers the backend sends with a successful login.
type loginService struct {
	client  *api.Client
	cookies []*http.Cookie
}

func (s *loginService) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	profile, cookies, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.cookies = cookies
	return profile, nil
}

func (s *loginService) Register(ctx context.Context, email, password string) error {
	return s.client.Register(ctx, email, password)
}

// profileSaver persists the login payload keyed by the freshly issued session
// credential, like the original client stashed it in browser storage.
type profileSaver struct {
	svc *loginService
}

func (p *profileSaver) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	name := config.Get().SessionCookieName
	for _, ck := range p.svc.cookies {
		if ck.Name == name && ck.Value != "" {
			return utils.SaveUserProfile(ctx, ck.Value, profile)
		}
	}
	return nil
}

// LoginForm renders the empty login page.
func (a *AuthController) LoginForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"site": config.Get().SiteName,
	})
}

// LoginSubmit runs the login machine and, on success, forwards the backend's
// session cookies to the browser before scheduling the home redirect.
func (a *AuthController) LoginSubmit(ctx *gin.Context) {
	svc := &loginService{client: a.client}
	v := views.NewLoginView(svc, &profileSaver{svc: svc}, nil)
	defer v.Close()

	v.SetCredentials(ctx.PostForm("email"), ctx.PostForm("password"))
	v.Submit(ctx.Request.Context())

	for _, ck := range svc.cookies {
		http.SetCookie(ctx.Writer, ck)
	}

	data := gin.H{
		"site":   config.Get().SiteName,
		"status": v.Status(),
		"email":  ctx.PostForm("email"),
	}
	if path, delay, ok := v.PendingRedirect(); ok {
		data["redirect"] = path
		data["redirectSecs"] = redirectSeconds(delay)
	}
	ctx.HTML(http.StatusOK, "login.html", data)
}

// RegisterForm renders the empty register page.
func (a *AuthController) RegisterForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{
		"site": config.Get().SiteName,
	})
}

// RegisterSubmit runs the registration machine. On success the form comes
// back empty with the delayed login redirect; on failure the typed values
// are preserved.
func (a *AuthController) RegisterSubmit(ctx *gin.Context) {
	v := views.NewRegisterView(&loginService{client: a.client}, nil)
	defer v.Close()

	v.SetFields(ctx.PostForm("email"), ctx.PostForm("password"), ctx.PostForm("confirmPassword"))
	v.Submit(ctx.Request.Context())

	email, password, confirm := v.Fields()
	data := gin.H{
		"site":     config.Get().SiteName,
		"status":   v.Status(),
		"email":    email,
		"password": password,
		"confirm":  confirm,
	}
	if path, delay, ok := v.PendingRedirect(); ok {
		data["redirect"] = path
		data["redirectSecs"] = redirectSeconds(delay)
	}
	ctx.HTML(http.StatusOK, "register.html", data)
}

// Logout drops the stored profile and expires the session cookie.
func (a *AuthController) Logout(ctx *gin.Context) {
	cfg := config.Get()
	if token := middleware.SessionToken(ctx); token != "" {
		utils.DropUserProfile(ctx.Request.Context(), token)
	}
	ctx.SetCookie(cfg.SessionCookieName, "", -1, "/", "", false, true)
	ctx.Redirect(http.StatusSeeOther, "/login")
}

// redirectSeconds rounds a redirect delay up to whole seconds for the
// meta-refresh header, which cannot express sub-second delays.
func redirectSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
