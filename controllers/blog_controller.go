package controllers

import (
	"html/template"
	"io"
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

// BlogController renders the list, detail, create and edit pages. Each
// handler builds the matching view machine, drives it for the request and
// renders its state; the view is discarded when the handler returns.
type BlogController struct {
	client *api.Client
}

// NewBlogController creates a BlogController backed by the given API client.
func NewBlogController(client *api.Client) *BlogController {
	return &BlogController{client: client}
}

func (b *BlogController) svc(ctx *gin.Context) *api.Client {
	return b.client.WithToken(middleware.SessionToken(ctx))
}

// currentUserName resolves the stored profile for the request's session, for
// the signed-in marker in the page header. Anonymous sessions yield "".
func currentUserName(ctx *gin.Context) string {
	token := middleware.SessionToken(ctx)
	if token == "" {
		return ""
	}
	profile := utils.LoadUserProfile(ctx.Request.Context(), token)
	if profile == nil {
		return ""
	}
	if profile.Name != "" {
		return profile.Name
	}
	return profile.Email
}

// List renders the blog list with the optional ?q= filter applied. The
// ?menu= parameter opens one post's action menu; the machine keeps at most
// one open.
func (b *BlogController) List(ctx *gin.Context) {
	v := views.NewListView(b.svc(ctx))
	defer v.Close()
	v.Load(ctx.Request.Context())
	v.SetFilter(ctx.Query("q"))
	if menu := ctx.Query("menu"); menu != "" {
		v.ToggleMenu(menu)
	}

	b.renderList(ctx, v, "")
}

// Delete handles the confirmed destructive action from the list page. On
// success the browser is sent back to a freshly fetched list; on failure the
// list is re-rendered with the error and without local splicing.
func (b *BlogController) Delete(ctx *gin.Context) {
	confirmed := ctx.PostForm("confirmed") == "true"
	v := views.NewListView(b.svc(ctx))
	defer v.Close()

	v.Delete(ctx.Request.Context(), ctx.Param("id"), confirmed)
	if v.Err() == "" {
		ctx.Redirect(http.StatusSeeOther, "/blog")
		return
	}
	deleteErr := v.Err()
	v.Load(ctx.Request.Context())
	b.renderList(ctx, v, deleteErr)
}

func (b *BlogController) renderList(ctx *gin.Context, v *views.ListView, actionErr string) {
	if err := v.Err(); err != "" && actionErr == "" {
		ctx.HTML(http.StatusOK, "list.html", gin.H{
			"site":  config.Get().SiteName,
			"user":  currentUserName(ctx),
			"error": err,
		})
		return
	}
	visible := v.Visible()
	ctx.HTML(http.StatusOK, "list.html", gin.H{
		"site":      config.Get().SiteName,
		"user":      currentUserName(ctx),
		"view":      v,
		"posts":     visible,
		"q":         v.Filter(),
		"count":     len(visible),
		"actionErr": actionErr,
	})
}

type commentVM struct {
	Name    string
	Initial string
	// Text is sanitized markup; html/template must not escape it a second
	// time, so it travels as template.HTML.
	Text      template.HTML
	TimeSince string
	Date      string
}

func commentViewModels(comments []models.Comment, now time.Time) []commentVM {
	vms := make([]commentVM, 0, len(comments))
	for _, cm := range comments {
		name := cm.User.Name
		if name == "" {
			name = cm.User.Email
		}
		initial := ""
		if name != "" {
			initial = string([]rune(name)[0:1])
		}
		vms = append(vms, commentVM{
			Name:      name,
			Initial:   initial,
			Text:      template.HTML(utils.Sanitize(cm.Comment)),
			TimeSince: views.TimeSince(now, parseWireTime(cm.CreatedAt)),
			Date:      formatWireDate(cm.CreatedAt),
		})
	}
	return vms
}

// Detail renders a single post with its comments. Any fetch failure is
// collapsed into the login prompt, matching the original client; the view
// still distinguishes the underlying failure kinds for callers that care.
func (b *BlogController) Detail(ctx *gin.Context) {
	v := views.NewDetailView(b.svc(ctx), ctx.Param("id"))
	defer v.Close()
	v.Load(ctx.Request.Context())

	b.renderDetail(ctx, v)
}

// CommentSubmit runs the comment submission machine for a detail page.
func (b *BlogController) CommentSubmit(ctx *gin.Context) {
	v := views.NewDetailView(b.svc(ctx), ctx.Param("id"))
	defer v.Close()
	v.Load(ctx.Request.Context())
	if !v.Failed() {
		v.SetCommentText(ctx.PostForm("comment"))
		v.SubmitComment(ctx.Request.Context())
	}

	b.renderDetail(ctx, v)
}

func (b *BlogController) renderDetail(ctx *gin.Context, v *views.DetailView) {
	if v.Failed() {
		_, prompt := v.Failure()
		ctx.HTML(http.StatusOK, "detail.html", gin.H{
			"site":   config.Get().SiteName,
			"user":   currentUserName(ctx),
			"failed": true,
			"prompt": prompt,
		})
		return
	}

	ctx.HTML(http.StatusOK, "detail.html", gin.H{
		"site":      config.Get().SiteName,
		"user":      currentUserName(ctx),
		"view":      v,
		"post":      v.Post(),
		"comments":  commentViewModels(v.Comments(), time.Now()),
		"status":    v.Status(),
		"draft":     v.CommentText(),
		"remaining": v.Remaining(),
	})
}

// CreateForm renders the empty create-post form.
func (b *BlogController) CreateForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "create.html", gin.H{
		"site":      config.Get().SiteName,
		"titleLeft": models.TitleMaxLen,
		"descLeft":  models.DescriptionMaxLen,
	})
}

// CreateSubmit validates and submits a new post. Form state is handed back
// to the template on failure so nothing the user typed is lost.
func (b *BlogController) CreateSubmit(ctx *gin.Context) {
	v := views.NewCreateView(b.svc(ctx), nil)
	defer v.Close()

	v.SetTitle(ctx.PostForm("title"))
	v.SetDescription(ctx.PostForm("description"))
	if file := readUpload(ctx); file != nil {
		v.SetImage(file)
	}
	v.Submit(ctx.Request.Context())

	data := gin.H{
		"site":        config.Get().SiteName,
		"status":      v.Status(),
		"title":       v.Title(),
		"description": v.Description(),
		"titleLeft":   v.TitleRemaining(),
		"descLeft":    v.DescriptionRemaining(),
	}
	if path, delay, ok := v.PendingRedirect(); ok {
		data["redirect"] = path
		data["redirectSecs"] = redirectSeconds(delay)
	}
	ctx.HTML(http.StatusOK, "create.html", data)
}

// EditForm renders the edit page seeded from the fetched post, or its
// terminal not-found state.
func (b *BlogController) EditForm(ctx *gin.Context) {
	v := views.NewEditView(b.svc(ctx), nil, ctx.Param("id"))
	defer v.Close()
	v.Load(ctx.Request.Context())

	b.renderEdit(ctx, v)
}

// EditSubmit applies the partial update and navigates to the detail page on
// success.
func (b *BlogController) EditSubmit(ctx *gin.Context) {
	var target string
	nav := views.NavigatorFunc(func(path string) { target = path })

	v := views.NewEditView(b.svc(ctx), nav, ctx.Param("id"))
	defer v.Close()
	v.Load(ctx.Request.Context())
	if !v.NotFound() {
		v.SetTitle(ctx.PostForm("title"))
		v.SetDescription(ctx.PostForm("description"))
		v.Save(ctx.Request.Context())
	}
	if target != "" {
		ctx.Redirect(http.StatusSeeOther, target)
		return
	}

	b.renderEdit(ctx, v)
}

func (b *BlogController) renderEdit(ctx *gin.Context, v *views.EditView) {
	if v.NotFound() {
		ctx.HTML(http.StatusOK, "edit.html", gin.H{
			"site":     config.Get().SiteName,
			"notFound": true,
		})
		return
	}
	ctx.HTML(http.StatusOK, "edit.html", gin.H{
		"site":        config.Get().SiteName,
		"post":        v.Post(),
		"title":       v.Title(),
		"description": v.Description(),
		"status":      v.Status(),
	})
}

func readUpload(ctx *gin.Context) *models.ImageFile {
	header, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	f, err := header.Open()
	if err != nil {
		utils.Sugar.Warnw("open uploaded image failed", "error", err)
		return nil
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		utils.Sugar.Warnw("read uploaded image failed", "error", err)
		return nil
	}
	return &models.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
}

func parseWireTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func formatWireDate(s string) string {
	t := parseWireTime(s)
	if t.IsZero() {
		return s
	}
	return t.Format("January 2, 2006 15:04")
}
