package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/supanugit/Blog-Frontend/models"
	"github.com/supanugit/Blog-Frontend/utils"
)

// Client talks to the blog backend REST API. All business logic lives behind
// that API; the client only issues requests and decodes the response envelope.
// Requests carry the session credential as a cookie when a token is attached.
//
// No timeout is applied to requests; a hung request leaves the caller's
// in-flight flag set until the context is cancelled upstream.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	cookieName string
	token      string
}

// New creates a Client for the given backend base URL. cookieName is the name
// of the session credential cookie attached to authenticated requests.
func New(baseURL, cookieName string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	return &Client{
		base:       u,
		httpClient: &http.Client{},
		cookieName: cookieName,
	}, nil
}

// WithToken returns a copy of the client that attaches the given session
// credential to every request. The token content is never inspected.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// ListPosts fetches all posts together with the identifiers of the posts the
// current session may mutate.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, []string, error) {
	env, err := c.do(ctx, http.MethodGet, "/blogs/", "", nil)
	if err != nil {
		return nil, nil, err
	}
	var data models.BlogListData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, nil, fmt.Errorf("decode blog list: %w", err)
	}
	return data.Blog, data.OwnedIDs, nil
}

// GetPost fetches a single post by identifier.
func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	env, err := c.do(ctx, http.MethodGet, "/blogs/"+url.PathEscape(id), "", nil)
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := json.Unmarshal(env.Data, &post); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &post, nil
}

// CreatePost submits a new post as a multipart form with the attached image.
func (c *Client) CreatePost(ctx context.Context, title, description string, image models.ImageFile) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("title", title); err != nil {
		return fmt.Errorf("write title field: %w", err)
	}
	if err := w.WriteField("description", description); err != nil {
		return fmt.Errorf("write description field: %w", err)
	}
	fw, err := createImagePart(w, image)
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := fw.Write(image.Data); err != nil {
		return fmt.Errorf("write image data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}
	_, err = c.do(ctx, http.MethodPost, "/blogs/", w.FormDataContentType(), &buf)
	return err
}

// UpdatePost sends a partial update of title and description only. The image
// is not editable in this flow.
func (c *Client) UpdatePost(ctx context.Context, id, title, description string) error {
	body, _ := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
	})
	_, err := c.do(ctx, http.MethodPatch, "/blogs/"+url.PathEscape(id), "application/json", bytes.NewReader(body))
	return err
}

// DeletePost deletes a post by identifier.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), "", nil)
	return err
}

// ListComments fetches the comments attached to a post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	env, err := c.do(ctx, http.MethodGet, "/blogs/comments/"+url.PathEscape(postID), "", nil)
	if err != nil {
		return nil, err
	}
	var comments []models.Comment
	if err := json.Unmarshal(env.Data, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

// AddComment creates a comment on a post. The text is sent as-is; callers are
// expected to trim and validate it first.
func (c *Client) AddComment(ctx context.Context, postID, text string) error {
	body, _ := json.Marshal(map[string]string{
		"id":       postID,
		"ucomment": text,
	})
	_, err := c.do(ctx, http.MethodPost, "/blogs/comment/"+url.PathEscape(postID), "application/json", bytes.NewReader(body))
	return err
}

// Login authenticates against the backend. On success it returns the user
// profile and the cookies set by the backend, so the caller can relay the
// session credential to the browser.
func (c *Client) Login(ctx context.Context, email, password string) (*models.UserProfile, []*http.Cookie, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	env, cookies, err := c.doRaw(ctx, http.MethodPost, "/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	var profile models.UserProfile
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &profile); err != nil {
			return nil, nil, fmt.Errorf("decode user profile: %w", err)
		}
	}
	return &profile, cookies, nil
}

// Register creates a new account. A 2xx response counts as success even when
// the body is empty.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	_, err := c.do(ctx, http.MethodPost, "/auth/register", "application/json", bytes.NewReader(body))
	return err
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*models.Envelope, error) {
	env, _, err := c.doRaw(ctx, method, path, contentType, body)
	return env, err
}

func (c *Client) doRaw(ctx context.Context, method, path, contentType string, body io.Reader) (*models.Envelope, []*http.Cookie, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: c.token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.Sugar.Warnw("backend request failed", "method", method, "path", path, "error", err)
		return nil, nil, &Error{Kind: KindRequest}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Status: resp.StatusCode, Kind: KindRequest}
	}

	var env models.Envelope
	if len(raw) > 0 {
		// Tolerate empty or non-JSON bodies; the register endpoint answers
		// with an empty object on success.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 300 {
		utils.Sugar.Infow("backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", env.Message)
		return nil, nil, newError(resp.StatusCode, env.Message)
	}

	// A 2xx body may still report success:false. Probe for the field so that
	// envelope-less success bodies are not mistaken for failures.
	var probe struct {
		Success *bool `json:"success"`
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &probe)
	}
	if probe.Success != nil && !*probe.Success {
		return nil, nil, newError(resp.StatusCode, env.Message)
	}

	utils.Logger.Debug("backend request ok",
		zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
	return &env, resp.Cookies(), nil
}

func createImagePart(w *multipart.Writer, image models.ImageFile) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.Name))
	ct := image.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)
	return w.CreatePart(h)
}
