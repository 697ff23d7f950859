package views

import (
	"context"
	"sync"

	"github.com/supanugit/Blog-Frontend/models"
)

// fakeBlogSvc records calls and serves canned responses for the blog views.
type fakeBlogSvc struct {
	mu sync.Mutex

	posts    []models.Post
	owned    []string
	post     *models.Post
	comments []models.Comment

	listErr     error
	getErr      error
	createErr   error
	updateErr   error
	deleteErr   error
	commentsErr error
	addErr      error

	listCalls     int
	getCalls      int
	createCalls   int
	updateCalls   int
	deleteCalls   int
	commentsCalls int
	addCalls      int

	lastAddText     string
	lastTitle       string
	lastDescription string
	lastImage       models.ImageFile
	lastDeleteID    string
}

func (f *fakeBlogSvc) ListPosts(ctx context.Context) ([]models.Post, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	return f.posts, f.owned, nil
}

func (f *fakeBlogSvc) GetPost(ctx context.Context, id string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.post, nil
}

func (f *fakeBlogSvc) CreatePost(ctx context.Context, title, description string, image models.ImageFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.lastTitle = title
	f.lastDescription = description
	f.lastImage = image
	return f.createErr
}

func (f *fakeBlogSvc) UpdatePost(ctx context.Context, id, title, description string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.lastTitle = title
	f.lastDescription = description
	return f.updateErr
}

func (f *fakeBlogSvc) DeletePost(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeBlogSvc) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commentsCalls++
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return f.comments, nil
}

func (f *fakeBlogSvc) AddComment(ctx context.Context, postID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	f.lastAddText = text
	return f.addErr
}

// fakeAuthSvc records auth calls and serves canned responses.
type fakeAuthSvc struct {
	mu sync.Mutex

	profile     *models.UserProfile
	loginErr    error
	registerErr error

	loginCalls    int
	registerCalls int
	lastEmail     string
	lastPassword  string
}

func (f *fakeAuthSvc) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	f.lastEmail = email
	f.lastPassword = password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.profile, nil
}

func (f *fakeAuthSvc) Register(ctx context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	f.lastEmail = email
	f.lastPassword = password
	return f.registerErr
}

// recordingStore captures saved profiles.
type recordingStore struct {
	mu       sync.Mutex
	profiles []*models.UserProfile
	saveErr  error
}

func (r *recordingStore) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, profile)
	return r.saveErr
}

// recordingNav captures redirect targets.
type recordingNav struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingNav) Replace(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recordingNav) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func samplePosts() []models.Post {
	return []models.Post{
		{
			ID:          "p1",
			Title:       "Hello World",
			Description: "An introduction to the blog",
			Author:      models.Author{ID: "u1", Name: "Alice"},
		},
		{
			ID:          "p2",
			Title:       "Go Concurrency",
			Description: "Channels and goroutines",
			Author:      models.Author{ID: "u2", Name: "Bob"},
		},
		{
			ID:          "p3",
			Title:       "Cooking",
			Description: "Say hello to sourdough",
			Author:      models.Author{ID: "u1", Name: "Alice"},
		},
	}
}
