package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	contact "github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

type ArticleInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// CreateArticle stores a new article by the signed-in user and returns it
// so callers can prepend it to an already fetched list.
func (a *Adapter) CreateArticle(ctx context.Context, who *authdomain.Identity, in ArticleInput) Result[articles.Article] {
	const op = "create_article"
	if who == nil {
		return fail[articles.Article](a, ctx, op, failure.New(failure.KindUnauthenticated, nil), "")
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	switch {
	case title == "":
		return fail[articles.Article](a, ctx, op, failure.Validation("Please enter an article title"), "")
	case content == "":
		return fail[articles.Article](a, ctx, op, failure.Validation("Please enter the article content"), "")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = articles.DefaultCategory
	}
	author := who.Email
	if author == "" {
		author = "Anonymous"
	}

	article := articles.Article{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    author,
		AuthorUID: who.UID,
		Category:  category,
		Image:     strings.TrimSpace(in.Image),
		Date:      a.now().UTC(),
	}
	if err := a.articles.Create(ctx, &article); err != nil {
		return fail[articles.Article](a, ctx, op, err, "Failed to submit article")
	}
	return ok(article)
}

func (a *Adapter) GetArticleByID(ctx context.Context, id string) Result[articles.Article] {
	const op = "get_article"
	id = strings.TrimSpace(id)
	notFound := failure.NotFound(fmt.Sprintf("Article with ID '%s' not found", id))
	if id == "" {
		return fail[articles.Article](a, ctx, op, notFound, "")
	}

	article, err := a.articles.Get(ctx, id)
	if errors.Is(err, articles.ErrArticleNotFound) || failure.Is(err, failure.KindNotFound) {
		notFound.Err = err
		return fail[articles.Article](a, ctx, op, notFound, "")
	}
	if err != nil {
		return fail[articles.Article](a, ctx, op, err, "Failed to load article")
	}
	return ok(*article)
}

// ListArticles is one bulk read, newest first.
func (a *Adapter) ListArticles(ctx context.Context) Result[[]articles.Article] {
	list, err := a.articles.ListByDateDesc(ctx)
	if err != nil {
		return fail[[]articles.Article](a, ctx, "list_articles", err, "Failed to fetch articles. Please try again later.")
	}
	if list == nil {
		list = []articles.Article{}
	}
	return ok(list)
}

type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name"`
}

// SubmitProject snapshots the submitter's profile and stores the project
// as Pending Review.
func (a *Adapter) SubmitProject(ctx context.Context, who *authdomain.Identity, in ProjectInput) Result[projects.Project] {
	const op = "submit_project"
	if who == nil {
		return fail[projects.Project](a, ctx, op, failure.New(failure.KindUnauthenticated, nil), "")
	}

	title := strings.TrimSpace(in.Title)
	desc := strings.TrimSpace(in.Description)
	name := strings.TrimSpace(in.Name)
	switch {
	case title == "":
		return fail[projects.Project](a, ctx, op, failure.Validation("Please enter a project title"), "")
	case desc == "":
		return fail[projects.Project](a, ctx, op, failure.Validation("Please enter a project description"), "")
	case name == "":
		return fail[projects.Project](a, ctx, op, failure.Validation("Please enter your name"), "")
	}

	avatar := who.PhotoURL
	if avatar == "" {
		avatar = authdomain.AvatarURL(name)
	}
	project := projects.Project{
		Title:       title,
		Description: desc,
		UserID:      who.UID,
		UserProfile: projects.UserProfile{Name: name, Email: who.Email, Avatar: avatar},
		Status:      projects.StatusPendingReview,
		CreatedAt:   a.now().UTC(),
	}
	if err := a.projects.Create(ctx, &project); err != nil {
		return fail[projects.Project](a, ctx, op, err, "Failed to submit project")
	}
	return ok(project)
}

func (a *Adapter) ListProjects(ctx context.Context) Result[[]projects.Project] {
	list, err := a.projects.List(ctx)
	if err != nil {
		return fail[[]projects.Project](a, ctx, "list_projects", err, "Failed to fetch projects. Please try again later.")
	}
	if list == nil {
		list = []projects.Project{}
	}
	return ok(list)
}

// WatchProjects opens a live, newest-first project subscription. The
// caller owns it and must Stop it. Errors arrive on Err and can be turned
// into a user message with ProjectStreamError.
func (a *Adapter) WatchProjects(ctx context.Context) *subscription.Subscription[[]projects.Project] {
	return a.projects.Watch(ctx)
}

// ProjectStreamError logs a live-subscription error and returns the message
// shown to users.
func (a *Adapter) ProjectStreamError(ctx context.Context, err error) Result[struct{}] {
	return fail[struct{}](a, ctx, "watch_projects", err, "Failed to fetch projects. Please try again later.")
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (a *Adapter) SendContactMessage(ctx context.Context, in ContactInput) Result[struct{}] {
	const op = "send_contact_message"
	msg := contact.Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return fail[struct{}](a, ctx, op, failure.Validation("Please fill in all required fields"), "")
	}

	msg.Status = contact.StatusNew
	msg.CreatedAt = a.now().UTC()
	if _, err := a.contact.Create(ctx, &msg); err != nil {
		return fail[struct{}](a, ctx, op, err, "Failed to send message")
	}
	return ok(struct{}{})
}
