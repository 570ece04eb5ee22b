// Package backend is the single gateway from views and API handlers to the
// hosted platform. Every operation returns a Result; platform, transport
// and validation errors are normalized into failure kinds.
package backend

import (
	"context"
	"time"

	fbauth "firebase.google.com/go/v4/auth"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	contact "github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/logging"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/objectstore"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

type IdentityService interface {
	SignUp(ctx context.Context, email, password string) (*authdomain.Credentials, error)
	SignIn(ctx context.Context, email, password string) (*authdomain.Credentials, error)
	SignInAnonymously(ctx context.Context) (*authdomain.Credentials, error)
	SendPasswordReset(ctx context.Context, email string) error
	UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*authdomain.Identity, error)
}

type SessionStore interface {
	Save(ctx context.Context, sid string, creds authdomain.Credentials) error
	Get(ctx context.Context, sid string) (*authdomain.Credentials, error)
	Delete(ctx context.Context, sid string) error
}

type UserStore interface {
	Upsert(ctx context.Context, uid string, p authdomain.Profile) error
}

type ArticleStore interface {
	Create(ctx context.Context, a *articles.Article) error
	Get(ctx context.Context, id string) (*articles.Article, error)
	ListByDateDesc(ctx context.Context) ([]articles.Article, error)
}

type ProjectStore interface {
	Create(ctx context.Context, p *projects.Project) error
	List(ctx context.Context) ([]projects.Project, error)
	Watch(ctx context.Context) *subscription.Subscription[[]projects.Project]
}

type MediaStore interface {
	Create(ctx context.Context, a *media.Asset) error
	List(ctx context.Context) ([]media.Asset, error)
}

type ContactStore interface {
	Create(ctx context.Context, m *contact.Message) (string, error)
}

type NewsSource interface {
	Feed(ctx context.Context) ([]news.Headline, error)
}

// TokenVerifier is satisfied by the Firebase Admin auth client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type Deps struct {
	Identity IdentityService
	Sessions SessionStore
	Users    UserStore
	Articles ArticleStore
	Projects ProjectStore
	Media    MediaStore
	Contact  ContactStore
	Objects  objectstore.Store
	Verifier TokenVerifier
	News     NewsSource
	Log      *logging.Logger

	MaxUploadBytes int64
	Now            func() time.Time
}

type Adapter struct {
	identity IdentityService
	sessions SessionStore
	users    UserStore
	articles ArticleStore
	projects ProjectStore
	media    MediaStore
	contact  ContactStore
	objects  objectstore.Store
	verifier TokenVerifier
	news     NewsSource
	log      *logging.Logger

	maxUpload int64
	now       func() time.Time
}

func New(d Deps) *Adapter {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	if d.MaxUploadBytes <= 0 {
		d.MaxUploadBytes = media.DefaultMaxBytes
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Adapter{
		identity:  d.Identity,
		sessions:  d.Sessions,
		users:     d.Users,
		articles:  d.Articles,
		projects:  d.Projects,
		media:     d.Media,
		contact:   d.Contact,
		objects:   d.Objects,
		verifier:  d.Verifier,
		news:      d.News,
		log:       d.Log.Component("backend"),
		maxUpload: d.MaxUploadBytes,
		now:       d.Now,
	}
}
