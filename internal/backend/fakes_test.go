package backend

import (
	"context"
	"io"
	"sort"
	"sync"

	articles "github.com/cyberhouse-gh/cyberhouse-portal/internal/articles/domain"
	authdomain "github.com/cyberhouse-gh/cyberhouse-portal/internal/auth/domain"
	contact "github.com/cyberhouse-gh/cyberhouse-portal/internal/contact/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/failure"
	media "github.com/cyberhouse-gh/cyberhouse-portal/internal/media/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/media/objectstore"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/news"
	projects "github.com/cyberhouse-gh/cyberhouse-portal/internal/projects/domain"
	"github.com/cyberhouse-gh/cyberhouse-portal/internal/subscription"
)

type fakeIdentity struct {
	accounts    map[string]string // email -> password
	calls       int
	profileErr  error
	resetEmails []string
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{accounts: map[string]string{}}
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (*authdomain.Credentials, error) {
	f.calls++
	if _, exists := f.accounts[email]; exists {
		return nil, failure.WithCode(failure.KindEmailInUse, "EMAIL_EXISTS", nil)
	}
	f.accounts[email] = password
	return &authdomain.Credentials{
		Identity: authdomain.Identity{UID: "uid-" + email, Email: email},
		IDToken:  "token-" + email,
	}, nil
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (*authdomain.Credentials, error) {
	f.calls++
	stored, exists := f.accounts[email]
	if !exists {
		return nil, failure.WithCode(failure.KindUserNotFound, "EMAIL_NOT_FOUND", nil)
	}
	if stored != password {
		return nil, failure.WithCode(failure.KindWrongPassword, "INVALID_PASSWORD", nil)
	}
	return &authdomain.Credentials{
		Identity: authdomain.Identity{UID: "uid-" + email, Email: email},
		IDToken:  "token-" + email,
	}, nil
}

func (f *fakeIdentity) SignInAnonymously(ctx context.Context) (*authdomain.Credentials, error) {
	f.calls++
	return &authdomain.Credentials{Identity: authdomain.Identity{UID: "anon-1", Anonymous: true}}, nil
}

func (f *fakeIdentity) SendPasswordReset(ctx context.Context, email string) error {
	f.calls++
	f.resetEmails = append(f.resetEmails, email)
	return nil
}

func (f *fakeIdentity) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*authdomain.Identity, error) {
	f.calls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return &authdomain.Identity{DisplayName: displayName, PhotoURL: photoURL}, nil
}

type fakeSessions struct {
	mu      sync.Mutex
	creds   map[string]authdomain.Credentials
	saveErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{creds: map[string]authdomain.Credentials{}}
}

func (f *fakeSessions) Save(ctx context.Context, sid string, creds authdomain.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.creds[sid] = creds
	return nil
}

func (f *fakeSessions) Get(ctx context.Context, sid string) (*authdomain.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.creds[sid]
	if !ok {
		return nil, authdomain.ErrSessionNotFound
	}
	return &c, nil
}

func (f *fakeSessions) Delete(ctx context.Context, sid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.creds, sid)
	return nil
}

type fakeUsers struct {
	profiles map[string]authdomain.Profile
	err      error
}

func (f *fakeUsers) Upsert(ctx context.Context, uid string, p authdomain.Profile) error {
	if f.err != nil {
		return f.err
	}
	if f.profiles == nil {
		f.profiles = map[string]authdomain.Profile{}
	}
	f.profiles[uid] = p
	return nil
}

type fakeArticles struct {
	items map[string]articles.Article
	err   error
}

func (f *fakeArticles) Create(ctx context.Context, a *articles.Article) error {
	if f.err != nil {
		return f.err
	}
	if f.items == nil {
		f.items = map[string]articles.Article{}
	}
	f.items[a.ID] = *a
	return nil
}

func (f *fakeArticles) Get(ctx context.Context, id string) (*articles.Article, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, articles.ErrArticleNotFound
	}
	return &a, nil
}

// ListByDateDesc orders like the Firestore query does.
func (f *fakeArticles) ListByDateDesc(ctx context.Context) ([]articles.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]articles.Article, 0, len(f.items))
	for _, a := range f.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// fakeProjects pushes the full list to every watcher after each create.
type fakeProjects struct {
	mu       sync.Mutex
	list     []projects.Project
	watchers []chan []projects.Project
	nextID   int
	err      error
}

func (f *fakeProjects) Create(ctx context.Context, p *projects.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	p.ID = "p" + string(rune('0'+f.nextID))
	f.list = append([]projects.Project{*p}, f.list...)
	snapshot := append([]projects.Project(nil), f.list...)
	for _, w := range f.watchers {
		w <- snapshot
	}
	return nil
}

func (f *fakeProjects) List(ctx context.Context) ([]projects.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]projects.Project(nil), f.list...), f.err
}

func (f *fakeProjects) Watch(ctx context.Context) *subscription.Subscription[[]projects.Project] {
	ch := make(chan []projects.Project, 16)
	f.mu.Lock()
	f.watchers = append(f.watchers, ch)
	initial := append([]projects.Project(nil), f.list...)
	f.mu.Unlock()

	return subscription.Start(ctx, func(ctx context.Context, emit subscription.Emit[[]projects.Project]) error {
		if !emit(initial) {
			return nil
		}
		for {
			select {
			case <-ctx.Done():
				return nil
			case list := <-ch:
				if !emit(list) {
					return nil
				}
			}
		}
	})
}

type fakeMedia struct {
	assets []media.Asset
	err    error
}

func (f *fakeMedia) Create(ctx context.Context, a *media.Asset) error {
	if f.err != nil {
		return f.err
	}
	a.ID = "m1"
	f.assets = append(f.assets, *a)
	return nil
}

func (f *fakeMedia) List(ctx context.Context) ([]media.Asset, error) {
	return f.assets, f.err
}

type fakeContact struct {
	messages []contact.Message
	err      error
}

func (f *fakeContact) Create(ctx context.Context, m *contact.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, *m)
	return "c1", nil
}

// fakeObjects reads the body in chunks, reporting progress like a
// resumable upload.
type fakeObjects struct {
	chunk   int
	failAt  int64
	err     error
	paths   []string
	written int64
}

func (f *fakeObjects) Put(ctx context.Context, obj objectstore.Object) (string, error) {
	f.paths = append(f.paths, obj.Path)
	buf := make([]byte, f.chunk)
	var total int64
	for {
		n, err := obj.Body.Read(buf)
		total += int64(n)
		if f.failAt > 0 && total >= f.failAt {
			return "", f.err
		}
		if n > 0 && obj.Progress != nil {
			obj.Progress(total)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	f.written = total
	return "https://storage.example/" + obj.Path, nil
}

type fakeNews struct {
	headlines []news.Headline
	err       error
}

func (f *fakeNews) Feed(ctx context.Context) ([]news.Headline, error) {
	return f.headlines, f.err
}
