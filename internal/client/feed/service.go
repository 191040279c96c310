package feed

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/dmitrijs2005/gophsocial/internal/timex"
	"github.com/google/uuid"
)

const (
	MaxPostLength = 500

	DefaultLoadDelay = 500 * time.Millisecond
	DefaultPostDelay = 1000 * time.Millisecond
)

var (
	ErrNotAuthenticated = errors.New("feed requires a signed-in user")
	ErrEmptyPost        = errors.New("post is empty")
	ErrPostTooLong      = fmt.Errorf("post is longer than %d characters", MaxPostLength)
	ErrPostNotFound     = errors.New("post not found")
)

// Session is the read side of the session store.
type Session interface {
	User() (session.User, bool)
	ProfilePhoto() string
}

type Option func(*Service)

func WithLoadDelay(d time.Duration) Option {
	return func(s *Service) { s.loadDelay = d }
}

func WithPostDelay(d time.Duration) Option {
	return func(s *Service) { s.postDelay = d }
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

type Service struct {
	sess      Session
	loadDelay time.Duration
	postDelay time.Duration
	newID     func() string
	log       logging.Logger

	mu    sync.Mutex
	posts []Post
}

func NewService(sess Session, opts ...Option) *Service {
	s := &Service{
		sess:      sess,
		loadDelay: DefaultLoadDelay,
		postDelay: DefaultPostDelay,
		newID:     uuid.NewString,
		log:       logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the timeline with the seed posts after the simulated delay.
func (s *Service) Load(ctx context.Context) ([]Post, error) {
	if _, ok := s.sess.User(); !ok {
		return nil, ErrNotAuthenticated
	}
	if err := timex.Sleep(ctx, s.loadDelay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.posts = seedPosts()
	out := slices.Clone(s.posts)
	s.mu.Unlock()

	s.log.Debug(ctx, "feed loaded", "posts", len(out))
	return out, nil
}

// Create publishes content as the current user and puts it on top of the
// timeline.
func (s *Service) Create(ctx context.Context, content string) (Post, error) {
	u, ok := s.sess.User()
	if !ok {
		return Post{}, ErrNotAuthenticated
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Post{}, ErrEmptyPost
	}
	if utf8.RuneCountInString(content) > MaxPostLength {
		return Post{}, ErrPostTooLong
	}

	if err := timex.Sleep(ctx, s.postDelay); err != nil {
		return Post{}, err
	}

	p := Post{
		ID: s.newID(),
		Author: Author{
			Name:         u.Name,
			Username:     Username(u.Name),
			Initials:     Initials(u.Name),
			ProfilePhoto: s.sess.ProfilePhoto(),
		},
		Content:   content,
		Timestamp: "Just now",
	}

	s.mu.Lock()
	s.posts = slices.Insert(s.posts, 0, p)
	s.mu.Unlock()

	s.log.Info(ctx, "post created", "post_id", p.ID)
	return p, nil
}

// Like flips the like mark on a post and returns the updated post.
func (s *Service) Like(id string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.posts, func(p Post) bool { return p.ID == id })
	if i < 0 {
		return Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	p := &s.posts[i]
	if p.Liked {
		p.Likes--
	} else {
		p.Likes++
	}
	p.Liked = !p.Liked
	return *p, nil
}

func (s *Service) Posts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.posts)
}

// Reset drops the timeline, e.g. when the user signs out.
func (s *Service) Reset() {
	s.mu.Lock()
	s.posts = nil
	s.mu.Unlock()
}
