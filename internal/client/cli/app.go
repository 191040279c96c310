package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/feed"
	"github.com/dmitrijs2005/gophsocial/internal/client/profile"
	"github.com/dmitrijs2005/gophsocial/internal/client/router"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/ui"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    *session.Store
	router   *router.Router
	feed     *feed.Service
	uploader *profile.Uploader
	reader   *bufio.Reader
	out      io.Writer

	unsubscribe []func()
}

// NewApp builds the app around an already opened session store. Commands
// read from in and write screens to out.
func NewApp(c *config.Config, store *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:   c,
		log:      log,
		store:    store,
		router:   router.New(store, log),
		uploader: profile.NewUploader(store, log),
		reader:   bufio.NewReader(in),
		out:      out,
		feed: feed.NewService(store,
			feed.WithLoadDelay(c.FeedDelay),
			feed.WithPostDelay(c.PostDelay),
			feed.WithLogger(log),
		),
	}

	a.unsubscribe = append(a.unsubscribe,
		store.Subscribe(func(st session.State) {
			if !st.Authenticated {
				a.feed.Reset()
			}
		}),
		a.router.OnChange(func(to router.Route) {
			a.log.Debug(context.Background(), "screen", "route", to)
		}),
	)
	return a
}

// Run loads the stored session, then serves commands until the user quits,
// input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	a.store.Start(ctx)
	a.println(ui.Loading("Loading..."))
	if err := a.store.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		a.log.Warn(ctx, "continuing with an empty session", "error", err)
	}

	a.println("Welcome to SocialApp (type 'help' for commands)")
	a.render(ctx)

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) close() {
	for _, fn := range a.unsubscribe {
		fn()
	}
	a.router.Close()
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

func (a *App) status() string {
	route := string(a.router.Current())
	if u, ok := a.store.User(); ok {
		return fmt.Sprintf("(%s) %s", u.Name, route)
	}
	return route
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// render draws the screen of the current route.
func (a *App) render(ctx context.Context) {
	route := a.router.Current()
	a.println(ui.Header(route, a.store.Snapshot()))

	switch route {
	case router.Login:
		a.println("Sign in with 'login', or create an account with 'register'.")
	case router.Register:
		a.println("Create your account with 'register'.")
	case router.About:
		a.println(ui.About())
	case router.Feed:
		a.renderFeed(ctx)
	}
}

func (a *App) renderFeed(ctx context.Context) {
	u, _ := a.store.User()
	a.println(ui.Welcome(u.Name))

	posts := a.feed.Posts()
	if len(posts) == 0 {
		a.println(ui.Loading("Loading your feed..."))
		loaded, err := a.feed.Load(ctx)
		if err != nil {
			a.log.Error(ctx, "load feed", "error", err)
			a.println(ui.Banner("Could not load your feed. Please try again."))
			return
		}
		posts = loaded
	}
	a.println(ui.Feed(posts))
}
