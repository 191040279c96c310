package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/client/feed"
	"github.com/dmitrijs2005/gophsocial/internal/client/flows"
	"github.com/dmitrijs2005/gophsocial/internal/client/profile"
	"github.com/dmitrijs2005/gophsocial/internal/client/router"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/ui"
	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/validate"
	"github.com/gabriel-vasile/mimetype"
)

var (
	errNotSignedIn     = errors.New("not signed in")
	errTooManyAttempts = errors.New("too many attempts")
)

// maxAttempts bounds how often a form is re-asked after validation errors.
const maxAttempts = 3

type formField struct {
	name   string
	label  string
	secret bool
}

var loginForm = []formField{
	{flows.FieldEmail, "Email", false},
	{flows.FieldPassword, "Password", true},
}

var registerForm = []formField{
	{flows.FieldFirstName, "First name", false},
	{flows.FieldLastName, "Last name", false},
	{flows.FieldEmail, "Email", false},
	{flows.FieldPassword, "Password", true},
	{flows.FieldConfirmPassword, "Confirm password", true},
}

// withLoading prints msg when a flow actually starts submitting.
func (a *App) withLoading(msg string, next flows.Submitter) flows.Submitter {
	return func(ctx context.Context) error {
		a.println(ui.Loading(msg))
		return next(ctx)
	}
}

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.alreadySignedIn(ctx)
	}
	a.router.Navigate(string(router.Login))

	f := flows.NewLogin(a.store, a.router, a.config.DemoUserName,
		flows.WithSubmitter(a.withLoading("Signing in...", flows.Delay(a.config.LoginDelay))),
		flows.WithLogger(a.log),
	)
	return a.runForm(ctx, f, loginForm)
}

func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.alreadySignedIn(ctx)
	}
	a.router.Navigate(string(router.Register))

	f := flows.NewRegister(a.store, a.router,
		flows.WithSubmitter(a.withLoading("Creating your account...", flows.Delay(a.config.RegisterDelay))),
		flows.WithLogger(a.log),
	)
	return a.runForm(ctx, f, registerForm)
}

func (a *App) alreadySignedIn(ctx context.Context) error {
	a.println("You are already signed in.")
	a.router.Navigate(string(router.Login))
	a.render(ctx)
	return nil
}

// runForm asks for every field, submits, and re-asks only the fields that
// failed validation.
func (a *App) runForm(ctx context.Context, f *flows.Flow, form []formField) error {
	defer f.Close()

	pending := form
	for range maxAttempts {
		for _, ff := range pending {
			v, err := a.ask(ff)
			if err != nil {
				return err
			}
			if err := f.Change(ff.name, v); err != nil {
				return err
			}
		}

		_, err := f.Submit(ctx)

		var ve *flows.ValidationError
		var se *flows.SubmissionError
		switch {
		case err == nil:
			a.render(ctx)
			return nil
		case errors.As(err, &ve):
			a.println(ui.FieldErrors(f.Fields(), ve.Fields))
			pending = pending[:0:0]
			for _, ff := range form {
				if _, ok := ve.Fields[ff.name]; ok {
					pending = append(pending, ff)
				}
			}
		case errors.As(err, &se):
			a.println(ui.Banner(se.Message))
			return err
		default:
			a.log.Debug(ctx, "form aborted", "flow", f.Name(), "error", err)
			return err
		}
	}

	a.println(ui.Banner("Too many attempts. Please try again."))
	return errTooManyAttempts
}

func (a *App) ask(ff formField) (string, error) {
	if !ff.secret {
		return GetSimpleText(a.reader, ff.label, a.out)
	}
	pw, err := GetPassword(a.reader, ff.label, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		a.println(ui.Banner("Logout failed. Please try again."))
		return err
	}
	a.println(ui.Notice("Signed out."))
	a.render(ctx)
	return nil
}

func (a *App) ShowFeed(ctx context.Context) error {
	a.router.Navigate(string(router.Feed))
	if a.router.Current() != router.Feed {
		a.println("Please log in first.")
		a.render(ctx)
		return errNotSignedIn
	}
	a.render(ctx)
	return nil
}

func (a *App) ShowAbout(ctx context.Context) error {
	return a.Goto(ctx, string(router.About))
}

func (a *App) Goto(ctx context.Context, path string) error {
	a.router.Navigate(path)
	a.render(ctx)
	return nil
}

func (a *App) Post(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return errNotSignedIn
	}

	content, err := GetMultiline(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}

	a.println(ui.Loading("Posting..."))
	p, err := a.feed.Create(ctx, content)
	switch {
	case err == nil:
		a.println(ui.PostCard(p))
		return nil
	case errors.Is(err, feed.ErrEmptyPost):
		a.println(ui.Banner("Write something before posting."))
	case errors.Is(err, feed.ErrPostTooLong):
		a.println(ui.Banner(fmt.Sprintf("Posts are limited to %d characters.", feed.MaxPostLength)))
	default:
		a.log.Error(ctx, "create post", "error", err)
		a.println(ui.Banner("Failed to create post. Please try again."))
	}
	return err
}

func (a *App) Like(ctx context.Context, id string) error {
	p, err := a.feed.Like(id)
	if err != nil {
		if errors.Is(err, feed.ErrPostNotFound) {
			a.println(ui.Banner("No post with id " + id))
		}
		return err
	}
	a.println(ui.PostCard(p))
	return nil
}

func (a *App) Photo(ctx context.Context, path string) error {
	_, err := a.uploader.Upload(ctx, path)
	switch {
	case err == nil:
		a.println(ui.Notice("Profile photo updated."))
		return nil
	case errors.Is(err, session.ErrPrecondition):
		a.println("Please log in first.")
	case errors.Is(err, profile.ErrNotImage):
		a.println(ui.Banner("Please choose an image file."))
	default:
		a.log.Error(ctx, "upload photo", "error", err)
		a.println(ui.Banner("Could not update the profile photo: " + err.Error()))
	}
	return err
}

func (a *App) Rename(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return errNotSignedIn
	}

	name, err := GetSimpleText(a.reader, "New display name", a.out)
	if err != nil {
		return err
	}
	if !validate.IsValidName(name) {
		a.println(ui.Banner("Name must be at least 2 characters and contain only letters"))
		return nil
	}

	u, err := a.store.UpdateUser(ctx, session.UserUpdate{Name: &name})
	if err != nil {
		a.println(ui.Banner("Could not update your name. Please try again."))
		return err
	}
	a.println(ui.Notice("You are now " + u.Name + "."))
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.store.User()
	if !ok {
		a.println("Not signed in.")
		return nil
	}

	photo := "none"
	if uri := a.store.ProfilePhoto(); uri != "" {
		photo = profile.MediaType(uri)
		if ext := mimetype.Lookup(photo); ext != nil {
			photo += " (" + ext.Extension() + ")"
		}
	}

	a.println(ui.Avatar(u.Name, a.store.ProfilePhoto()) + " " + u.Name)
	a.println("Email: " + u.Email)
	a.println("ID:    " + u.ID)
	a.println("Photo: " + photo)
	return nil
}
