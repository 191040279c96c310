package flows

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/validate"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const DefaultLoginDelay = 1000 * time.Millisecond

const loginFailed = "Login failed. Please try again."

// NewLogin builds the sign-in form. Any well-formed email and password
// succeed; the password is never checked against a credential. The signed-in
// user is given displayName.
func NewLogin(auth Authenticator, nav Navigator, displayName string, opts ...Option) *Flow {
	def := form{
		name:     "login",
		fields:   []string{FieldEmail, FieldPassword},
		failure:  loginFailed,
		validate: validateLogin,
		buildUser: func(v map[string]string) session.User {
			return session.User{
				Name:  displayName,
				Email: strings.TrimSpace(v[FieldEmail]),
			}
		},
	}
	return newFlow(def, auth, nav, DefaultLoginDelay, opts)
}

func validateLogin(v map[string]string) map[string]string {
	errs := map[string]string{}

	switch email := v[FieldEmail]; {
	case strings.TrimSpace(email) == "":
		errs[FieldEmail] = "Email is required"
	case !validate.IsValidEmail(email):
		errs[FieldEmail] = "Please enter a valid email address"
	}

	switch pw := v[FieldPassword]; {
	case pw == "":
		errs[FieldPassword] = "Password is required"
	case !validate.IsValidPassword(pw, validate.ModeSimple):
		errs[FieldPassword] = "Password must be at least 6 characters"
	}

	return errs
}
