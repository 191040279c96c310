package flows

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/validate"
)

const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldConfirmPassword = "confirmPassword"
)

const DefaultRegisterDelay = 1500 * time.Millisecond

const registerFailed = "Account creation failed. Please try again."

// NewRegister builds the sign-up form. It uses the strong password rules and
// signs the new account straight in.
func NewRegister(auth Authenticator, nav Navigator, opts ...Option) *Flow {
	def := form{
		name:     "register",
		fields:   []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldConfirmPassword},
		failure:  registerFailed,
		validate: validateRegister,
		buildUser: func(v map[string]string) session.User {
			return session.User{
				Name:  strings.TrimSpace(v[FieldFirstName]) + " " + strings.TrimSpace(v[FieldLastName]),
				Email: strings.TrimSpace(v[FieldEmail]),
			}
		},
	}
	return newFlow(def, auth, nav, DefaultRegisterDelay, opts)
}

func validateRegister(v map[string]string) map[string]string {
	errs := map[string]string{}

	checkName := func(field, label string) {
		switch name := v[field]; {
		case strings.TrimSpace(name) == "":
			errs[field] = label + " is required"
		case !validate.IsValidName(name):
			errs[field] = label + " must be at least 2 characters and contain only letters"
		}
	}
	checkName(FieldFirstName, "First name")
	checkName(FieldLastName, "Last name")

	switch email := v[FieldEmail]; {
	case strings.TrimSpace(email) == "":
		errs[FieldEmail] = "Email is required"
	case !validate.IsValidEmail(email):
		errs[FieldEmail] = "Please enter a valid email address"
	}

	pw := v[FieldPassword]
	switch {
	case pw == "":
		errs[FieldPassword] = "Password is required"
	case !validate.IsValidPassword(pw, validate.ModeStrong):
		errs[FieldPassword] = "Password must be at least 8 characters with 1 uppercase, 1 lowercase, and 1 number"
	}

	switch confirm := v[FieldConfirmPassword]; {
	case confirm == "":
		errs[FieldConfirmPassword] = "Please confirm your password"
	case confirm != pw:
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	return errs
}
