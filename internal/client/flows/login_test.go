package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   map[string]string
	}{
		{
			name:   "ok",
			values: map[string]string{FieldEmail: "jane@x.com", FieldPassword: "secret"},
			want:   map[string]string{},
		},
		{
			name:   "blank email",
			values: map[string]string{FieldEmail: "   ", FieldPassword: "secret"},
			want:   map[string]string{FieldEmail: "Email is required"},
		},
		{
			name:   "malformed email",
			values: map[string]string{FieldEmail: "jane.x.com", FieldPassword: "secret"},
			want:   map[string]string{FieldEmail: "Please enter a valid email address"},
		},
		{
			name:   "missing password",
			values: map[string]string{FieldEmail: "jane@x.com"},
			want:   map[string]string{FieldPassword: "Password is required"},
		},
		{
			name:   "short password",
			values: map[string]string{FieldEmail: "jane@x.com", FieldPassword: "short"},
			want:   map[string]string{FieldPassword: "Password must be at least 6 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateLogin(tt.values))
		})
	}
}

func TestLogin_EmptyPasswordFails(t *testing.T) {
	nav := &fakeNavigator{}
	st, _ := newSession(t)
	f := NewLogin(st, nav, "Demo User", WithSubmitter(instant))
	fill(t, f, map[string]string{FieldEmail: "jane@x.com"})

	_, err := f.Submit(context.Background())

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{FieldPassword: "Password is required"}, ve.Fields)
	assert.Equal(t, Failed, f.State())
	assert.False(t, st.Authenticated())
	assert.Empty(t, nav.visited())
}

func TestLogin_SignsInDemoUser(t *testing.T) {
	nav := &fakeNavigator{}
	st, repo := newSession(t)
	f := NewLogin(st, nav, "Amr Mahmoud", WithSubmitter(instant))
	fill(t, f, map[string]string{FieldEmail: "  jane@x.com", FieldPassword: "whatever"})

	// the raw email is validated, so leading blanks are rejected
	_, err := f.Submit(context.Background())
	require.Error(t, err)
	require.NoError(t, f.Change(FieldEmail, "jane@x.com "))
	_, err = f.Submit(context.Background())
	require.Error(t, err)

	require.NoError(t, f.Change(FieldEmail, "jane@x.com"))
	u, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Amr Mahmoud", u.Name)
	assert.Equal(t, "jane@x.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, Success, f.State())
	assert.Equal(t, []string{"/feed"}, nav.visited())

	got, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, u, got)

	name, err := repo.Get(context.Background(), "userName")
	require.NoError(t, err)
	assert.Equal(t, "Amr Mahmoud", string(name))
}

func TestLogin_Defaults(t *testing.T) {
	st, _ := newSession(t)
	f := NewLogin(st, &fakeNavigator{}, "Demo User")
	assert.Equal(t, "login", f.Name())
	assert.Equal(t, []string{FieldEmail, FieldPassword}, f.Fields())
	assert.Equal(t, Idle, f.State())
}
