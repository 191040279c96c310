package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/dmitrijs2005/gophsocial/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StorageBackend = config.BackendMemory
	cfg.LoginDelay = 0
	cfg.RegisterDelay = 0
	cfg.PostDelay = 0
	cfg.FeedDelay = 0
	return cfg
}

func newTestStore(t *testing.T) (*session.Store, *metadata.MemoryRepository) {
	t.Helper()
	repo := metadata.NewMemoryRepository()
	st := session.NewStore(session.NewStoragePersistence(repo))
	t.Cleanup(st.Close)
	return st, repo
}

func runApp(t *testing.T, st *session.Store, lines ...string) string {
	t.Helper()
	capturePrintln(t)
	pipedStdin(t)

	var out bytes.Buffer
	app := NewApp(testConfig(), st, logging.Discard(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	require.NoError(t, app.Run(context.Background()))
	return ansi.Strip(out.String())
}

func TestApp_FullSession(t *testing.T) {
	st, repo := newTestStore(t)

	out := runApp(t, st,
		"login",
		"jane@x.com",
		"secret1",
		"feed",
		"post",
		"Hello from the terminal",
		"",
		"like 1",
		"rename",
		"Jo Lee",
		"whoami",
		"logout",
		"exit",
	)

	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, "Signing in...")
	assert.Contains(t, out, "Welcome back, Amr!")
	assert.Contains(t, out, "Sarah Johnson")
	assert.Contains(t, out, "Hello from the terminal")
	assert.Contains(t, out, "@amr_mahmoud")
	assert.Contains(t, out, "Liked 25")
	assert.Contains(t, out, "You are now Jo Lee.")
	assert.Contains(t, out, "Email: jane@x.com")
	assert.Contains(t, out, "Signed out.")

	assert.False(t, st.Authenticated())
	m, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestApp_LoginAsksAgainForFailedFieldOnly(t *testing.T) {
	st, _ := newTestStore(t)

	out := runApp(t, st,
		"login",
		"jane@x.com",
		"",
		"secret1",
		"whoami",
	)

	assert.Contains(t, out, "password: Password is required")
	assert.NotContains(t, out, "email:")
	assert.Equal(t, 1, strings.Count(out, "Email\n> "), "a valid email is not asked again")

	u, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "jane@x.com", u.Email)
}

func TestApp_LoginGivesUpAfterRepeatedErrors(t *testing.T) {
	st, _ := newTestStore(t)

	out := runApp(t, st,
		"login",
		"nope",
		"secret1",
		"still-nope",
		"again-nope",
	)

	assert.Contains(t, out, "Please enter a valid email address")
	assert.Contains(t, out, "Too many attempts")
	assert.False(t, st.Authenticated())
}

func TestApp_Register(t *testing.T) {
	st, _ := newTestStore(t)

	out := runApp(t, st,
		"register",
		"Jane",
		"Doe",
		"jane@x.com",
		"Abcdefg1",
		"Abcdefg1",
		"register",
	)

	assert.Contains(t, out, "Creating your account...")
	assert.Contains(t, out, "Welcome back, Jane!")
	assert.Contains(t, out, "You are already signed in.")

	u, ok := st.User()
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", u.Name)
}

func TestApp_RestoresStoredSession(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "userName", []byte("Maria Rodriguez")))
	require.NoError(t, repo.Set(ctx, "userEmail", []byte("maria@x.com")))
	require.NoError(t, repo.Set(ctx, "userId", []byte("7")))

	out := runApp(t, st, "whoami")

	assert.Contains(t, out, "Welcome back, Maria!")
	assert.Contains(t, out, "ID:    7")
}

func TestApp_SignedOutCommands(t *testing.T) {
	st, _ := newTestStore(t)

	out := runApp(t, st,
		"feed",
		"post",
		"rename",
		"whoami",
		"about",
		"goto /nowhere",
	)

	assert.Equal(t, 3, strings.Count(out, "Please log in first."))
	assert.Contains(t, out, "Not signed in.")
	assert.Contains(t, out, "Share & Connect")
	assert.Contains(t, out, "Sign in with 'login'")
}

func TestApp_ProfilePhoto(t *testing.T) {
	st, _ := newTestStore(t)
	_, err := st.Login(context.Background(), session.User{Name: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	dir := t.TempDir()
	img := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(img, buf.Bytes(), 0o600))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o600))

	out := runApp(t, st,
		"photo "+txt,
		"photo "+img,
		"whoami",
	)

	assert.Contains(t, out, "Please choose an image file.")
	assert.Contains(t, out, "Profile photo updated.")
	assert.Contains(t, out, "Photo: image/png (.png)")
	assert.True(t, strings.HasPrefix(st.ProfilePhoto(), "data:image/png;base64,"))
}

func TestApp_LikeUnknownPost(t *testing.T) {
	st, _ := newTestStore(t)
	_, err := st.Login(context.Background(), session.User{Name: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)

	out := runApp(t, st, "like 999")
	assert.Contains(t, out, "No post with id 999")
}
