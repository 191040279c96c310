package profile

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/filex"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func signedInStore(t *testing.T) *session.Store {
	t.Helper()
	st := session.NewStore(session.NewStoragePersistence(metadata.NewMemoryRepository()))
	_, err := st.Login(context.Background(), session.User{Name: "Jane Doe", Email: "jane@x.com"})
	require.NoError(t, err)
	return st
}

func TestDataURI(t *testing.T) {
	data := pngBytes(t)

	uri, err := DataURI(data)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(data), uri)
	assert.Equal(t, "image/png", MediaType(uri))

	_, err = DataURI([]byte("just some text\n"))
	require.ErrorIs(t, err, ErrNotImage)
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "image/gif", MediaType("data:image/gif;base64,R0lG"))
	assert.Empty(t, MediaType("https://example.com/a.png"))
	assert.Empty(t, MediaType("data:image/png"))
}

func TestUploader_StoresPhotoOnSession(t *testing.T) {
	st := signedInStore(t)
	u := NewUploader(st, logging.Discard())
	path := writeFile(t, "me.bin", pngBytes(t))

	uri, err := u.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, uri, st.ProfilePhoto())
}

func TestUploader_Rejects(t *testing.T) {
	st := signedInStore(t)
	u := NewUploader(st, logging.Discard())
	ctx := context.Background()

	_, err := u.Upload(ctx, writeFile(t, "notes.png", []byte("hello")))
	require.ErrorIs(t, err, ErrNotImage)

	_, err = u.Upload(ctx, t.TempDir())
	require.ErrorIs(t, err, filex.ErrNotRegularFile)

	_, err = u.Upload(ctx, filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Empty(t, st.ProfilePhoto())
}

func TestUploader_NeedsSignedInUser(t *testing.T) {
	st := session.NewStore(session.NewStoragePersistence(metadata.NewMemoryRepository()))
	u := NewUploader(st, logging.Discard())

	_, err := u.Upload(context.Background(), writeFile(t, "me.png", pngBytes(t)))
	require.ErrorIs(t, err, session.ErrPrecondition)
}

type brokenSetter struct{}

func (brokenSetter) SetProfilePhoto(context.Context, string) error { return errors.New("quota") }

func TestUploader_SetterError(t *testing.T) {
	u := NewUploader(brokenSetter{}, logging.Discard())
	_, err := u.Upload(context.Background(), writeFile(t, "me.png", pngBytes(t)))
	require.EqualError(t, err, "quota")
}
