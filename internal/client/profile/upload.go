// Package profile turns a local image into the data URI kept as the user's
// profile photo.
package profile

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/filex"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/gabriel-vasile/mimetype"
)

var ErrNotImage = errors.New("file is not an image")

type PhotoSetter interface {
	SetProfilePhoto(ctx context.Context, dataURI string) error
}

type Uploader struct {
	sess PhotoSetter
	log  logging.Logger
}

func NewUploader(sess PhotoSetter, log logging.Logger) *Uploader {
	return &Uploader{sess: sess, log: log}
}

// Upload reads the image at path and stores it on the session. The size of
// the file is not limited.
func (u *Uploader) Upload(ctx context.Context, path string) (string, error) {
	data, err := filex.ReadRegularFile(path)
	if err != nil {
		return "", err
	}

	uri, err := DataURI(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if err := u.sess.SetProfilePhoto(ctx, uri); err != nil {
		return "", err
	}

	u.log.Info(ctx, "profile photo updated", "bytes", len(data))
	return uri, nil
}

// DataURI encodes data as data:<mime>;base64,<payload>. Only image types are
// accepted.
func DataURI(data []byte) (string, error) {
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// MediaType returns the MIME type of a data URI, or "" if uri is not one.
func MediaType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return ""
	}
	mt, _, ok := strings.Cut(rest, ";")
	if !ok {
		return ""
	}
	return mt
}
