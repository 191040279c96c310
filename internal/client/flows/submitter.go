package flows

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/timex"
)

// Submitter performs the remote half of a form submission.
type Submitter func(ctx context.Context) error

// Delay returns a Submitter that succeeds after d unless ctx ends first.
func Delay(d time.Duration) Submitter {
	return func(ctx context.Context) error {
		return timex.Sleep(ctx, d)
	}
}
