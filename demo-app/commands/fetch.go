package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mado-framework/go-mado/commands"
)

type FetchArgs struct {
	ID uint32 `json:"id"`
}

// Fetch stands in for the slow, IO-bound command every desktop shell
// grows eventually. It blocks its own dispatch goroutine only; the
// webview's dispatch thread is never held up by it.
func Fetch(ctx context.Context, args FetchArgs) (string, error) {
	select {
	case <-time.After(150 * time.Millisecond):
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return fmt.Sprintf("Fetched %d", args.ID), nil
}

func init() {
	commands.MustRegisterFunc("fetch", Fetch)
}
