package script

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

// TextModel completes a user input under a system instruction and returns
// the raw text of the answer.
type TextModel interface {
	Complete(ctx context.Context, instruction string, input string, schema any) (string, error)
}
