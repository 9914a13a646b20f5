package ports

import "context"

// SeenSet remembers which reminders already fired.
type SeenSet interface {
	// MarkIfNew records key and reports true only for the first caller.
	MarkIfNew(ctx context.Context, key string) (bool, error)
}
