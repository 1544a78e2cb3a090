package media

import "context"

// Handler turns raw upload bytes into a stable reference string. The
// catalog stores the reference verbatim and never checks that it is
// reachable.
type Handler interface {
	Save(ctx context.Context, data []byte, ext string) (string, error)
}
