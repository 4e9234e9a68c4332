package cache

import "fmt"

// Prefix namespaces cache keys per concern so independent consumers can
// share one backend without colliding.
type Prefix string

const (
	RelayedMessages Prefix = "relayed_messages"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
