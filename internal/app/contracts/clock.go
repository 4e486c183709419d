package contracts

import "time"

// Clock abstracts "now" so availability resolution stays deterministic
// under test.
type Clock interface {
	Now() time.Time
}
