package cli

import (
	"time"

	"github.com/doeshing/keyclip-go/internal/ports"
)

// SystemSleeper blocks on the real clock.
type SystemSleeper struct{}

func (SystemSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}

var _ ports.Sleeper = SystemSleeper{}
