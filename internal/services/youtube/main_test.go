package youtube

import (
	"os"
	"testing"

	"github.com/naijachef/osa/internal/metrics"
)

func TestMain(m *testing.M) {
	// Instruments default to the no-op global meter provider.
	if err := metrics.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
