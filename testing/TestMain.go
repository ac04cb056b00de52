// Package testing forces test-safe runtime defaults before any package
// under test reads them.
package testing

import (
	"os"
	"sync"
	stdtesting "testing"

	"github.com/Bikash4JP/tally-for-mobile/internal/app"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("TALLY_TEST_MODE", "1")
		if os.Getenv("STORAGE_BACKEND") == "" {
			_ = os.Setenv("STORAGE_BACKEND", "memory")
		}
		// InTestMode caches its first read, which may have happened before
		// the env was set above.
		app.RefreshTestMode()
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
