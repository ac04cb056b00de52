package app

import "testing"

func TestRefreshTestModeRereadsEnvironment(t *testing.T) {
	// Re-sync the cached flag with the restored environment once t.Setenv
	// has undone its change; cleanups run in reverse registration order.
	t.Cleanup(RefreshTestMode)

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	if InTestMode() {
		t.Fatal("expected test mode off with empty flag")
	}

	// InTestMode caches its first read, so flipping the env alone must not
	// change the answer until a refresh.
	t.Setenv(testModeEnv, "1")
	if InTestMode() {
		t.Fatal("cached flag must survive env changes")
	}
	RefreshTestMode()
	if !InTestMode() {
		t.Fatal("refresh must pick up the new flag")
	}
}
