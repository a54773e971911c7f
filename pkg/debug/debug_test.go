package debug

import "testing"

func TestEnableTogglesEnabled(t *testing.T) {
	orig := Enabled()
	defer Enable(orig)

	Enable(true)
	if !Enabled() {
		t.Errorf("expected Enabled() to be true after Enable(true)")
	}
	Enable(false)
	if Enabled() {
		t.Errorf("expected Enabled() to be false after Enable(false)")
	}
}

func TestTraceNoopWhenDisabled(t *testing.T) {
	Enable(false)
	defer Enable(false)
	// Must not panic even with no output sink available.
	Trace("this should not print", 1, 2, 3)
}

func TestTraceRunsWhenEnabled(t *testing.T) {
	Enable(true)
	defer Enable(false)
	Trace("this may print", "a", "b")
}
