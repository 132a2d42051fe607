package log

import "testing"

func TestConfigure(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	if err := Configure("dev", "debug"); err != nil {
		t.Errorf("Configure(dev, debug) returned error: %v", err)
	}
	if err := Configure("prod", "info"); err != nil {
		t.Errorf("Configure(prod, info) returned error: %v", err)
	}
	if err := Configure("prod", "verbose"); err == nil {
		t.Error("Configure accepted an invalid level")
	}
}

func TestSetGetLogger(t *testing.T) {
	orig := GetLogger()
	defer SetLogger(orig)

	nl := NewNoopLogger()
	SetLogger(nl)
	if GetLogger() != nl {
		t.Error("SetLogger did not replace the global logger")
	}

	// Global helpers route through the replaced logger without panicking.
	Info(map[string]any{"k": "v"}, "info")
	Error(nil, "error")
	Debug(nil, "debug")
	Warn(nil, "warn")
}

func TestNoopLogger(t *testing.T) {
	nl := NewNoopLogger()
	// All levels discard silently.
	nl.Info(map[string]any{"k": "v"}, "msg")
	nl.Error(nil, "msg")
	nl.Debug(nil, "msg")
	nl.Warn(nil, "msg")
	nl.Fatal(nil, "msg")
}

func TestZapFields(t *testing.T) {
	fields := zapFields(map[string]any{"a": 1, "b": "two"})
	if len(fields) != 2 {
		t.Fatalf("zapFields returned %d fields; want 2", len(fields))
	}
	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Key] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("zapFields keys = %v", seen)
	}

	if got := zapFields(nil); len(got) != 0 {
		t.Errorf("zapFields(nil) returned %d fields", len(got))
	}
}
