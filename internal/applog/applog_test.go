package applog

import "testing"

func TestInitSetsDebugMode(t *testing.T) {
	Init(true)
	if !IsDebug() {
		t.Fatal("IsDebug() = false after Init(true)")
	}

	Init(false)
	if IsDebug() {
		t.Fatal("IsDebug() = true after Init(false)")
	}
}

func TestInitRespectsDebugEnvVar(t *testing.T) {
	t.Setenv("CATAN_TRACKER_DEBUG", "1")
	Init(false)
	if !IsDebug() {
		t.Fatal("IsDebug() = false with CATAN_TRACKER_DEBUG set")
	}
}
