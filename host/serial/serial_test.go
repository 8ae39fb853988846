package serial

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	if cfg.Device != "/dev/ttyUSB0" || cfg.Baud != 38400 || cfg.ReadTimeout != 100 {
		t.Fatalf("DefaultConfig = %+v", cfg)
	}
	if cfg.HighSpeed().Baud != 500000 {
		t.Fatalf("HighSpeed baud = %d", cfg.Baud)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Open(nil) succeeded")
	}
	if _, err := Open(DefaultConfig("")); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Open without device: %v", err)
	}
	if _, err := Open(DefaultConfig("/dev/rp6-does-not-exist")); err == nil {
		t.Error("Open of a missing device succeeded")
	}
}
