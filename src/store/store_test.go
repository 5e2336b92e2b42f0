package store

import (
	"evilknob/src/logx"
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: "evilknob_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestMemoryOnlyStore(t *testing.T) {
	s := New(nil, logx.NewNop())
	s.Set("gain", 140)
	if v, ok := s.Get("gain"); !ok || v != 100 {
		t.Errorf("Get(gain) = %d, %v", v, ok)
	}
	if err := s.Flush(); err != nil {
		t.Errorf("Flush() without manager: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Errorf("Load() without manager: %v", err)
	}
}

func TestRoundTripThroughGdata(t *testing.T) {
	m := openManager(t)

	s := New(m, logx.NewNop())
	s.Set("gain", 30)
	s.Set("pan", 75)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error: %v", err)
	}

	again := New(m, logx.NewNop())
	if err := again.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v, ok := again.Get("gain"); !ok || v != 30 {
		t.Errorf("gain = %d, %v", v, ok)
	}
	if v, ok := again.Get("pan"); !ok || v != 75 {
		t.Errorf("pan = %d, %v", v, ok)
	}
	if _, ok := again.Get("missing"); ok {
		t.Error("missing knob reported as stored")
	}
}

func TestCorruptDataIsReported(t *testing.T) {
	m := openManager(t)
	if err := m.SaveObjectProp(valuesObject, valuesProperty, []byte("values: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}
	s := New(m, logx.NewNop())
	if err := s.Load(); err == nil {
		t.Error("Load() accepted corrupt yaml")
	}
}

func TestValuesIsACopy(t *testing.T) {
	s := New(nil, logx.NewNop())
	s.Set("a", 1)
	vals := s.Values()
	vals["a"] = 99
	if v, _ := s.Get("a"); v != 1 {
		t.Errorf("Values() exposed internal map, a = %d", v)
	}
}
