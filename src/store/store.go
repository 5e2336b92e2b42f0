package store

import (
	"evilknob/src/base"
	"evilknob/src/logx"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	valuesObject   = "knobs"
	valuesProperty = "values"
)

type snapshot struct {
	Values map[string]int `yaml:"values"`
}

// Store keeps the last value of every knob by name and persists them with
// gdata. Without a manager it only keeps values in memory.
type Store struct {
	manager *gdata.Manager
	logger  logx.Logger
	values  map[string]int
	dirty   bool
}

// Open creates the gdata manager for appName and loads saved values
func Open(appName string, logger logx.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("error open storage: %w", err)
	}
	s := New(m, logger)
	if err := s.Load(); err != nil {
		logger.Warnf("saved knob values ignored: %v", err)
	}
	return s, nil
}

func New(m *gdata.Manager, logger logx.Logger) *Store {
	return &Store{manager: m, logger: logger, values: make(map[string]int)}
}

func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(valuesObject, valuesProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(valuesObject, valuesProperty)
	if err != nil {
		return fmt.Errorf("error load values: %w", err)
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("error decode values: %w", err)
	}
	for name, v := range snap.Values {
		s.values[name] = base.ClampValue(v)
	}
	s.logger.Debugf("loaded %d knob values", len(snap.Values))
	return nil
}

func (s *Store) Get(name string) (int, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *Store) Set(name string, v int) {
	v = base.ClampValue(v)
	if old, ok := s.values[name]; ok && old == v {
		return
	}
	s.values[name] = v
	s.dirty = true
}

func (s *Store) Values() map[string]int {
	out := make(map[string]int, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Flush writes the values if anything changed since the last flush
func (s *Store) Flush() error {
	if !s.dirty || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(snapshot{Values: s.values})
	if err != nil {
		return fmt.Errorf("error encode values: %w", err)
	}
	if err := s.manager.SaveObjectProp(valuesObject, valuesProperty, data); err != nil {
		return fmt.Errorf("error save values: %w", err)
	}
	s.dirty = false
	s.logger.Debugf("saved %d knob values", len(s.values))
	return nil
}
