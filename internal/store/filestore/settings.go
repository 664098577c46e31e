package filestore

import (
	"context"

	"github.com/acuestore/apiserver/internal/store"
)

func (s *Store) loadSettings() (map[string]string, error) {
	settings := make(map[string]string)
	if err := s.readJSON(settingsFile, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Store) GetSetting(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, err := s.loadSettings()
	if err != nil {
		return "", err
	}
	value, ok := settings[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return value, nil
}

func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.loadSettings()
	if err != nil {
		return err
	}
	settings[key] = value
	return s.writeJSON(settingsFile, settings)
}
