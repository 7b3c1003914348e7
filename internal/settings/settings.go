// Package settings stores UI preferences in the same durable key-value
// storage as the ledger snapshot.
package settings

import (
	"context"
	"strconv"
)

const darkModeKey = "darkMode"

type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type Settings struct {
	kv KV
}

func New(kv KV) *Settings {
	return &Settings{kv: kv}
}

// DarkMode reports the stored preference; absent or unparseable values mean
// the default light theme.
func (s *Settings) DarkMode(ctx context.Context) (bool, error) {
	value, ok, err := s.kv.Get(ctx, darkModeKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

func (s *Settings) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.kv.Set(ctx, darkModeKey, strconv.FormatBool(enabled))
}
