package config

import (
	"os"
	"path/filepath"

	"github.com/thinktide/timeaccount/internal/store"
)

const (
	KeyOutputFormat    = "output.format"
	KeyExportDirectory = "export.directory"
	KeyReportLogo      = "report.logo"
)

var defaults = map[string]string{
	KeyOutputFormat:    "table",
	KeyExportDirectory: "~/.timeaccount/exports",
	KeyReportLogo:      "Time Account",
}

func Get(s *store.Store, key string) (string, error) {
	value, err := s.GetConfig(key)
	if err != nil {
		return "", err
	}
	if value == "" {
		if def, ok := defaults[key]; ok {
			return def, nil
		}
	}
	return value, nil
}

func Set(s *store.Store, key, value string) error {
	return s.SetConfig(key, value)
}

func List(s *store.Store) (map[string]string, error) {
	stored, err := s.ListConfig()
	if err != nil {
		return nil, err
	}

	// Merge with defaults
	result := make(map[string]string)
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range stored {
		result[k] = v
	}
	return result, nil
}

func ValidKeys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

func IsValidKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
