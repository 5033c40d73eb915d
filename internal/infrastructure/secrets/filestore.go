package secrets

import (
	"context"
	"os"

	"facilitator_balances/internal/app/port"

	jsoniter "github.com/json-iterator/go"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore implements port.SecretStore over secret documents mounted as
// files. Each secret name maps to one file whose content is either a raw
// value or a JSON object addressed by sub-key. Lookups are cached for the
// lifetime of the process, so the read cost is paid once per key.
type FileStore struct {
	files  map[string]string // secret name -> file path
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewFileStore creates a FileStore over the given name -> path mapping.
func NewFileStore(files map[string]string, logger *zap.Logger) port.SecretStore {
	return &FileStore{
		files:  files,
		cache:  gocache.New(gocache.NoExpiration, 0),
		logger: logger.Named("SecretStore"),
	}
}

// GetSecret returns the secret value, or ok=false when the secret or sub-key
// is absent or the backing file cannot be read. Failures degrade silently:
// they are logged for operators and the caller falls back to the next
// credential tier.
func (s *FileStore) GetSecret(_ context.Context, name, key string) (string, bool) {
	cacheKey := name
	if key != "" {
		cacheKey = name + ":" + key
	}
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(string), true
	}

	path, ok := s.files[name]
	if !ok || path == "" {
		return "", false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("Failed to read secret file, degrading to lower credential tiers",
			zap.String("secret", name), zap.String("path", path), zap.Error(err))
		return "", false
	}

	value := string(raw)
	if key != "" {
		var doc map[string]string
		if err := json.Unmarshal(raw, &doc); err != nil {
			s.logger.Warn("Failed to parse secret JSON",
				zap.String("secret", name), zap.Error(err))
			return "", false
		}
		value = doc[key]
	}

	if value == "" {
		return "", false
	}

	s.cache.Set(cacheKey, value, gocache.NoExpiration)
	return value, true
}
