package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultPort               = 3000
	defaultStorePath          = "db.json"
	defaultTokenTTL           = time.Hour
	defaultUpstreamTimeout    = 5 * time.Second
	defaultAllowedOrigin      = "https://frontend-develfood.vercel.app"
)

// Id assignment strategies for newly created records.
const (
	// IDStrategyLength assigns collection length + 1, the legacy behaviour.
	IDStrategyLength = "length"
	// IDStrategyMax assigns the highest existing id + 1.
	IDStrategyMax = "max"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS CORSConfig `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	Store StoreConfig `json:"store" yaml:"store"`
}

// CORSConfig lists what cross-origin callers may do.
type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	AllowMethods []string `json:"allowMethods" yaml:"allowMethods"`
	AllowHeaders []string `json:"allowHeaders" yaml:"allowHeaders"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`

	// UsersEndpoint is the base URL of a remote service exposing GET /users.
	// When empty, login reads the users collection from the local store.
	UsersEndpoint   string        `json:"usersEndpoint" yaml:"usersEndpoint"`
	UpstreamTimeout time.Duration `json:"upstreamTimeout" yaml:"upstreamTimeout"`
}

// StoreConfig defines the JSON file database
type StoreConfig struct {
	Path       string `json:"path" yaml:"path"`
	IDStrategy string `json:"idStrategy" yaml:"idStrategy"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// STORE_IDSTRATEGY -> store.idStrategy
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills unset values and applies the PORT override used by hosting platforms.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return errors.Wrapf(err, "invalid PORT %q", port)
		}
		cfg.HTTP.Port = p
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if len(cfg.HTTP.CORS.AllowOrigins) == 0 {
		cfg.HTTP.CORS.AllowOrigins = []string{defaultAllowedOrigin}
	}
	if len(cfg.HTTP.CORS.AllowMethods) == 0 {
		cfg.HTTP.CORS.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(cfg.HTTP.CORS.AllowHeaders) == 0 {
		cfg.HTTP.CORS.AllowHeaders = []string{"Content-Type", "Authorization"}
	}

	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.UpstreamTimeout <= 0 {
		cfg.Auth.UpstreamTimeout = defaultUpstreamTimeout
	}

	if strings.TrimSpace(cfg.Store.Path) == "" {
		cfg.Store.Path = defaultStorePath
	}
	switch cfg.Store.IDStrategy {
	case "":
		cfg.Store.IDStrategy = IDStrategyLength
	case IDStrategyLength, IDStrategyMax:
	default:
		return errors.Errorf("unknown store.idStrategy: %s", cfg.Store.IDStrategy)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
