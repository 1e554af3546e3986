package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"satoru/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = 10 << 20
	defaultFlashcardCount     = 20
	defaultReconnectDelay     = 3 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize limits JSON endpoints, e.g. "100KB".
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Firebase configuration for ID token sign-in and file storage
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Summarizer *SummarizerConfig `json:"summarizer" yaml:"summarizer"`

	Documents *DocumentsConfig `json:"documents" yaml:"documents"`

	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Client configures the bundled API client used by the watch tool.
	Client *ClientConfig `json:"client" yaml:"client"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used for sign-in and storage
type FirebaseConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	StorageBucket   string `json:"storageBucket" yaml:"storageBucket"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic receiving document.uploaded events, consumed by the worker
	ProcessingTopicID string `json:"processingTopicId" yaml:"processingTopicId"`

	// Topic receiving document.updated events, pushed back to the API
	UpdatesTopicID string `json:"updatesTopicId" yaml:"updatesTopicId"`

	// Local HTTP endpoints for development (for local provider)
	LocalProcessingEndpoint string `json:"localProcessingEndpoint" yaml:"localProcessingEndpoint"`
	LocalUpdatesEndpoint    string `json:"localUpdatesEndpoint" yaml:"localUpdatesEndpoint"`

	// PushAudience is the expected audience of push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// StorageConfig selects where uploaded files live
type StorageConfig struct {
	// Provider type: "blob" for a gocloud bucket URL or "firebase" for Firebase Storage
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL is a gocloud URL such as file:///var/satoru, mem:// or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build file URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// SummarizerConfig configures the model that writes summaries and flashcards
type SummarizerConfig struct {
	Provider string        `json:"provider" yaml:"provider"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Model    string        `json:"model" yaml:"model"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// DocumentsConfig limits uploads and sets generation defaults
type DocumentsConfig struct {
	MaxUploadSize  int64 `json:"maxUploadSize" yaml:"maxUploadSize"`
	FlashcardCount int   `json:"flashcardCount" yaml:"flashcardCount"`
}

// RealtimeConfig configures the WebSocket endpoint
type RealtimeConfig struct {
	RequireToken   bool          `json:"requireToken" yaml:"requireToken"`
	SendBufferSize int           `json:"sendBufferSize" yaml:"sendBufferSize"`
	PingPeriod     time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
	PongWait       time.Duration `json:"pongWait" yaml:"pongWait"`
	WriteWait      time.Duration `json:"writeWait" yaml:"writeWait"`
}

// ClientConfig points the API client at a running server
type ClientConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RealtimeURL    string        `json:"realtimeUrl" yaml:"realtimeUrl"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	ReconnectDelay time.Duration `json:"reconnectDelay" yaml:"reconnectDelay"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// LoadClient loads the config file and returns only its client section.
func LoadClient() (*ClientConfig, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg.Client, nil
}

// applyDefaults fills optional sections so callers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Summarizer == nil {
		cfg.Summarizer = &SummarizerConfig{}
	}

	if cfg.Documents == nil {
		cfg.Documents = &DocumentsConfig{}
	}
	if cfg.Documents.MaxUploadSize <= 0 {
		cfg.Documents.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Documents.FlashcardCount <= 0 {
		cfg.Documents.FlashcardCount = defaultFlashcardCount
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}

	if cfg.Client == nil {
		cfg.Client = &ClientConfig{}
	}
	if cfg.Client.ReconnectDelay <= 0 {
		cfg.Client.ReconnectDelay = defaultReconnectDelay
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
