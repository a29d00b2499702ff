package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use --config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvAPIBaseURL            = "CURIONA_ADMIN_API_BASE_URL"
	EnvSessionHashKey        = "CURIONA_ADMIN_SESSION_HASH_KEY"
	EnvSessionBlockKey       = "CURIONA_ADMIN_SESSION_BLOCK_KEY"
	EnvServerEnvironment     = "CURIONA_ADMIN_ENVIRONMENT"
	EnvOAuthClientID         = "CURIONA_ADMIN_OAUTH_CLIENT_ID"
	EnvOAuthClientSecret     = "CURIONA_ADMIN_OAUTH_CLIENT_SECRET"
	EnvOAuthRedirectURL      = "CURIONA_ADMIN_OAUTH_REDIRECT_URL"
	EnvRedisPassword         = "CURIONA_ADMIN_REDIS_PASSWORD"
	EnvRedisUsername         = "CURIONA_ADMIN_REDIS_USERNAME"
	EnvRedisSentinelUsername = "CURIONA_ADMIN_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword = "CURIONA_ADMIN_REDIS_SENTINEL_PASSWORD"
)

func applyEnvironmentOverrides(config *Config) {
	if baseURL := os.Getenv(EnvAPIBaseURL); baseURL != "" {
		config.API.BaseURL = baseURL
	}

	if hashKey := os.Getenv(EnvSessionHashKey); hashKey != "" {
		config.Sessions.HashKey = hashKey
	}

	if blockKey := os.Getenv(EnvSessionBlockKey); blockKey != "" {
		config.Sessions.BlockKey = blockKey
	}

	if environment := os.Getenv(EnvServerEnvironment); environment != "" {
		config.Server.Environment = environment
	}

	if clientID := os.Getenv(EnvOAuthClientID); clientID != "" {
		config.OAuth.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOAuthClientSecret); clientSecret != "" {
		config.OAuth.ClientSecret = clientSecret
	}

	if redirectURL := os.Getenv(EnvOAuthRedirectURL); redirectURL != "" {
		config.OAuth.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateAPIConfig()
	if err != nil {
		return err
	}

	err = config.validateOAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateRateLimitConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Handshake.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.ExternalURL == "" {
		return fmt.Errorf("server.external_url is required")
	}

	if err := validateURL(c.Server.ExternalURL, "server.external_url"); err != nil {
		return err
	}

	switch c.Server.Environment {
	case "":
		c.Server.Environment = DefaultServerConfig.Environment
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("invalid server environment: %s, options are development or production", c.Server.Environment)
	}

	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return err
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	switch c.Log.Format {
	case "":
		c.Log.Format = DefaultLogConfig.Format
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = DefaultLogConfig.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.RefreshCookieName == "" {
		c.Sessions.RefreshCookieName = DefaultSessionConfig.RefreshCookieName
	}

	if c.Sessions.MaxAge <= 0 {
		c.Sessions.MaxAge = DefaultSessionConfig.MaxAge
	}

	if c.Sessions.RefreshThreshold <= 0 {
		c.Sessions.RefreshThreshold = DefaultSessionConfig.RefreshThreshold
	}

	if c.Sessions.CheckInterval <= 0 {
		c.Sessions.CheckInterval = DefaultSessionConfig.CheckInterval
	} else if c.Sessions.CheckInterval < time.Second {
		return fmt.Errorf("sessions.check_interval cannot be less than 1 second")
	}

	if err := validateSessionKeys("sessions", c.Sessions.HashKey, c.Sessions.BlockKey); err != nil {
		return err
	}

	for i, keys := range c.Sessions.PreviousKeys {
		if err := validateSessionKeys(fmt.Sprintf("sessions.previous_keys[%d]", i), keys.HashKey, keys.BlockKey); err != nil {
			return err
		}
	}

	switch c.Sessions.Handshake.Store {
	case "":
		c.Sessions.Handshake.Store = DefaultHandshakeConfig.Store
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid handshake store: %s, options are 'memory' or 'redis'", c.Sessions.Handshake.Store)
	}

	if c.Sessions.Handshake.Name == "" {
		c.Sessions.Handshake.Name = DefaultHandshakeConfig.Name
	}

	if c.Sessions.Handshake.Lifetime <= 0 {
		c.Sessions.Handshake.Lifetime = DefaultHandshakeConfig.Lifetime
	}

	return nil
}

func validateSessionKeys(field, hashKey, blockKey string) error {
	if len(hashKey) < MinHashKeyLength {
		return fmt.Errorf("%s.hash_key must be at least %d bytes", field, MinHashKeyLength)
	}

	if len(blockKey) != BlockKeyLength {
		return fmt.Errorf("%s.block_key must be exactly %d bytes", field, BlockKeyLength)
	}

	return nil
}

func (c *Config) validateAPIConfig() error {
	if err := validateURL(c.API.BaseURL, "api.base_url"); err != nil {
		return err
	}

	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultAPIConfig.Timeout
	}

	if c.API.HealthCheckInterval <= 0 {
		c.API.HealthCheckInterval = DefaultAPIConfig.HealthCheckInterval
	}

	return nil
}

func (c *Config) validateOAuthConfig() error {
	if !c.OAuth.Enabled {
		return nil
	}

	if c.OAuth.ClientID == "" {
		return fmt.Errorf("oauth client id is required")
	}

	if c.OAuth.ClientSecret == "" {
		return fmt.Errorf("oauth client secret is required")
	}

	if c.OAuth.IssuerURL == "" {
		c.OAuth.IssuerURL = DefaultOAuthConfig.IssuerURL
	}

	if err := validateURL(c.OAuth.IssuerURL, "oauth.issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OAuth.RedirectURI, "oauth.redirect_url"); err != nil {
		return err
	}

	if len(c.OAuth.Scopes) == 0 {
		c.OAuth.Scopes = DefaultOAuthConfig.Scopes
	}

	return nil
}

func (c *Config) validateRateLimitConfig() error {
	if !c.RateLimit.Enabled {
		return nil
	}

	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = DefaultRateLimitConfig.Requests
	}

	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = DefaultRateLimitConfig.Window
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = "memory"
	}

	switch c.Cache.Type {
	case "memory":
		break
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be enabled to use redis for the cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" && c.Redis.Sentinel == nil {
		return fmt.Errorf("redis address is required")
	}

	if c.Redis.Sentinel == nil {
		if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
			return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
		}
	}

	if c.Redis.HandshakeIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.HandshakeIndex = DefaultRedisConfig.HandshakeIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.HandshakeIndex < 0 {
		return fmt.Errorf("redis handshake_index must be non-negative, got %d", c.Redis.HandshakeIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.HandshakeIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis handshake_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.HandshakeIndex)
	}

	const maxRedisDB = 15
	if c.Redis.HandshakeIndex > maxRedisDB {
		return fmt.Errorf("redis handshake_index %d exceeds typical maximum of %d", c.Redis.HandshakeIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("sentinel master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("at least one sentinel address is required")
		}
	}
	return nil
}
