package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Sessions  SessionConfig   `yaml:"sessions"`
	API       APIConfig       `yaml:"api"`
	OAuth     OAuthConfig     `yaml:"oauth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     *RedisConfig    `yaml:"redis"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Environment string             `yaml:"environment"`
	Debug       *ServerDebugConfig `yaml:"debug"`

	// TrustedProxies lists the addresses or CIDR ranges whose forwarding
	// headers (True-Client-IP, X-Real-IP, X-Forwarded-For) are believed.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

var DefaultServerConfig = ServerConfig{
	Port:        8080,
	Environment: EnvironmentDevelopment,
}

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// IsProduction reports whether cookies must be marked Secure.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == EnvironmentProduction
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:3000"},
	AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// SessionConfig configures the encrypted session cookie, the refresh token cookie and
// the short-lived handshake session used during the OAuth redirect flow.
type SessionConfig struct {
	Name              string          `yaml:"name"`
	RefreshCookieName string          `yaml:"refresh_cookie_name"`
	MaxAge            time.Duration   `yaml:"max_age"`
	HashKey           string          `yaml:"hash_key"`
	BlockKey          string          `yaml:"block_key"`
	PreviousKeys      []SessionKeys   `yaml:"previous_keys"`
	RefreshThreshold  time.Duration   `yaml:"refresh_threshold"`
	CheckInterval     time.Duration   `yaml:"check_interval"`
	Handshake         HandshakeConfig `yaml:"handshake"`
}

type SessionKeys struct {
	HashKey  string `yaml:"hash_key"`
	BlockKey string `yaml:"block_key"`
}

var DefaultSessionConfig = SessionConfig{
	Name:              "curiona_admin_session",
	RefreshCookieName: "refresh_token",
	MaxAge:            7 * 24 * time.Hour,
	RefreshThreshold:  5 * time.Minute,
	CheckInterval:     time.Minute,
}

type HandshakeConfig struct {
	Store    string        `yaml:"store"`
	Name     string        `yaml:"name"`
	Lifetime time.Duration `yaml:"lifetime"`
}

var DefaultHandshakeConfig = HandshakeConfig{
	Store:    "memory",
	Name:     "curiona_admin_handshake",
	Lifetime: 10 * time.Minute,
}

// APIConfig points at the remote Curiona API.
type APIConfig struct {
	BaseURL             string        `yaml:"base_url"`
	Timeout             time.Duration `yaml:"timeout"`
	HealthCheckInterval time.Duration `yaml:"health_check_interval"`
}

var DefaultAPIConfig = APIConfig{
	Timeout:             15 * time.Second,
	HealthCheckInterval: 30 * time.Second,
}

type OAuthConfig struct {
	Enabled      bool     `yaml:"enabled"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOAuthConfig = OAuthConfig{
	IssuerURL: "https://accounts.google.com",
	Scopes:    []string{"openid", "profile", "email"},
}

type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

var DefaultRateLimitConfig = RateLimitConfig{
	Requests: 10,
	Window:   time.Minute,
}

type CacheConfig struct {
	Type string `yaml:"type"` //  "memory" or "redis"
}

type RedisConfig struct {
	Address        string               `yaml:"address"`
	Username       string               `yaml:"username"`
	Password       string               `yaml:"password"`
	Sentinel       *RedisSentinelConfig `yaml:"sentinel"`
	HandshakeIndex int                  `yaml:"handshake_index"`
	CacheIndex     int                  `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	HandshakeIndex: 0,
	CacheIndex:     1,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
