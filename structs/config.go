package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	Email     *EmailConfig
	Upload    *UploadConfig
	RateLimit *RateLimitConfig
}

type ServerConfig struct {
	AppName        string        // Ecom-Shop
	Environment    string        // development, production
	Port           string        // :3000
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int // in bytes
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // in seconds
}

// DatabaseConfig selects the backing store: when URL is empty the server
// runs against the in-memory store and all data is lost on restart.
type DatabaseConfig struct {
	URL          string // postgres://... ; empty means mock mode
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	QueryTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	AdminEmail        string
	AdminPassword     string // plain or argon2id encoded hash
	// AllowDevTokens accepts any bearer token longer than 10 characters,
	// binding a fixed development identity. Ignored in production.
	AllowDevTokens bool
}

type CacheConfig struct {
	Address      string // empty disables redis-backed features
	Username     string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type EmailConfig struct {
	ResendAPIKey string // empty disables order notifications
	From         string
	AdminTo      string
}

type UploadConfig struct {
	ImgBBAPIKey string
	ImgBBURL    string
	MaxFileSize int64 // per file, in bytes
	MaxFiles    int   // for the multiple-upload endpoint
}

type RateLimitConfig struct {
	Enabled       bool
	AuthLimit     int
	AuthWindow    time.Duration
	GeneralLimit  int
	GeneralWindow time.Duration
}
