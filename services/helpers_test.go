package services

import (
	"ecomshop_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

func testConfig() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:     "Ecom-Shop",
			Environment: "development",
		},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test-secret",
			AccessTokenExpiry: time.Hour,
			AdminEmail:        "admin@example.com",
			AdminPassword:     "hunter2",
		},
		Cache: &structs.CacheConfig{},
		Email: &structs.EmailConfig{},
		Upload: &structs.UploadConfig{
			ImgBBAPIKey: "test-key",
			ImgBBURL:    "https://api.imgbb.com/1/upload",
			MaxFileSize: 10 * 1024 * 1024,
			MaxFiles:    10,
		},
		RateLimit: &structs.RateLimitConfig{},
	}
}

func testLogger() *gecho.Logger {
	return gecho.NewDefaultLogger()
}
