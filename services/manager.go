package services

import (
	"ecomshop_server/store"
	"ecomshop_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	ProductService  *ProductService
	VariantService  *VariantService
	OrderService    *OrderService
	SettingsService *SettingsService
	UploadService   *UploadService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, st store.Store) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(logger, cfg)
	productService := NewProductService(logger, st)
	variantService := NewVariantService(logger, st)
	orderService := NewOrderService(logger, st, emailService)
	settingsService := NewSettingsService(logger, st)
	uploadService := NewUploadService(logger, cfg)
	healthService := NewHealthService(logger, st)

	return &ServiceManager{
		AuthService:     authService,
		ProductService:  productService,
		VariantService:  variantService,
		OrderService:    orderService,
		SettingsService: settingsService,
		UploadService:   uploadService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
	}
}
