package services

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/store"
	"ecomshop_server/structs"
	"fmt"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

type OrderService struct {
	logger *gecho.Logger
	store  store.Store
	email  *EmailService
}

func NewOrderService(logger *gecho.Logger, st store.Store, email *EmailService) *OrderService {
	return &OrderService{
		logger: logger,
		store:  st,
		email:  email,
	}
}

// GetAll returns every order, newest first.
func (os *OrderService) GetAll(ctx context.Context) ([]structs.Order, error) {
	docs, err := os.store.Collection(store.Orders).GetAllOrdered(ctx, "createdAt", true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return store.DecodeAll[structs.Order](docs)
}

func (os *OrderService) GetByID(ctx context.Context, id string) (*structs.Order, error) {
	doc, err := os.store.Collection(store.Orders).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var order structs.Order
	if err := store.Decode(doc, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create records a new order. The status and creation timestamp are always
// assigned server-side, whatever the submitted payload carried.
func (os *OrderService) Create(ctx context.Context, req *structs.CreateOrderRequest) (*structs.Order, error) {
	order := structs.Order{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        strings.TrimSpace(req.Phone),
		State:        strings.TrimSpace(req.State),
		Municipality: strings.TrimSpace(req.Municipality),
		Address:      strings.TrimSpace(req.Address),
		ProductID:    strings.TrimSpace(req.ProductID),
		VariantID:    req.VariantID,
		VariantImage: req.VariantImage,
		VariantName:  req.VariantName,
		Status:       structs.OrderStatusPending,
		CreatedAt:    time.Now(),
	}

	doc, err := store.ToDocument(order)
	if err != nil {
		return nil, err
	}

	id, err := os.store.Collection(store.Orders).Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id

	os.logger.Info("Order created",
		gecho.Field("id", id),
		gecho.Field("product_id", order.ProductID),
		gecho.Field("state", order.State),
	)

	// Notification is best effort. The order stands even when the email
	// provider is down or not configured.
	if err := os.email.SendOrderNotification(ctx, &order); err != nil {
		os.logger.Warn("Order notification email failed", gecho.Field("id", id), gecho.Field("error", err.Error()))
	}

	return &order, nil
}

func (os *OrderService) UpdateStatus(ctx context.Context, id string, status structs.OrderStatus) (*structs.Order, error) {
	if !status.Valid() {
		return nil, &lib.ValidationError{Errors: []lib.FieldError{
			{Field: "status", Message: "must be one of pending, processed, shipped, completed, cancelled"},
		}}
	}

	patch := store.Document{"status": status}
	if err := os.store.Collection(store.Orders).UpdateMerge(ctx, id, patch); err != nil {
		return nil, err
	}

	os.logger.Info("Order status updated", gecho.Field("id", id), gecho.Field("status", string(status)))
	return os.GetByID(ctx, id)
}

func (os *OrderService) Delete(ctx context.Context, id string) error {
	if err := os.store.Collection(store.Orders).Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	os.logger.Info("Order deleted", gecho.Field("id", id))
	return nil
}
