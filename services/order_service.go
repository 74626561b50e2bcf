package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/config"
	"github.com/antlers07/kitchen-chatbot/models"
)

// Error kinds returned by the service layer. The webhook controller matches
// these exhaustively; anything else is a persistence failure.
var (
	ErrMissingTable  = errors.New("table number is missing or unknown")
	ErrNoItems       = errors.New("order has no items")
	ErrInvalidItemID = errors.New("item id is not numeric")
	ErrOrderNotFound = errors.New("order not found")
)

// IntakeItem is one validated order line as extracted from the intent event.
// The id stays textual until the writer coerces it.
type IntakeItem struct {
	ID       string
	Name     string
	Quantity int
	Price    float64
}

type OrderService struct {
	db          *gorm.DB
	timeout     time.Duration
	ordersLimit int
}

func NewOrderService(db *gorm.DB, cfg config.Config) *OrderService {
	return &OrderService{
		db:          db,
		timeout:     cfg.DBTimeout,
		ordersLimit: cfg.OrdersLimit,
	}
}

// ValidateIntake checks the extracted parameters before anything touches the
// store. It returns the normalized table designator, and never has side
// effects.
func (s *OrderService) ValidateIntake(table string, items []IntakeItem) (string, error) {
	table = strings.TrimSpace(table)
	if table == "" || strings.EqualFold(table, models.TableUnknown) {
		return "", ErrMissingTable
	}
	if len(items) == 0 {
		return "", ErrNoItems
	}
	return table, nil
}

// PlaceOrder writes one Pending order and its lines in a single transaction
// and returns the generated order id. A non-numeric item id anywhere in the
// list rolls back the whole order.
func (s *OrderService) PlaceOrder(ctx context.Context, table string, items []IntakeItem) (uint, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var orderID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			TableNumber: table,
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			itemID, err := strconv.Atoi(strings.TrimSpace(item.ID))
			if err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidItemID, item.ID)
			}
			line := models.OrderedItem{
				OrderID:  order.ID,
				ItemID:   itemID,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// RecentOrders returns the newest orders with their lines, newest first,
// capped at the configured limit.
func (s *OrderService) RecentOrders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("OrderTimestamp desc").
		Limit(s.ordersLimit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// PendingOrders lists orders still waiting in the kitchen queue, oldest
// first.
func (s *OrderService) PendingOrders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("OrderStatus = ?", models.OrderStatusPending).
		Order("OrderTimestamp asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CompleteOrder removes a finished order and its lines from the queue, in
// one transaction.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID uint) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("OrderID = ?", orderID).Delete(&models.OrderedItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("OrderID = ?", orderID).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}

// DailySummary reports how many orders exist and how many are still pending.
func (s *OrderService) DailySummary(ctx context.Context) (total, pending int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	db := s.db.WithContext(ctx)
	if err = db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = db.Model(&models.Order{}).
		Where("OrderStatus = ?", models.OrderStatusPending).
		Count(&pending).Error
	if err != nil {
		return 0, 0, err
	}
	return total, pending, nil
}

// UpdateStatus sets the status of one existing order.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("OrderID = ?", orderID).
		Update("OrderStatus", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
