package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderStore implements ports.OrderStore using GORM.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Add persists a new order with its line items. Used by seeding and tests;
// order creation itself happens at the point of sale, outside the engine.
func (s *GormOrderStore) Add(ctx context.Context, aggregate *order.Order, items []*order.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dto := orderFromDomain(aggregate)
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		for i, item := range items {
			itemDTO := itemFromDomain(item, i)
			if err := tx.Create(&itemDTO).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FetchOrders reads a snapshot of orders matching the filter, oldest first.
func (s *GormOrderStore) FetchOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := s.db.WithContext(ctx).Preload("FulfillmentLocations").Order("created_at")

	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, t.String())
		}
		query = query.Where("order_type IN ?", types)
	}
	if len(filter.ExcludeStatuses) > 0 {
		statuses := make([]string, 0, len(filter.ExcludeStatuses))
		for _, st := range filter.ExcludeStatuses {
			statuses = append(statuses, st.String())
		}
		query = query.Where("status NOT IN ?", statuses)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// FetchOrder reads a snapshot of a single order.
func (s *GormOrderStore) FetchOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := s.db.WithContext(ctx).
		Preload("FulfillmentLocations").
		First(&dto, "id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return nil, err
	}

	return orderToDomain(dto)
}

// FetchOrderItems reads a snapshot of an order's line items in encounter order.
func (s *GormOrderStore) FetchOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := itemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateOrderStatus issues a status transition. The store enforces only that
// the new status is legal for the order's type; pipeline reachability is the
// caller's responsibility.
func (s *GormOrderStore) UpdateOrderStatus(
	ctx context.Context,
	orderID kernel.UUID,
	newStatus order.Status,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.First(&dto, "id = ?", orderID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", orderID.String())
			}
			return err
		}

		if err := newStatus.ValidateFor(order.OrderType(dto.OrderType)); err != nil {
			return err
		}

		return tx.Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).
			Updates(map[string]any{
				"status":     newStatus.String(),
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.FetchOrder(ctx, orderID)
}

// FulfillItemsAtLocation marks all of a location's items fulfilled and reports
// what remains. The whole command runs in one transaction so the reported
// remaining locations reflect a consistent point in time.
func (s *GormOrderStore) FulfillItemsAtLocation(
	ctx context.Context,
	orderID kernel.UUID,
	locationID *kernel.UUID,
) (ports.FulfillmentResult, error) {
	if err := orderID.Validate(); err != nil {
		return ports.FulfillmentResult{}, err
	}

	var result ports.FulfillmentResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&OrderItemDTO{}).
			Where("order_id = ?", orderID.Bytes()).
			Where("fulfillment_status = ?", order.ItemPending.String())
		if locationID != nil {
			update = update.Where("location_id = ?", locationID.Bytes())
		} else {
			update = update.Where("location_id IS NULL")
		}

		updated := update.Update("fulfillment_status", order.ItemFulfilled.String())
		if updated.Error != nil {
			return updated.Error
		}
		result.ItemsFulfilled = int(updated.RowsAffected)

		var remaining []OrderItemDTO
		err := tx.
			Where("order_id = ?", orderID.Bytes()).
			Where("fulfillment_status = ?", order.ItemPending.String()).
			Find(&remaining).Error
		if err != nil {
			return err
		}

		result.OrderFullyFulfilled = len(remaining) == 0
		result.RemainingLocations = distinctLocationIDs(remaining)

		return tx.Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return ports.FulfillmentResult{}, err
	}
	return result, nil
}

// RecordShipment stores the carrier handoff for one location.
func (s *GormOrderStore) RecordShipment(
	ctx context.Context,
	orderID kernel.UUID,
	locationID kernel.UUID,
	trackingNumber string,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shipped := tx.Model(&FulfillmentLocationDTO{}).
			Where("order_id = ? AND location_id = ?", orderID.Bytes(), locationID.Bytes()).
			Updates(map[string]any{
				"tracking_number": trackingNumber,
				"shipped_at":      time.Now().UTC(),
			})
		if shipped.Error != nil {
			return shipped.Error
		}
		if shipped.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("fulfillmentLocation", locationID.String())
		}

		return tx.Model(&OrderDTO{}).
			Where("id = ?", orderID.Bytes()).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return nil, err
	}

	return s.FetchOrder(ctx, orderID)
}

// distinctLocationIDs collects the unique non-null location IDs of the given
// items, in encounter order.
func distinctLocationIDs(dtos []OrderItemDTO) []kernel.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		if dto.LocationID == nil {
			continue
		}
		if _, ok := seen[*dto.LocationID]; ok {
			continue
		}
		seen[*dto.LocationID] = struct{}{}
		if id, err := kernel.UUIDFromBytes((*dto.LocationID)[:]); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
