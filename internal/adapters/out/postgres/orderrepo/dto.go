// Package orderrepo provides the GORM-backed implementation of the order-store
// port, with data transfer objects mapping the order aggregate and its line
// items to relational tables. In production the order store is a remote hosted
// backend; this adapter is the same contract served from Postgres, which also
// backs the integration test suite.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting orders.
// Indexed by type and status for the board's filtered fetches.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType        string     `gorm:"index"`
	Status           string     `gorm:"index"`
	PaymentStatus    string
	CustomerName     string
	CustomerPhone    string
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PickupLocationID *uuid.UUID `gorm:"type:uuid"`

	FulfillmentLocations []FulfillmentLocationDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// FulfillmentLocationDTO records one physical location responsible for part
// of an order, including its shipment state.
type FulfillmentLocationDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Role           string
	TrackingNumber string
	ShippedAt      *time.Time
}

// TableName specifies the database table name for fulfillment locations.
func (FulfillmentLocationDTO) TableName() string {
	return "order_fulfillment_locations"
}

// OrderItemDTO represents the database structure for order line items.
// Position preserves the encounter order of items within an order, which the
// aggregator relies on for display-stable grouping.
type OrderItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	Position          int
	ProductName       string
	Quantity          int
	UnitPrice         decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal         decimal.Decimal `gorm:"type:numeric(12,2)"`
	FulfillmentStatus string          `gorm:"index"`
	FulfillmentType   string
	LocationID        *uuid.UUID `gorm:"type:uuid;index"`
	LocationName      string
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// orderFromDomain converts an order aggregate to its database representation.
func orderFromDomain(o *order.Order) OrderDTO {
	var pickupID *uuid.UUID
	if id := o.PickupLocationID(); id != nil {
		raw := id.Bytes()
		pickupID = &raw
	}

	locations := make([]FulfillmentLocationDTO, 0, len(o.FulfillmentLocations()))
	for _, loc := range o.FulfillmentLocations() {
		locations = append(locations, FulfillmentLocationDTO{
			OrderID:        o.ID().Bytes(),
			LocationID:     loc.LocationID.Bytes(),
			Name:           loc.Name,
			Role:           loc.Role.String(),
			TrackingNumber: loc.TrackingNumber,
			ShippedAt:      loc.ShippedAt,
		})
	}

	return OrderDTO{
		ID:                   o.ID().Bytes(),
		OrderType:            o.Type().String(),
		Status:               o.Status().String(),
		PaymentStatus:        o.PaymentStatus().String(),
		CustomerName:         o.CustomerName(),
		CustomerPhone:        o.CustomerPhone(),
		TotalAmount:          o.Total().Amount(),
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
		PickupLocationID:     pickupID,
		FulfillmentLocations: locations,
	}
}

// orderToDomain converts a database DTO to an order aggregate via RestoreOrder,
// which re-validates the type/status invariant on the way in.
func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var pickupID *kernel.UUID
	if dto.PickupLocationID != nil {
		pID, pickupErr := kernel.UUIDFromBytes((*dto.PickupLocationID)[:])
		if pickupErr != nil {
			return nil, pickupErr
		}
		pickupID = &pID
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	locations := make([]order.FulfillmentLocation, 0, len(dto.FulfillmentLocations))
	for _, locDTO := range dto.FulfillmentLocations {
		locID, locErr := kernel.UUIDFromBytes(locDTO.LocationID[:])
		if locErr != nil {
			return nil, locErr
		}
		locations = append(locations, order.FulfillmentLocation{
			LocationID:     locID,
			Name:           locDTO.Name,
			Role:           order.FulfillmentType(locDTO.Role),
			TrackingNumber: locDTO.TrackingNumber,
			ShippedAt:      locDTO.ShippedAt,
		})
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                   id,
		Type:                 order.OrderType(dto.OrderType),
		Status:               order.Status(dto.Status),
		PaymentStatus:        order.PaymentStatus(dto.PaymentStatus),
		CustomerName:         dto.CustomerName,
		CustomerPhone:        dto.CustomerPhone,
		Total:                total,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		PickupLocationID:     pickupID,
		FulfillmentLocations: locations,
	})
}

// itemFromDomain converts a line item to its database representation.
func itemFromDomain(item *order.Item, position int) OrderItemDTO {
	var locationID *uuid.UUID
	if id := item.LocationID(); id != nil {
		raw := id.Bytes()
		locationID = &raw
	}

	return OrderItemDTO{
		ID:                item.ID().Bytes(),
		OrderID:           item.OrderID().Bytes(),
		Position:          position,
		ProductName:       item.ProductName(),
		Quantity:          item.Quantity(),
		UnitPrice:         item.UnitPrice().Amount(),
		LineTotal:         item.LineTotal().Amount(),
		FulfillmentStatus: item.FulfillmentStatus().String(),
		FulfillmentType:   item.FulfillmentType().String(),
		LocationID:        locationID,
		LocationName:      item.LocationName(),
	}
}

// itemToDomain converts a database DTO to a line item via RestoreItem.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var locationID *kernel.UUID
	if dto.LocationID != nil {
		locID, locErr := kernel.UUIDFromBytes((*dto.LocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		locationID = &locID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.ItemSnapshot{
		ID:                id,
		OrderID:           orderID,
		ProductName:       dto.ProductName,
		Quantity:          dto.Quantity,
		UnitPrice:         unitPrice,
		LineTotal:         lineTotal,
		FulfillmentStatus: order.FulfillmentStatus(dto.FulfillmentStatus),
		FulfillmentType:   order.FulfillmentType(dto.FulfillmentType),
		LocationID:        locationID,
		LocationName:      dto.LocationName,
	})
}
