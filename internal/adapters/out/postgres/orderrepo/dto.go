// Package orderrepo maps order aggregates to the orders table and implements
// ports.OrderRepository with GORM.
package orderrepo

import (
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. Seq is a bigserial that
// records insertion order; ID is the public order identifier.
type OrderDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ItemName   string    `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	CustomerID string    `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);index;not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ItemName:   aggregate.ItemName(),
		Quantity:   aggregate.Quantity(),
		CustomerID: aggregate.CustomerID(),
		Status:     string(aggregate.Status()),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, so a corrupted row
// surfaces as a validation error instead of an invalid order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.ItemName, dto.Quantity, dto.CustomerID, status)
}
