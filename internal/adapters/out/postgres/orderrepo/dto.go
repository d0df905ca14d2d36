// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"payroll/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The status is stored under its enum name so that rows stay
// readable and stable across reorderings of the Go constants.
type OrderDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Description string
	Status      string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation. A zero id is left for the store to assign.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID(),
		Description: o.Description(),
		Status:      o.Status().String(),
	}
}

// toDomain converts a database row to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromName(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, dto.Description, status)
}
