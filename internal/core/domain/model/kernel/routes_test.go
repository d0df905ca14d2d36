package kernel_test

import (
	"testing"

	"payroll/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRouteTable_Template(t *testing.T) {
	table := kernel.NewRouteTable()

	assert.Equal(t, "/employees", table.Template(kernel.EmployeeCollectionRoute))
	assert.Equal(t, "/employees/:id", table.Template(kernel.EmployeeItemRoute))
	assert.Equal(t, "/orders", table.Template(kernel.OrderCollectionRoute))
	assert.Equal(t, "/orders/:id", table.Template(kernel.OrderItemRoute))
	assert.Equal(t, "/orders/:id/complete", table.Template(kernel.OrderCompleteRoute))
	assert.Equal(t, "/orders/:id/cancel", table.Template(kernel.OrderCancelRoute))
}

func TestRouteTable_Href(t *testing.T) {
	table := kernel.NewRouteTable()

	t.Run("collection_routes_take_no_id", func(t *testing.T) {
		assert.Equal(t, "/employees", table.Href(kernel.EmployeeCollectionRoute))
		assert.Equal(t, "/orders", table.Href(kernel.OrderCollectionRoute))
	})

	t.Run("item_routes_substitute_the_id", func(t *testing.T) {
		assert.Equal(t, "/employees/1", table.Href(kernel.EmployeeItemRoute, 1))
		assert.Equal(t, "/orders/42", table.Href(kernel.OrderItemRoute, 42))
		assert.Equal(t, "/orders/42/complete", table.Href(kernel.OrderCompleteRoute, 42))
		assert.Equal(t, "/orders/42/cancel", table.Href(kernel.OrderCancelRoute, 42))
	})

	t.Run("large_ids", func(t *testing.T) {
		assert.Equal(t, "/employees/9999", table.Href(kernel.EmployeeItemRoute, 9999))
	})
}
