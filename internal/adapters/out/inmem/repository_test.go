package inmem_test

import (
	"testing"

	"payroll/internal/adapters/out/inmem"
	"payroll/internal/core/domain/model/employee"
	"payroll/internal/core/domain/model/order"
	"payroll/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_Save(t *testing.T) {
	t.Run("assigns monotone ids on insert", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()
		ctx := t.Context()

		first, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
		require.NoError(t, err)
		second, err := employee.NewEmployee("Frodo", "Baggins", "thief")
		require.NoError(t, err)

		saved1, err := repo.Save(ctx, first)
		require.NoError(t, err)
		saved2, err := repo.Save(ctx, second)
		require.NoError(t, err)

		assert.Equal(t, int64(1), saved1.ID())
		assert.Equal(t, int64(2), saved2.ID())
		assert.Equal(t, int64(1), first.ID(), "id is populated on the passed aggregate")
	})

	t.Run("preserves an existing id on update", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()
		ctx := t.Context()

		e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
		require.NoError(t, err)
		saved, err := repo.Save(ctx, e)
		require.NoError(t, err)

		require.NoError(t, saved.ChangeRole("thief"))
		updated, err := repo.Save(ctx, saved)
		require.NoError(t, err)

		assert.Equal(t, saved.ID(), updated.ID())

		found, err := repo.FindByID(ctx, saved.ID())
		require.NoError(t, err)
		assert.Equal(t, "thief", found.Role())
	})

	t.Run("upsert under an explicit id does not collide with later inserts", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()
		ctx := t.Context()

		e, err := employee.RestoreEmployee(5, "Bilbo", "Baggins", "burglar")
		require.NoError(t, err)
		_, err = repo.Save(ctx, e)
		require.NoError(t, err)

		next, err := employee.NewEmployee("Frodo", "Baggins", "thief")
		require.NoError(t, err)
		saved, err := repo.Save(ctx, next)
		require.NoError(t, err)

		assert.Equal(t, int64(6), saved.ID())
	})

	t.Run("rejects a zero value aggregate", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()

		_, err := repo.Save(t.Context(), &employee.Employee{})
		assert.ErrorIs(t, err, employee.ErrEmployeeIsNotConstructed)
	})
}

func TestEmployeeRepository_FindAll(t *testing.T) {
	t.Run("returns a snapshot in insertion order", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()
		ctx := t.Context()

		for _, name := range [][2]string{{"Bilbo", "Baggins"}, {"Frodo", "Baggins"}, {"Samwise", "Gamgee"}} {
			e, err := employee.NewEmployee(name[0], name[1], "hobbit")
			require.NoError(t, err)
			_, err = repo.Save(ctx, e)
			require.NoError(t, err)
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Bilbo", all[0].FirstName())
		assert.Equal(t, "Frodo", all[1].FirstName())
		assert.Equal(t, "Samwise", all[2].FirstName())
	})

	t.Run("snapshot does not alias stored state", func(t *testing.T) {
		repo := inmem.NewEmployeeRepository()
		ctx := t.Context()

		e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
		require.NoError(t, err)
		_, err = repo.Save(ctx, e)
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.NoError(t, all[0].ChangeRole("wizard"))

		stored, err := repo.FindByID(ctx, all[0].ID())
		require.NoError(t, err)
		assert.Equal(t, "burglar", stored.Role())
	})
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	repo := inmem.NewEmployeeRepository()

	_, err := repo.FindByID(t.Context(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "employee", notFound.ParamName)
	assert.Equal(t, "9999", notFound.ID)
}

func TestEmployeeRepository_DeleteByID(t *testing.T) {
	repo := inmem.NewEmployeeRepository()
	ctx := t.Context()

	e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, e)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID()))
	_, err = repo.FindByID(ctx, saved.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	// Deleting again stays silent.
	assert.NoError(t, repo.DeleteByID(ctx, saved.ID()))
}

func TestOrderRepository(t *testing.T) {
	t.Run("save assigns ids and find returns equal state", func(t *testing.T) {
		repo := inmem.NewOrderRepository()
		ctx := t.Context()

		o, err := order.NewOrder("MacBook Pro")
		require.NoError(t, err)
		saved, err := repo.Save(ctx, o)
		require.NoError(t, err)
		assert.Equal(t, int64(1), saved.ID())

		found, err := repo.FindByID(ctx, saved.ID())
		require.NoError(t, err)
		assert.Equal(t, "MacBook Pro", found.Description())
		assert.Equal(t, order.InProgress, found.Status())
	})

	t.Run("status changes persist through save", func(t *testing.T) {
		repo := inmem.NewOrderRepository()
		ctx := t.Context()

		o, err := order.NewOrder("iPhone")
		require.NoError(t, err)
		saved, err := repo.Save(ctx, o)
		require.NoError(t, err)

		require.NoError(t, saved.Complete())
		_, err = repo.Save(ctx, saved)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, saved.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Completed, found.Status())
	})

	t.Run("missing order yields ObjectNotFoundError", func(t *testing.T) {
		repo := inmem.NewOrderRepository()

		_, err := repo.FindByID(t.Context(), 42)
		require.Error(t, err)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "order", notFound.ParamName)
		assert.Equal(t, "42", notFound.ID)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := inmem.NewOrderRepository()
		ctx := t.Context()

		o, err := order.NewOrder("iPhone")
		require.NoError(t, err)
		saved, err := repo.Save(ctx, o)
		require.NoError(t, err)

		assert.NoError(t, repo.DeleteByID(ctx, saved.ID()))
		assert.NoError(t, repo.DeleteByID(ctx, saved.ID()))
	})
}
