package employee_test

import (
	"testing"

	"payroll/internal/core/domain/model/employee"
	"payroll/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("should create employee from name parts", func(t *testing.T) {
		e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")

		require.NoError(t, err)
		assert.Equal(t, int64(0), e.ID())
		assert.Equal(t, "Bilbo", e.FirstName())
		assert.Equal(t, "Baggins", e.LastName())
		assert.Equal(t, "burglar", e.Role())
		assert.Equal(t, "Bilbo Baggins", e.Name())
		assert.NoError(t, e.Validate())
	})

	t.Run("should require all fields", func(t *testing.T) {
		cases := []struct {
			name      string
			firstName string
			lastName  string
			role      string
		}{
			{"missing first name", "", "Baggins", "burglar"},
			{"missing last name", "Bilbo", "", "burglar"},
			{"missing role", "Bilbo", "Baggins", ""},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := employee.NewEmployee(tc.firstName, tc.lastName, tc.role)
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})
}

func TestNewEmployeeFromFullName(t *testing.T) {
	t.Run("should split on the first space", func(t *testing.T) {
		e, err := employee.NewEmployeeFromFullName("Bilbo Baggins", "burglar")

		require.NoError(t, err)
		assert.Equal(t, "Bilbo", e.FirstName())
		assert.Equal(t, "Baggins", e.LastName())
		assert.Equal(t, "Bilbo Baggins", e.Name())
	})

	t.Run("remainder keeps further spaces", func(t *testing.T) {
		e, err := employee.NewEmployeeFromFullName("Samwise the Brave", "gardener")

		require.NoError(t, err)
		assert.Equal(t, "Samwise", e.FirstName())
		assert.Equal(t, "the Brave", e.LastName())
	})

	t.Run("should reject a single-token name", func(t *testing.T) {
		_, err := employee.NewEmployeeFromFullName("Gollum", "guide")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSplitFullName(t *testing.T) {
	first, last, err := employee.SplitFullName("Frodo Baggins")
	require.NoError(t, err)
	assert.Equal(t, "Frodo", first)
	assert.Equal(t, "Baggins", last)

	_, _, err = employee.SplitFullName("Frodo")
	assert.Error(t, err)
}

func TestRestoreEmployee(t *testing.T) {
	t.Run("should rehydrate a persisted employee", func(t *testing.T) {
		e, err := employee.RestoreEmployee(5, "Frodo", "Baggins", "thief")

		require.NoError(t, err)
		assert.Equal(t, int64(5), e.ID())
		assert.Equal(t, "Frodo Baggins", e.Name())
	})

	t.Run("should reject a non-positive id", func(t *testing.T) {
		_, err := employee.RestoreEmployee(0, "Frodo", "Baggins", "thief")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestEmployee_Validate(t *testing.T) {
	t.Run("zero value employee fails validation", func(t *testing.T) {
		var e employee.Employee
		assert.ErrorIs(t, e.Validate(), employee.ErrEmployeeIsNotConstructed)
	})

	t.Run("nil employee fails validation", func(t *testing.T) {
		var e *employee.Employee
		assert.ErrorIs(t, e.Validate(), employee.ErrEmployeeIsNotConstructed)
	})
}

func TestEmployee_Rename(t *testing.T) {
	e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
	require.NoError(t, err)

	t.Run("replaces both name parts", func(t *testing.T) {
		require.NoError(t, e.Rename("Frodo Baggins"))
		assert.Equal(t, "Frodo", e.FirstName())
		assert.Equal(t, "Baggins", e.LastName())
	})

	t.Run("rejects a single-token name", func(t *testing.T) {
		err := e.Rename("Frodo")
		require.Error(t, err)
		assert.Equal(t, "Frodo", e.FirstName())
		assert.Equal(t, "Baggins", e.LastName())
	})
}

func TestEmployee_ChangeNameAndRole(t *testing.T) {
	e, err := employee.NewEmployee("Bilbo", "Baggins", "burglar")
	require.NoError(t, err)

	require.NoError(t, e.ChangeName("Frodo", "Baggins"))
	require.NoError(t, e.ChangeRole("thief"))

	assert.Equal(t, "Frodo Baggins", e.Name())
	assert.Equal(t, "thief", e.Role())

	assert.Error(t, e.ChangeName("", "Baggins"))
	assert.Error(t, e.ChangeRole(""))
}

func TestEmployee_IsEqual(t *testing.T) {
	a, err := employee.RestoreEmployee(1, "Bilbo", "Baggins", "burglar")
	require.NoError(t, err)
	b, err := employee.RestoreEmployee(1, "Bilbo", "Baggins", "burglar")
	require.NoError(t, err)
	c, err := employee.RestoreEmployee(1, "Bilbo", "Baggins", "thief")
	require.NoError(t, err)
	d, err := employee.RestoreEmployee(2, "Bilbo", "Baggins", "burglar")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(d))
	assert.False(t, a.IsEqual(nil))
}
