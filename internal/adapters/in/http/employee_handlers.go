package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/pkg/errs"
)

// GetEmployees returns the employee collection as a hypermedia document.
func (s *Server) GetEmployees(c echo.Context) error {
	all, err := s.employees.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.employeeAssembler.ToCollectionDocument(all))
}

// GetEmployee returns a single employee or 404 when the id is unknown.
func (s *Server) GetEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	found, err := s.employees.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.employeeAssembler.ToDocument(found))
}

// CreateEmployee stores a new employee and answers 201 with a Location
// header pointing at the created resource.
func (s *Server) CreateEmployee(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	newEmployee, err := req.toDomain()
	if err != nil {
		return err
	}

	saved, err := s.employees.Save(c.Request().Context(), newEmployee)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation,
		s.routes.Href(kernel.EmployeeItemRoute, saved.ID()))
	return c.JSON(http.StatusCreated, s.employeeAssembler.ToDocument(saved))
}

// ReplaceEmployee updates the employee under the path id, creating it
// with that id when it does not exist yet.
func (s *Server) ReplaceEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	desired, err := req.toDomain()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	existing, err := s.employees.FindByID(ctx, id)
	switch {
	case err == nil:
		if err := existing.ChangeName(desired.FirstName(), desired.LastName()); err != nil {
			return err
		}
		if err := existing.ChangeRole(desired.Role()); err != nil {
			return err
		}
		desired = existing
	case errors.Is(err, errs.ErrObjectNotFound):
		if err := desired.SetID(id); err != nil {
			return err
		}
	default:
		return err
	}

	saved, err := s.employees.Save(ctx, desired)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.employeeAssembler.ToDocument(saved))
}

// DeleteEmployee removes the employee and answers 204 whether or not
// the id existed.
func (s *Server) DeleteEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.employees.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
