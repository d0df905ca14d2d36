// Package http exposes the employee and order resources over HTTP/JSON.
// Handlers stay thin: they decode the request, call the domain model
// through the repository ports and render hypermedia documents built
// by the assemblers.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"payroll/internal/core/application/assemblers"
	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/core/ports"
	"payroll/internal/pkg/errs"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	employees ports.EmployeeRepository
	orders    ports.OrderRepository

	employeeAssembler assemblers.EmployeeAssembler
	orderAssembler    assemblers.OrderAssembler

	routes *kernel.RouteTable
	logger *slog.Logger
}

// NewServer creates a Server. All arguments are required.
func NewServer(
	employees ports.EmployeeRepository,
	orders ports.OrderRepository,
	routes *kernel.RouteTable,
	logger *slog.Logger,
) (*Server, error) {
	if employees == nil {
		return nil, errs.NewValueIsRequiredError("employees")
	}
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}
	if routes == nil {
		return nil, errs.NewValueIsRequiredError("routes")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Server{
		employees: employees,
		orders:    orders,

		employeeAssembler: assemblers.NewEmployeeAssembler(routes),
		orderAssembler:    assemblers.NewOrderAssembler(routes),

		routes: routes,
		logger: logger,
	}, nil
}

// Register mounts middleware, the error advisor and all resource routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.requestLogger())

	e.GET("/health", s.Health)

	e.GET(s.routes.Template(kernel.EmployeeCollectionRoute), s.GetEmployees)
	e.POST(s.routes.Template(kernel.EmployeeCollectionRoute), s.CreateEmployee)
	e.GET(s.routes.Template(kernel.EmployeeItemRoute), s.GetEmployee)
	e.PUT(s.routes.Template(kernel.EmployeeItemRoute), s.ReplaceEmployee)
	e.DELETE(s.routes.Template(kernel.EmployeeItemRoute), s.DeleteEmployee)

	e.GET(s.routes.Template(kernel.OrderCollectionRoute), s.GetOrders)
	e.POST(s.routes.Template(kernel.OrderCollectionRoute), s.CreateOrder)
	e.GET(s.routes.Template(kernel.OrderItemRoute), s.GetOrder)
	e.PUT(s.routes.Template(kernel.OrderCompleteRoute), s.CompleteOrder)
	e.DELETE(s.routes.Template(kernel.OrderCancelRoute), s.CancelOrder)
}

// Health reports liveness.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "healthy")
}

// handleError is the central advisor translating domain errors into
// HTTP responses. Unknown errors fall through to the echo default.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		if writeErr := c.String(http.StatusNotFound,
			fmt.Sprintf("Could not find %s %v", notFound.ParamName, notFound.ID)); writeErr != nil {
			s.logger.Error("write not found response", "error", writeErr)
		}
		return
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		err = echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	c.Echo().DefaultHTTPErrorHandler(err, c)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}
