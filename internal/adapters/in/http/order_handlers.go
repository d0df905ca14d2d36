package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"payroll/internal/core/domain/model/kernel"
	"payroll/internal/core/domain/model/order"
)

// GetOrders returns the order collection as a hypermedia document.
func (s *Server) GetOrders(c echo.Context) error {
	all, err := s.orders.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.orderAssembler.ToCollectionDocument(all))
}

// GetOrder returns a single order or 404 when the id is unknown.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	found, err := s.orders.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.orderAssembler.ToDocument(found))
}

// CreateOrder stores a new order in the IN_PROGRESS status and answers
// 201 with a Location header pointing at the created resource.
func (s *Server) CreateOrder(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(req.Description)
	if err != nil {
		return err
	}

	saved, err := s.orders.Save(c.Request().Context(), newOrder)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation,
		s.routes.Href(kernel.OrderItemRoute, saved.ID()))
	return c.JSON(http.StatusCreated, s.orderAssembler.ToDocument(saved))
}

// CompleteOrder moves the order to the COMPLETED status. Orders in a
// terminal status are rejected with a 405 problem document.
func (s *Server) CompleteOrder(c echo.Context) error {
	return s.transitionOrder(c, (*order.Order).Complete)
}

// CancelOrder moves the order to the CANCELLED status. Orders in a
// terminal status are rejected with a 405 problem document.
func (s *Server) CancelOrder(c echo.Context) error {
	return s.transitionOrder(c, (*order.Order).Cancel)
}

func (s *Server) transitionOrder(c echo.Context, transition func(*order.Order) error) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	found, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := transition(found); err != nil {
		var transitionErr *order.TransitionError
		if errors.As(err, &transitionErr) {
			return writeProblem(c, http.StatusMethodNotAllowed, newTransitionProblem(transitionErr))
		}
		return err
	}

	saved, err := s.orders.Save(ctx, found)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.orderAssembler.ToDocument(saved))
}
