package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"payroll/internal/core/domain/model/order"
)

// MediaTypeProblem is the RFC 7807 media type used for rejected state
// transitions.
const MediaTypeProblem = "application/problem+json"

// Problem is an RFC 7807 problem details document.
type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status,omitempty"`
}

func newTransitionProblem(transitionErr *order.TransitionError) Problem {
	return Problem{
		Title: "Method not allowed",
		Detail: fmt.Sprintf("You can't %s an order that is in the %s status",
			transitionErr.Action, transitionErr.Current),
		Status: http.StatusMethodNotAllowed,
	}
}

// writeProblem renders the problem with the problem+json content type.
// c.JSON is not usable here since it forces application/json.
func writeProblem(c echo.Context, status int, problem Problem) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, MediaTypeProblem)
	res.WriteHeader(status)
	return json.NewEncoder(res).Encode(problem)
}
