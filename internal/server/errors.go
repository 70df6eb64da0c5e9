package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/graphtrace/converters"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/engine"
	"github.com/katalvlaran/graphtrace/flow"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error codes.
const (
	CodeBadRequest       = "bad_request"
	CodeMissingParameter = "missing_parameter"
	CodeNotFound         = "not_found"
	CodeInvalidGraph     = "invalid_graph"
	CodeInvalidWeight    = "invalid_weight"
	CodeDirection        = "unsupported_direction"
	CodeNegativeCycle    = "negative_cycle"
	CodeEulerInfeasible  = "euler_infeasible"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal"
)

type mapping struct {
	target error
	status int
	code   string
}

// mappings is checked in order; the first errors.Is match wins.
var mappings = []mapping{
	{wire.ErrBadRequest, http.StatusBadRequest, CodeBadRequest},
	{core.ErrMissingParameter, http.StatusBadRequest, CodeMissingParameter},
	{flow.ErrSourceIsSink, http.StatusBadRequest, CodeBadRequest},
	{core.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{engine.ErrUnknownAlgorithm, http.StatusNotFound, CodeNotFound},
	{core.ErrEmptyNodeID, http.StatusBadRequest, CodeInvalidGraph},
	{core.ErrDuplicateNode, http.StatusBadRequest, CodeInvalidGraph},
	{converters.ErrInvalidMatrix, http.StatusBadRequest, CodeInvalidGraph},
	{converters.ErrLabelCount, http.StatusBadRequest, CodeInvalidGraph},
	{converters.ErrEmptyLabel, http.StatusBadRequest, CodeInvalidGraph},
	{core.ErrInvalidWeight, http.StatusUnprocessableEntity, CodeInvalidWeight},
	{core.ErrDirection, http.StatusUnprocessableEntity, CodeDirection},
	{core.ErrNegativeCycle, http.StatusUnprocessableEntity, CodeNegativeCycle},
	{core.ErrEulerInfeasible, http.StatusUnprocessableEntity, CodeEulerInfeasible},
}

// classify returns the HTTP status and code for err.
func classify(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}

	return http.StatusInternalServerError, CodeInternal
}

// fail aborts the request with the mapped status. 5xx errors are logged;
// their message is not echoed to the client.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		requestLogger(c, s.logger).Error("request failed", "error", msg)
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}

// badBody aborts with 400 for a body that did not decode.
func (s *Server) badBody(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: "invalid body: " + wire.Describe(err),
		Code:  CodeBadRequest,
	})
}
