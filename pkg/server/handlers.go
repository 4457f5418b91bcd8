package server

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-eventqueue/pkg/common/http/response"
	"github.com/huynhanx03/go-eventqueue/pkg/eventqueue"
	"github.com/huynhanx03/go-eventqueue/pkg/registry"
	"github.com/huynhanx03/go-eventqueue/pkg/serialize"
)

// Actions accepted by POST /queues/:name/:action.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionDisable = "disable"
	ActionEnable  = "enable"
)

// CodeQueueFull is the response code of a rejected event submission.
const CodeQueueFull = 4290

type queueURI struct {
	Name string `uri:"name" binding:"required"`
}

type stateURI struct {
	Name   string `uri:"name" binding:"required"`
	Action string `uri:"action" binding:"required,oneof=start stop disable enable"`
}

// DumpResponse is the body of GET /queues.
type DumpResponse struct {
	Paths   []registry.Path    `json:"paths"`
	Records *serialize.Context `json:"records"`
}

// QueueResponse is the body of GET /queues/:name and of state changes.
type QueueResponse struct {
	Name        string                 `json:"name"`
	Entitlement string                 `json:"entitlement"`
	State       eventqueue.State       `json:"state"`
	Lifecycle   string                 `json:"lifecycle"`
	Description eventqueue.Description `json:"description"`
}

func newQueueResponse(q *eventqueue.Queue) QueueResponse {
	st := q.State()
	return QueueResponse{
		Name:        q.Name(),
		Entitlement: q.Entitlement().String(),
		State:       st,
		Lifecycle:   st.Lifecycle().String(),
		Description: q.Describe(),
	}
}

// SubmitResponse is the body of POST /queues/:name/events.
type SubmitResponse struct {
	Outcome           string `json:"outcome"`
	Accepted          bool   `json:"accepted"`
	EnqueueErrorCount uint64 `json:"enqueue_error_count"`
}

// dump serves GET /queues. ?format=yaml renders the records as YAML.
func (s *Server) dump(c *gin.Context) {
	ctx := s.registry.Dump()

	if c.Query("format") == "yaml" {
		out, err := ctx.YAML()
		if err != nil {
			response.ErrorResponse(c, response.CodeInternalServer, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml", out)
		return
	}

	response.SuccessResponse(c, DumpResponse{
		Paths:   s.registry.Paths(),
		Records: ctx,
	})
}

func (s *Server) describe(_ context.Context, req *queueURI) (QueueResponse, error) {
	q, err := s.registry.Lookup(req.Name)
	if err != nil {
		return QueueResponse{}, err
	}
	return newQueueResponse(q), nil
}

func (s *Server) changeState(_ context.Context, req *stateURI) (QueueResponse, error) {
	q, err := s.registry.Lookup(req.Name)
	if err != nil {
		return QueueResponse{}, err
	}

	switch req.Action {
	case ActionStart:
		q.Start()
	case ActionStop:
		q.Stop()
	case ActionDisable:
		q.Disable()
	case ActionEnable:
		q.Enable()
	}
	return newQueueResponse(q), nil
}

// submit serves POST /queues/:name/events. The raw request body is one event.
func (s *Server) submit(c *gin.Context) {
	q, err := s.registry.Lookup(c.Param("name"))
	if err != nil {
		response.ErrorResponse(c, response.CodeInternalServer, err)
		return
	}

	// anything longer than the ring cannot fit anyway
	event, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(q.Capacity())+1))
	if err != nil {
		response.ErrorResponse(c, response.CodeParamInvalid, err)
		return
	}

	out := q.SubmitOutcome(event)
	res := SubmitResponse{
		Outcome:           out.String(),
		Accepted:          out != eventqueue.OutcomeOverflow,
		EnqueueErrorCount: q.EnqueueErrorCount(),
	}
	if out == eventqueue.OutcomeOverflow {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
			Code:    CodeQueueFull,
			Message: "queue full",
			Data:    res,
		})
		return
	}
	response.SuccessResponse(c, res)
}
