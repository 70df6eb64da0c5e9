package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/graphtrace/converters"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/engine"
	"github.com/katalvlaran/graphtrace/internal/store"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAlgoRequest serves algorithms that take {graph, startId, endId}.
func (s *Server) handleAlgoRequest(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wire.AlgoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.badBody(c, err)
			return
		}
		if err := req.Validate(); err != nil {
			s.fail(c, err)
			return
		}
		g, err := req.Graph.ToCore()
		if err != nil {
			s.fail(c, err)
			return
		}
		s.run(c, engine.Request{Algorithm: name, Graph: g, StartID: req.StartID, EndID: req.EndID})
	}
}

// handleGraphRequest serves algorithms whose body is the bare graph.
func (s *Server) handleGraphRequest(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := s.bindGraph(c)
		if !ok {
			return
		}
		s.run(c, engine.Request{Algorithm: name, Graph: g})
	}
}

func (s *Server) run(c *gin.Context, req engine.Request) {
	res, err := s.engine.Run(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wire.FromResult(res))
}

// bindGraph decodes and validates a graph body; on failure the response is
// already written.
func (s *Server) bindGraph(c *gin.Context) (*core.Graph, bool) {
	var body wire.Graph
	if err := c.ShouldBindJSON(&body); err != nil {
		s.badBody(c, err)
		return nil, false
	}
	g, err := body.ToCore()
	if err != nil {
		s.fail(c, err)
		return nil, false
	}

	return g, true
}

// handleToMatrix answers {"ids", "labels", "matrix"}. ?presence=true
// writes 1 for every link instead of its weight.
func (s *Server) handleToMatrix(c *gin.Context) {
	g, ok := s.bindGraph(c)
	if !ok {
		return
	}
	var opts []converters.Option
	if presence, _ := strconv.ParseBool(c.Query("presence")); presence {
		opts = append(opts, converters.WithPresence())
	}
	m, err := converters.ToAdjacencyMatrix(g, opts...)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) handleToEdgeList(c *gin.Context) {
	g, ok := s.bindGraph(c)
	if !ok {
		return
	}
	list, err := converters.ToEdgeList(g)
	if err != nil {
		s.fail(c, err)
		return
	}
	if list == nil {
		list = []converters.Triple{}
	}
	c.JSON(http.StatusOK, gin.H{"edgeList": list})
}

func (s *Server) handleToAdjList(c *gin.Context) {
	g, ok := s.bindGraph(c)
	if !ok {
		return
	}
	list, err := converters.ToAdjacencyList(g)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adjList": list})
}

// handleFrom serves the from_* routes. The body's typeFrom must name the
// route's own format. ?capacity=N stamps N on every synthesised link.
func (s *Server) handleFrom(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wire.ConvertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.badBody(c, err)
			return
		}
		if req.TypeFrom != format {
			s.fail(c, fmt.Errorf("%w: typeFrom must be %q", wire.ErrBadRequest, format))
			return
		}
		var opts []converters.Option
		if raw := c.Query("capacity"); raw != "" {
			capacity, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				s.fail(c, fmt.Errorf("%w: capacity: %w", wire.ErrBadRequest, err))
				return
			}
			opts = append(opts, converters.WithCapacity(capacity))
		}
		g, err := req.Build(opts...)
		if err != nil {
			s.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, wire.FromCore(g))
	}
}

func (s *Server) handleSave(c *gin.Context) {
	g, ok := s.bindGraph(c)
	if !ok {
		return
	}
	if err := s.store.Save(c.Request.Context(), g); err != nil {
		s.fail(c, err)
		return
	}
	requestLogger(c, s.logger).Info("graph saved",
		"nodes", g.NodeCount(), "links", g.LinkCount())
	c.JSON(http.StatusOK, gin.H{"status": "Graph saved successfully"})
}

// handleLoad returns the saved graph, or an empty undirected graph when
// nothing has been saved.
func (s *Server) handleLoad(c *gin.Context) {
	g, err := s.store.Load(c.Request.Context())
	if errors.Is(err, store.ErrNoSnapshot) {
		c.JSON(http.StatusOK, wire.FromCore(core.NewGraph()))
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wire.FromCore(g))
}
