// Package wire holds the transport shapes of graphtrace: request bodies,
// graph documents read from JSON or YAML, and the sanitised form of
// trace.Result that never carries Inf or NaN.
package wire

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/graphtrace/core"
)

// validate is shared by every DTO in this package.
// Initialized in init() with the "finite" rule.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf on float fields.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	default:
		return true
	}
}

// Node is the transport form of core.Node.
type Node struct {
	ID    string  `json:"id" yaml:"id" validate:"required"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Type  string  `json:"type,omitempty" yaml:"type,omitempty"`
}

// Link is the transport form of core.Link.
type Link struct {
	Source   string   `json:"source" yaml:"source" validate:"required"`
	Target   string   `json:"target" yaml:"target" validate:"required"`
	Weight   float64  `json:"weight" yaml:"weight" validate:"finite"`
	Capacity *float64 `json:"capacity,omitempty" yaml:"capacity,omitempty" validate:"omitempty,finite"`
}

// Graph is the document exchanged with clients and graph files:
//
//	{"nodes": [...], "links": [...], "isDirected": false}
type Graph struct {
	Nodes      []Node `json:"nodes" yaml:"nodes" validate:"dive"`
	Links      []Link `json:"links" yaml:"links" validate:"dive"`
	IsDirected bool   `json:"isDirected" yaml:"isDirected"`
}

// Validate checks required ids and finite numbers.
func (g *Graph) Validate() error {
	if err := validate.Struct(g); err != nil {
		return classify(err)
	}

	return nil
}

// ToCore validates g and builds the engine graph. Non-finite weights
// surface as core.ErrInvalidWeight; dangling links as core.ErrNotFound.
func (g *Graph) ToCore() (*core.Graph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	doc := core.Document{
		Nodes:      make([]core.Node, len(g.Nodes)),
		Links:      make([]core.Link, len(g.Links)),
		IsDirected: g.IsDirected,
	}
	for i, n := range g.Nodes {
		doc.Nodes[i] = core.Node(n)
	}
	for i, l := range g.Links {
		doc.Links[i] = core.Link(l)
	}

	return core.FromDocument(doc)
}

// FromCore renders cg in transport form.
func FromCore(cg *core.Graph) Graph {
	out := Graph{IsDirected: cg.Directed()}
	for _, n := range cg.Nodes() {
		out.Nodes = append(out.Nodes, Node(n))
	}
	for _, l := range cg.Links() {
		out.Links = append(out.Links, Link(l))
	}
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	if out.Links == nil {
		out.Links = []Link{}
	}

	return out
}

// classify maps a validation failure onto the core sentinel it stands for.
func classify(err error) error {
	var verrs validator.ValidationErrors
	if ok := asValidation(err, &verrs); ok {
		for _, fe := range verrs {
			if fe.Tag() == "finite" {
				return fmt.Errorf("%w: %s", core.ErrInvalidWeight, fe.Namespace())
			}
		}
		return fmt.Errorf("%w: %s", core.ErrEmptyNodeID, verrs[0].Namespace())
	}

	return err
}
