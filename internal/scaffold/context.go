package scaffold

import "github.com/buildforge/scaffold/internal/naming"

// EntityContext carries the derived name forms for one entity. Every
// generated file goes through this single constructor, so model classes,
// route paths, and variable names agree across the whole project.
type EntityContext struct {
	Name   string // lower-case singular, e.g. "order"
	Class  string // class name, e.g. "Order"
	Plural string // route/collection form, e.g. "orders"
}

// NewEntityContext derives the name forms for a single entity.
func NewEntityContext(name string) EntityContext {
	return EntityContext{
		Name:   name,
		Class:  naming.Capitalize(name),
		Plural: naming.Pluralize(name),
	}
}

// EntityContexts derives name forms for an ordered entity list,
// preserving order.
func EntityContexts(names []string) []EntityContext {
	out := make([]EntityContext, len(names))
	for i, n := range names {
		out[i] = NewEntityContext(n)
	}
	return out
}
