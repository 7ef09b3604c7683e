package ecs

import "github.com/TheBitDrifter/mask"

// QueryNode is a node in a query's evaluation tree, evaluated directly
// against an archetype's component mask.
type QueryNode interface {
	Evaluate(archMask mask.Mask) bool
}

type queryOperation int

const (
	opAnd queryOperation = iota
	opOr
	opNot
)

type leafNode struct {
	ids []ComponentID
}

func (n *leafNode) archMask() mask.Mask {
	var m mask.Mask
	for _, id := range n.ids {
		m.Mark(uint32(id))
	}
	return m
}

// Evaluate reports whether archMask carries every id in the leaf.
type allNode struct{ leafNode }

func (n *allNode) Evaluate(archMask mask.Mask) bool {
	return archMask.ContainsAll(n.archMask())
}

type noneNode struct{ leafNode }

func (n *noneNode) Evaluate(archMask mask.Mask) bool {
	return archMask.ContainsNone(n.archMask())
}

type compositeNode struct {
	op       queryOperation
	children []QueryNode
}

func (n *compositeNode) Evaluate(archMask mask.Mask) bool {
	switch n.op {
	case opAnd:
		for _, c := range n.children {
			if !c.Evaluate(archMask) {
				return false
			}
		}
		return true
	case opOr:
		for _, c := range n.children {
			if c.Evaluate(archMask) {
				return true
			}
		}
		return len(n.children) == 0
	case opNot:
		return !n.children[0].Evaluate(archMask)
	}
	return false
}

// All builds a leaf requiring every listed component type to be present.
func All(ids ...ComponentID) QueryNode { return &allNode{leafNode{ids: ids}} }

// None builds a leaf requiring every listed component type to be absent.
func None(ids ...ComponentID) QueryNode { return &noneNode{leafNode{ids: ids}} }

// And requires every child node to match.
func And(nodes ...QueryNode) QueryNode { return &compositeNode{op: opAnd, children: nodes} }

// Or requires at least one child node to match.
func Or(nodes ...QueryNode) QueryNode { return &compositeNode{op: opOr, children: nodes} }

// Not inverts a single child node.
func Not(node QueryNode) QueryNode { return &compositeNode{op: opNot, children: []QueryNode{node}} }

// Query is a reusable, composable archetype filter. A Query
// is meant to be built once (typically alongside the System or Cursor that
// uses it) and reused every tick, since EntityIndex.Match caches matched
// archetypes per *Query identity.
type Query struct {
	root QueryNode
}

// NewQuery wraps a QueryNode tree as a reusable Query.
func NewQuery(root QueryNode) *Query {
	return &Query{root: root}
}

// Evaluate reports whether archMask satisfies the query.
func (q *Query) Evaluate(archMask mask.Mask) bool {
	if q.root == nil {
		return true
	}
	return q.root.Evaluate(archMask)
}
