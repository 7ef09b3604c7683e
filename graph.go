package ecs

// dependencyGraph is a DAG over admitted SystemInfo descriptors, built by
// bucketing systems per resource and wiring edges between buckets:
//  1. index every system under each resource it touches, split into
//     readers-before-write / writers / readers-after-write buckets.
//  2-3. for every resource R: every writer of R depends on every
//     reader-before-write of R; every reader-after-write of R depends on
//     every writer of R.
//  4. among writers of the same R, add an edge forming a chain ordered by
//     admission, skipping a pair already ordered the other way.
//
// Topological ordering uses Kahn's algorithm: cycle detection falls out
// naturally (an exhausted queue with nodes still of positive in-degree),
// and it gives a natural place to tie-break deterministically by
// admission order (see DESIGN.md).
type dependencyGraph struct {
	nodes      []*SystemInfo
	dependsOn  [][]int // dependsOn[i] = positions i structurally depends on
	dependants [][]int // dependants[j] = positions that depend on j
}

type resourceBucket struct {
	rbw, writers, raw []int
}

func buildDependencyGraph(admitted []*SystemInfo) *dependencyGraph {
	n := len(admitted)
	g := &dependencyGraph{
		nodes:      admitted,
		dependsOn:  make([][]int, n),
		dependants: make([][]int, n),
	}

	addEdge := func(from, to int) {
		if from == to {
			return
		}
		for _, d := range g.dependsOn[to] {
			if d == from {
				return
			}
		}
		g.dependsOn[to] = append(g.dependsOn[to], from)
		g.dependants[from] = append(g.dependants[from], to)
	}

	buckets := make(map[ResourceID]*resourceBucket)
	var order []ResourceID
	bucketFor := func(r ResourceID) *resourceBucket {
		b, ok := buckets[r]
		if !ok {
			b = &resourceBucket{}
			buckets[r] = b
			order = append(order, r)
		}
		return b
	}

	for i, s := range admitted {
		for _, r := range s.ReadsBeforeWrite {
			b := bucketFor(r)
			b.rbw = append(b.rbw, i)
		}
		for _, r := range s.Writes {
			b := bucketFor(r)
			b.writers = append(b.writers, i)
		}
		for _, r := range s.ReadsAfterWrite {
			b := bucketFor(r)
			b.raw = append(b.raw, i)
		}
	}

	for _, r := range order {
		b := buckets[r]
		for _, w := range b.writers {
			for _, reader := range b.rbw {
				addEdge(reader, w)
			}
			for _, reader := range b.raw {
				addEdge(w, reader)
			}
		}
		for ai := 0; ai < len(b.writers); ai++ {
			for bi := ai + 1; bi < len(b.writers); bi++ {
				a, bb := b.writers[ai], b.writers[bi]
				if g.dependsOnTransitively(a, bb) {
					continue
				}
				addEdge(a, bb)
			}
		}
	}

	return g
}

// dependsOnTransitively reports whether node a (transitively) depends on
// node b, used by the writer-chain step to avoid introducing a cycle when
// a later-admitted writer already structurally precedes an earlier one
// through some other resource.
func (g *dependencyGraph) dependsOnTransitively(a, b int) bool {
	visited := make(map[int]bool)
	var visit func(n int) bool
	visit = func(n int) bool {
		if visited[n] {
			return false
		}
		visited[n] = true
		for _, d := range g.dependsOn[n] {
			if d == b || visit(d) {
				return true
			}
		}
		return false
	}
	return visit(a)
}

// topologicalOrder returns a stable Kahn's-algorithm walk (ties broken by
// ascending position, which tracks admission order), or a
// CircularDependencyError naming every system that never reached
// in-degree zero.
func (g *dependencyGraph) topologicalOrder() ([]int, error) {
	n := len(g.nodes)
	indegree := make([]int, n)
	for i := range g.dependsOn {
		indegree[i] = len(g.dependsOn[i])
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, dep := range g.dependants[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != n {
		var remaining []string
		for i := 0; i < n; i++ {
			if indegree[i] > 0 {
				remaining = append(remaining, g.nodes[i].Name)
			}
		}
		return nil, CircularDependencyError{Remaining: remaining}
	}
	return order, nil
}
