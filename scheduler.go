package ecs

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/TheBitDrifter/bark"
)

// Scheduler executes one frame at a time: it refreshes its dependency plan
// when the process-wide system registry changes, resets per-position
// dependency counters, and fans ready systems out to a pool of worker
// goroutines.
type Scheduler struct {
	world  *World
	reader *ReaderHandle

	mu        sync.Mutex
	instances map[*SystemInfo]System

	plan            []*SystemInfo
	dependants      [][]int
	initialDepCount []int32
}

// NewScheduler constructs a Scheduler bound to world: it registers a reader
// on the system registry's "system set changed" channel and performs the
// first plan build.
func NewScheduler(world *World) *Scheduler {
	s := &Scheduler{
		world:     world,
		instances: make(map[*SystemInfo]System),
	}
	s.reader = globalSystems.changes.Register()
	s.refreshPlan()
	return s
}

// Tick runs one frame: rebuilds the plan if the registry has changed since
// the last tick, resets dependency counters, and fans systems out to the
// worker pool.
func (s *Scheduler) Tick(world *World) {
	if globalSystems.changes.ReadAny(s.reader) {
		s.refreshPlan()
	}
	s.runFrame(world)
}

func (s *Scheduler) isResourceMatched(info *SystemInfo) bool {
	check := func(ids []ResourceID) bool {
		for _, id := range ids {
			if id == EntitiesResourceID {
				continue
			}
			if !s.world.containsType(id) {
				return false
			}
		}
		return true
	}
	return check(info.ReadsBeforeWrite) && check(info.Writes) && check(info.ReadsAfterWrite)
}

// refreshPlan rebuilds the dense, position-indexed local schedule from the
// registry's current snapshot. Systems whose declared
// resources aren't all present in the World are filtered out for this
// frame; their structural dependencies are transitively bridged so a
// downstream system doesn't wait forever on a dependency that will never
// run.
func (s *Scheduler) refreshPlan() {
	admitted := globalSystems.snapshot()
	full := buildDependencyGraph(admitted)
	if _, err := full.topologicalOrder(); err != nil {
		panic(bark.AddTrace(err))
	}

	matchedSet := make(map[int]bool, len(admitted))
	var matchedOrder []int
	for i, info := range admitted {
		if s.isResourceMatched(info) {
			matchedSet[i] = true
			matchedOrder = append(matchedOrder, i)
		}
	}

	pos := make(map[int]int, len(matchedOrder))
	for local, global := range matchedOrder {
		pos[global] = local
	}

	n := len(matchedOrder)
	localDeps := make([][]int, n)
	for local, global := range matchedOrder {
		ancestors := transitiveMatchedAncestors(full, matchedSet, global)
		for _, a := range ancestors {
			localDeps[local] = append(localDeps[local], pos[a])
		}
	}

	dependants := make([][]int, n)
	initialDepCount := make([]int32, n)
	for local, deps := range localDeps {
		initialDepCount[local] = int32(len(deps)) + 1
		for _, d := range deps {
			dependants[d] = append(dependants[d], local)
		}
	}

	plan := make([]*SystemInfo, n)
	for local, global := range matchedOrder {
		plan[local] = admitted[global]
	}

	s.mu.Lock()
	s.plan = plan
	s.dependants = dependants
	s.initialDepCount = initialDepCount
	for _, info := range plan {
		if _, ok := s.instances[info]; !ok {
			s.instances[info] = info.New()
		}
	}
	s.mu.Unlock()

	if Config.planRebuildHook != nil {
		Config.planRebuildHook(PlanInfo{AdmittedSystems: n, SkippedSystems: len(admitted) - n})
	}
}

// transitiveMatchedAncestors walks full's dependsOn edges from global,
// returning every matched node reachable without crossing another matched
// node first: an unmatched dependency is skipped over, its own
// dependencies inherited in its place.
func transitiveMatchedAncestors(full *dependencyGraph, matchedSet map[int]bool, global int) []int {
	var out []int
	seenOut := make(map[int]bool)
	visited := make(map[int]bool)
	var visit func(n int)
	visit = func(n int) {
		for _, d := range full.dependsOn[n] {
			if matchedSet[d] {
				if !seenOut[d] {
					seenOut[d] = true
					out = append(out, d)
				}
				continue
			}
			if visited[d] {
				continue
			}
			visited[d] = true
			visit(d)
		}
	}
	visit(global)
	return out
}

// runFrame resets this tick's dependency counters and fans systems out to a
// pool of worker goroutines draining a shared channel of ready positions:
// every worker pulls from the same queue instead of owning a static slice
// of work, so a slow system never starves idle workers of the rest of the
// frame's ready set.
func (s *Scheduler) runFrame(world *World) {
	s.mu.Lock()
	plan := s.plan
	dependants := s.dependants
	initial := s.initialDepCount
	s.mu.Unlock()

	n := len(plan)
	if n == 0 {
		return
	}

	remaining := make([]int32, n)
	copy(remaining, initial)

	ready := make(chan int, n)
	var wg sync.WaitGroup
	wg.Add(n)

	workers := Config.workerCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	var pool sync.WaitGroup
	pool.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer pool.Done()
			for i := range ready {
				instance := s.instances[plan[i]]
				instance.Run(world)
				for _, dep := range dependants[i] {
					if atomic.AddInt32(&remaining[dep], -1) == 0 {
						ready <- dep
					}
				}
				wg.Done()
			}
		}()
	}

	// Self-guard pass: every position's guard is
	// decremented once here; roots (structural deps == 0, guard == 1) become
	// runnable immediately, non-roots still wait on their dependencies.
	for i := 0; i < n; i++ {
		if atomic.AddInt32(&remaining[i], -1) == 0 {
			ready <- i
		}
	}

	wg.Wait()
	close(ready)
	pool.Wait()
}
