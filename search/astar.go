package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/heuristic/executor"
)

// Solve runs lazy A* for one problem.
//
// Preconditions and validation (in order):
//  1. mp must be non-nil (ErrNilMap).
//  2. exec must be non-nil (ErrNilExecutor).
//  3. Start and Goal must lie inside the map (ErrCellOutOfRange).
//  4. Start and Goal must be passable (ErrCellUnpassable).
//
// An exhausted open list without reaching the goal is not an error: the
// result carries Solved=false and an empty path.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Solve(mp *grid.Map, p Problem, exec executor.Executor) (ProblemResult, error) {
	// 1) Validate inputs.
	if mp == nil {
		return ProblemResult{}, ErrNilMap
	}
	if exec == nil {
		return ProblemResult{}, ErrNilExecutor
	}
	if p.Start < 0 || p.Start >= mp.Len() || p.Goal < 0 || p.Goal >= mp.Len() {
		return ProblemResult{}, ErrCellOutOfRange
	}
	if mp.Tile(p.Start) != grid.Passable || mp.Tile(p.Goal) != grid.Passable {
		return ProblemResult{}, ErrCellUnpassable
	}

	// 2) Prepare per-search buffers. g is +Inf for unvisited cells so a
	//    first relaxation always improves it.
	total := mp.Len()
	r := &runner{
		mp:     mp,
		exec:   exec,
		goal:   p.Goal,
		g:      make([]float32, total),
		closed: make([]bool, total),
		parent: make([]int, total),
	}
	inf := float32(math.Inf(1))
	for i := 0; i < total; i++ {
		r.g[i] = inf
		r.parent[i] = -1
	}

	// 3) Seed the open list with the start state.
	gr, gc := mp.Ind2Sub(p.Goal)
	r.goalRow, r.goalCol = float32(gr), float32(gc)
	r.g[p.Start] = 0
	heap.Push(&r.open, NewState(p.Start, 0, r.estimate(p.Start)))

	// 4) Main loop.
	r.process()

	// 5) Reconstruct the goal→start path if the goal was reached.
	result := ProblemResult{
		Expansions:    r.expansions,
		NumTraversals: r.traversals,
		Solved:        r.solved,
	}
	if r.solved {
		result.SolutionPath = r.reconstruct(p.Start, p.Goal)
	}

	return result, nil
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	mp   *grid.Map
	exec executor.Executor
	goal int

	goalRow, goalCol float32

	g      []float32 // best-known distance per cell, +Inf = unvisited
	closed []bool    // finalized cells, never re-expanded
	parent []int     // predecessor per cell, -1 = none
	open   statePQ

	expansions []int
	traversals int
	solved     bool
}

// estimate evaluates the heuristic from cell i to the goal.
func (r *runner) estimate(i int) float32 {
	row, col := r.mp.Ind2Sub(i)

	return r.exec.Execute(float32(row), float32(col), r.goalRow, r.goalCol)
}

// process pops and relaxes until the goal is reached or the open list
// drains.
func (r *runner) process() {
	var cur State
	var newG float32
	var nb int
	for r.open.Len() > 0 {
		// 1) Extract the minimum-f entry.
		cur = heap.Pop(&r.open).(State)

		// 2) Stale entry: a better path to this cell was pushed after
		//    this one. Skip without recording an expansion.
		if cur.G != r.g[cur.Position] {
			continue
		}

		// 3) Finalize and record the pop.
		r.closed[cur.Position] = true
		r.expansions = append(r.expansions, cur.Position)

		// 4) Goal reached: stop before relaxing.
		if cur.Position == r.goal {
			r.solved = true

			return
		}

		// 5) Relax all 4-neighbours.
		for _, nb = range r.mp.Neighbours(cur.Position) {
			if r.closed[nb] {
				continue
			}
			newG = cur.G + EdgeCost
			if newG < r.g[nb] {
				r.g[nb] = newG
				r.parent[nb] = cur.Position
				heap.Push(&r.open, NewState(nb, newG, r.estimate(nb)))
				r.traversals++
			}
		}
	}
}

// reconstruct walks parent links from the goal back to the start.
func (r *runner) reconstruct(start, goal int) []int {
	path := []int{goal}
	cur := goal
	for cur != start {
		cur = r.parent[cur]
		path = append(path, cur)
	}

	return path
}

// statePQ is a min-heap of open-list entries ordered by State.less.
// Entries are stored by value; the lazy-decrease-key pattern never
// needs to address one after pushing it.
type statePQ []State

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by container/heap only.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(State)) }

// Pop removes and returns the last element; called by container/heap only.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
