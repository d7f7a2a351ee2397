package executor_test

import (
	"testing"

	"github.com/katalvlaran/heursearch/heuristic"
	"github.com/katalvlaran/heursearch/heuristic/executor"
)

// benchTree is a mid-sized expression exercising every operator class.
const benchTree = "(min (* (* deltaY (abs y2)) (abs (max y2 deltaY))) (min x1 (neg (abs (abs (neg (sqrt (sqr x2))))))))"

// BenchmarkInterpreter measures the recursive tree walk.
func BenchmarkInterpreter(b *testing.B) {
	in := executor.NewInterpreter(heuristic.MustParse(benchTree))

	b.ResetTimer()
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += in.Execute(float32(i%64), 3, 17, float32(i%32))
	}
	_ = sink
}

// BenchmarkProgram measures the compiled postfix stream on the same
// expression; the gap over BenchmarkInterpreter is the dispatch cost
// the compiler removes.
func BenchmarkProgram(b *testing.B) {
	pr := executor.Compile(heuristic.MustParse(benchTree))

	b.ResetTimer()
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += pr.Execute(float32(i%64), 3, 17, float32(i%32))
	}
	_ = sink
}

// BenchmarkCompile measures compilation itself: it must stay cheap
// because every candidate heuristic is compiled exactly once and
// thrown away.
func BenchmarkCompile(b *testing.B) {
	root := heuristic.MustParse(benchTree)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = executor.Compile(root)
	}
}
