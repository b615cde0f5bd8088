package render

import (
	"runtime"
	"sync"

	"github.com/samber/lo"
)

// parallelThreshold is the row count below which sequential rendering beats
// the goroutine/channel setup cost.
const parallelThreshold = 100

// RenderAll draws every row, using a work-stealing goroutine pool once the
// batch is large enough to be worth it. Rows are independent of each other
// — nothing here reads a neighboring row — so this is a pure parallel map.
func (r *Renderer) RenderAll(rows []Row) []string {
	n := len(rows)
	if n == 0 {
		return nil
	}

	if n < parallelThreshold {
		return lo.Map(rows, func(row Row, _ int) string {
			return r.RenderRow(row)
		})
	}

	lines := make([]string, n)
	work := make(chan int, n)
	for i := 0; i < n; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				lines[i] = r.RenderRow(rows[i])
			}
		}()
	}
	wg.Wait()

	return lines
}
