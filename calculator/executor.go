package calculator

import (
	"sync"

	"gonum.org/v1/gonum/spatial/r3"

	"srf/grid"
	"srf/model"
)

// 基于 x 方向分块的网格扫描任务分配

type task struct {
	start int // 前闭
	end   int // 后开
}

type executor struct {
	workers int
}

func newExecutor(workers int) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{workers: workers}
}

// scan 把点阵按 x 方向切块派发给工作协程，全部节点算完才返回。
// 扫描是原子的：任一节点出错则整体失败，不保留部分结果。
func (e *executor) scan(f *grid.Field, segs []model.Segment, amps []float64) error {
	slabs := f.Lat.Slabs(e.workers * 2)
	tasks := make(chan task, len(slabs))
	for _, s := range slabs {
		tasks <- task{start: s[0], end: s[1]}
	}
	close(tasks)

	errCh := make(chan error, e.workers)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if err := scanSlab(f, t, segs, amps); err != nil {
					select {
					case errCh <- err:
					default:
					}
					return
				}
			}
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// scanSlab 扫描 [t.start, t.end) 的 x 列
func scanSlab(f *grid.Field, t task, segs []model.Segment, amps []float64) error {
	lat := f.Lat
	for i := t.start; i < t.end; i++ {
		x := lat.X(i)
		for j := 0; j < lat.NY; j++ {
			y := lat.Y(j)
			for k := 0; k < lat.NZ; k++ {
				b, err := fieldAt(model.Vec{X: x, Y: y, Z: lat.Z(k)}, segs, amps)
				if err != nil {
					return err
				}
				f.Set(i, j, k, r3.Norm(b), b.Z)
			}
		}
	}
	return nil
}
