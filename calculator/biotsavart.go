package calculator

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"srf/model"
)

// 毕奥-萨伐尔叠加：B = Σ μ0·I_i/(4π·|r_i|²)·(dl_i × r̂_i)
// 每个网格节点调用一次，总工作量 O(节点数 × 段数)，是整个求解的主要开销。
// 场点与某段起点重合时贡献无定义，立即返回奇点错误。

// fieldAt 计算点 p 处的磁场矢量
func fieldAt(p model.Vec, segs []model.Segment, amps []float64) (model.Vec, error) {
	var b model.Vec
	for i := range segs {
		r := r3.Sub(p, segs[i].Position)
		d2 := r3.Norm2(r)
		if d2 == 0 {
			return model.Vec{}, &model.SingularityError{X: p.X, Y: p.Y, Z: p.Z}
		}
		rhat := r3.Scale(1/math.Sqrt(d2), r)
		b = r3.Add(b, r3.Scale(model.Mu0*amps[i]/(4*math.Pi*d2), r3.Cross(segs[i].DL, rhat)))
	}
	return b, nil
}
