package calculator

import (
	"math"

	"srf/grid"
	"srf/model"
)

// 磁通面积分：每匝定义一张随当地螺距倾斜的参考曲面，
// 逐网格列判断是否落在该匝足印之内，并在曲面上方最近的采样层取 Bz

// polarAngle (x,y) 的方位角，三分支合起来恰好覆盖整圆一次：
// 原点为退化点，按约定取 π；y≥0 取 acos(x/ρ) ∈ [0,π]；
// y<0 取 acos(−x/ρ)+π ∈ (π,2π]
func polarAngle(x, y float64) float64 {
	rho := math.Hypot(x, y)
	if rho == 0 {
		return math.Pi
	}
	if y >= 0 {
		return math.Acos(x / rho)
	}
	return math.Acos(-x/rho) + math.Pi
}

// turnFlux 对第 k 匝（1 起）积分磁通，返回磁通与该匝方位中点段的参考电流。
// 曲面高度从外缘的理想导线高度向轴线处的参考高度 zO 线性过渡，
// 足印半径为 R−r_w，磁通面严格留在导线包络之内。
func turnFlux(f *grid.Field, geo *model.CoilGeometry, amps []float64, k int) (phi, iRef float64) {
	lat := f.Lat
	spt := geo.S() / geo.N
	pitch := geo.Pitch[k-1]

	// 第 k 匝起点的累计高度
	var zc float64
	for n := 0; n < k-1; n++ {
		zc += geo.Pitch[n]
	}
	// 方位中点段：确定参考高度 zO 与参考电流
	mid := (k-1)*spt + spt/2
	zO := geo.Points[mid].Z
	iRef = amps[mid]

	rIn := geo.Radius - geo.WireRadius
	rIn2 := rIn * rIn
	area := lat.Step * lat.Step

	for i := 0; i < lat.NX; i++ {
		x := lat.X(i)
		for j := 0; j < lat.NY; j++ {
			y := lat.Y(j)
			rho2 := x*x + y*y
			if rho2 > rIn2 {
				continue
			}
			theta := polarAngle(x, y)
			zRef := zc + pitch*theta/(2*math.Pi)
			z1 := (zRef-zO)*(math.Sqrt(rho2)/geo.Radius) + zO
			kz := lat.ZIndexAbove(z1)
			phi += f.Bz(i, j, kz) * area
		}
	}
	return phi, iRef
}

// internalInductance 单匝内电感，圆截面直导线的标准近似 μ0·l/(8π)
func internalInductance(radius, pitch float64) float64 {
	l := math.Hypot(2*math.Pi*radius, pitch)
	return model.Mu0 * l / (8 * math.Pi)
}
