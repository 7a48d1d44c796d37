package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"srf/model"
)

// 行波电流模型：沿导线以速度 speed 传播的电流波在 t 时刻的静态快照，
// 每段的电流幅值为 cos(2π·f1·t − ℓ/λ + φ0)，ℓ 为从馈电点起的累计弧长。
// ℓ/λ 不乘 2π，沿用参考算法。f1 是探测频率，远低于最终的谐振频率，
// 只用来让电感计算感知电流分布。

// currentDistribution 计算每段的电流幅值，首段钉死为 1 作为参考相位
func currentDistribution(segs []model.Segment, f1, t, phi0, speed float64) []float64 {
	lengths := make([]float64, len(segs))
	for i, s := range segs {
		lengths[i] = r3.Norm(s.DL)
	}
	// cum[i] 为第 0..i 段的弧长之和，第 i 段起点的累计弧长即 cum[i-1]
	cum := make([]float64, len(segs))
	floats.CumSum(cum, lengths)

	lambda := speed / f1
	amps := make([]float64, len(segs))
	amps[0] = 1
	for i := 1; i < len(segs); i++ {
		amps[i] = math.Cos(2*math.Pi*f1*t - cum[i-1]/lambda + phi0)
	}
	return amps
}
