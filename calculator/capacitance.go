package calculator

import (
	"math"

	"srf/model"
)

// 匝间电容网络：相邻匝与次相邻匝各成一条链，
// 链内按弹性系数（倒电容）串联累加，两条链再并联

// elastance 单对匝的弹性系数 1/C = acosh(span/d)/(ε0·π²·D)
// 要求 span > d，否则 acosh 参数不大于 1，模型无定义
func elastance(span, wireDiameter, coilDiameter float64) float64 {
	return math.Acosh(span/wireDiameter) / (model.Eps0 * math.Pi * math.Pi * coilDiameter)
}

// validateSpans 在任何场计算之前校验所有匝间距
func validateSpans(pitch []float64, wireRadius float64) error {
	d := 2 * wireRadius
	for n := 0; n+1 < len(pitch); n++ {
		if span := (pitch[n] + pitch[n+1]) / 2; span <= d {
			return &model.DomainError{N1: n + 1, N2: n + 2, Span: span, Diameter: d}
		}
	}
	for n := 0; n+2 < len(pitch); n++ {
		if span := (pitch[n] + pitch[n+1]) + (pitch[n+1] + pitch[n+2]); span <= d {
			return &model.DomainError{N1: n + 1, N2: n + 3, Span: span, Diameter: d}
		}
	}
	return nil
}

// totalCapacitance 总电容。调用前必须通过 validateSpans。
// 相邻匝取两匝螺距的平均；次相邻匝取两个间隙之和，不取平均，
// 这一不对称沿用参考算法的跨距定义。
// 没有匝对的链贡献零电容，因此 N=1 时总电容为 0，由最终阶段判退化。
func totalCapacitance(pitch []float64, radius, wireRadius float64) float64 {
	d := 2 * wireRadius
	coilD := 2 * radius

	var eNN float64 // Σ 1/C_NN
	for n := 0; n+1 < len(pitch); n++ {
		eNN += elastance((pitch[n]+pitch[n+1])/2, d, coilD)
	}
	var e2NN float64 // Σ 1/C_2NN
	for n := 0; n+2 < len(pitch); n++ {
		e2NN += elastance((pitch[n]+pitch[n+1])+(pitch[n+1]+pitch[n+2]), d, coilD)
	}

	var c float64
	if eNN > 0 {
		c += 1 / eNN
	}
	if e2NN > 0 {
		c += 1 / e2NN
	}
	return c
}
