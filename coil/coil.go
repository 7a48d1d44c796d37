package coil

import (
	"math"

	log "github.com/sirupsen/logrus"

	"srf/model"
)

// 绕组几何生成器：产出导线中心线的有序离散点，供求解管线只读使用。
// 每匝分到 s/N 段，段数必须能被匝数整除，否则匝索引无从定义。

// Uniform 等螺距圆柱绕组
func Uniform(n int, pitch, radius, wireRadius float64, s int) (*model.CoilGeometry, error) {
	pitches := make([]float64, n)
	for i := range pitches {
		pitches[i] = pitch
	}
	return Varied(pitches, radius, wireRadius, s)
}

// Varied 变螺距圆柱绕组，每匝螺距独立
func Varied(pitch []float64, radius, wireRadius float64, s int) (*model.CoilGeometry, error) {
	n := len(pitch)
	if err := check(n, pitch, radius, wireRadius, s); err != nil {
		return nil, err
	}
	spt := s / n

	points := make([]model.Vec, s+1)
	for j := 0; j <= s; j++ {
		// 点 j 在所属匝内的方位角与高度
		k := j / spt
		if k == n { // 终点归于最后一匝
			k = n - 1
		}
		phase := 2 * math.Pi * float64(j%spt) / float64(spt)
		if j == s {
			phase = 2 * math.Pi
		}
		var zc float64
		for m := 0; m < k; m++ {
			zc += pitch[m]
		}
		z := zc + pitch[k]*phase/(2*math.Pi)
		points[j] = model.Vec{
			X: radius * math.Cos(2*math.Pi*float64(j)/float64(spt)),
			Y: radius * math.Sin(2*math.Pi*float64(j)/float64(spt)),
			Z: z,
		}
	}

	geo := &model.CoilGeometry{
		Points:     points,
		Pitch:      append([]float64(nil), pitch...),
		N:          n,
		Radius:     radius,
		WireRadius: wireRadius,
	}
	log.WithFields(log.Fields{
		"匝数": n,
		"段数": s,
		"半径": radius,
		"总高": geo.Height(),
	}).Info("生成圆柱绕组")
	return geo, nil
}

// Spherical 球面绕组：方位与高度同圆柱绕组，但每点的径向距离
// 收拢到以赤道半径 radius、中心在总高一半处的球面上。
// 要求总高小于球直径。包络半径即赤道半径。
func Spherical(pitch []float64, radius, wireRadius float64, s int) (*model.CoilGeometry, error) {
	n := len(pitch)
	if err := check(n, pitch, radius, wireRadius, s); err != nil {
		return nil, err
	}
	cyl, err := Varied(pitch, radius, wireRadius, s)
	if err != nil {
		return nil, err
	}
	height := cyl.Height()
	if height >= 2*radius {
		return nil, &model.GeometryError{Reason: "绕组总高不小于球直径"}
	}

	center := height / 2
	for j, p := range cyl.Points {
		rho := math.Sqrt(radius*radius - (p.Z-center)*(p.Z-center))
		scale := rho / radius
		cyl.Points[j] = model.Vec{X: p.X * scale, Y: p.Y * scale, Z: p.Z}
	}
	log.WithFields(log.Fields{
		"匝数":   n,
		"段数":   s,
		"赤道半径": radius,
	}).Info("生成球面绕组")
	return cyl, nil
}

func check(n int, pitch []float64, radius, wireRadius float64, s int) error {
	if n < 1 {
		return &model.GeometryError{Reason: "匝数必须为正"}
	}
	if s < n || s%n != 0 {
		return &model.GeometryError{Reason: "段数必须是匝数的正倍数"}
	}
	if radius <= 0 || wireRadius <= 0 || wireRadius >= radius {
		return &model.GeometryError{Reason: "半径参数非法"}
	}
	for _, p := range pitch {
		if p <= 0 {
			return &model.GeometryError{Reason: "螺距必须为正"}
		}
	}
	return nil
}
