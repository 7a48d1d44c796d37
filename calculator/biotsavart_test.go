package calculator

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"srf/coil"
	"srf/model"
)

// loopSegments 单匝平面圆环夹具，均匀单位电流
func loopSegments(radius float64, s int) ([]model.Segment, []float64) {
	pts := make([]model.Vec, s+1)
	for i := 0; i <= s; i++ {
		a := 2 * math.Pi * float64(i) / float64(s)
		pts[i] = model.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	segs := make([]model.Segment, s)
	amps := make([]float64, s)
	for i := range segs {
		segs[i] = model.Segment{Position: pts[i], DL: r3.Sub(pts[i+1], pts[i])}
		amps[i] = 1
	}
	return segs, amps
}

// 环心场强解析值 μ0·I/(2R)，离散误差随段数单调收敛
func TestLoopCenterConvergence(t *testing.T) {
	const radius = 0.05
	exact := model.Mu0 / (2 * radius)

	var errs []float64
	for _, s := range []int{16, 32, 64} {
		segs, amps := loopSegments(radius, s)
		b, err := fieldAt(model.Vec{}, segs, amps)
		if err != nil {
			t.Fatalf("s=%d: %v", s, err)
		}
		errs = append(errs, math.Abs(r3.Norm(b)-exact)/exact)
	}
	if !(errs[0] > errs[1] && errs[1] > errs[2]) {
		t.Fatalf("误差未单调收敛: %v", errs)
	}
	if errs[2] > 0.005 {
		t.Fatalf("s=64 误差过大: %g", errs[2])
	}
}

func TestFieldDirectionAtCenter(t *testing.T) {
	// 逆时针电流，环心场指向 +z
	segs, amps := loopSegments(0.05, 32)
	b, err := fieldAt(model.Vec{}, segs, amps)
	if err != nil {
		t.Fatal(err)
	}
	if b.Z <= 0 {
		t.Fatalf("Bz=%g, 期望为正", b.Z)
	}
	if math.Abs(b.X) > 1e-15 || math.Abs(b.Y) > 1e-15 {
		t.Fatalf("横向分量应为零: (%g, %g)", b.X, b.Y)
	}
}

// 场点与导线点重合必须立即报奇点错误
func TestSingularity(t *testing.T) {
	segs, amps := loopSegments(0.05, 16)
	_, err := fieldAt(segs[0].Position, segs, amps)
	var sing *model.SingularityError
	if !errors.As(err, &sing) {
		t.Fatalf("期望 SingularityError, 得到 %v", err)
	}
}

// 偶数边正多边形环的点集在绕轴旋转 180° 下不变，
// 对称两点的场强必须在浮点精度内相等
func TestSymmetryPlanarLoop(t *testing.T) {
	segs, amps := loopSegments(0.04, 64)
	p := model.Vec{X: 0.01, Y: 0.007, Z: 0.003}
	q := model.Vec{X: -p.X, Y: -p.Y, Z: p.Z}

	bp, err := fieldAt(p, segs, amps)
	if err != nil {
		t.Fatal(err)
	}
	bq, err := fieldAt(q, segs, amps)
	if err != nil {
		t.Fatal(err)
	}
	mp, mq := r3.Norm(bp), r3.Norm(bq)
	if math.Abs(mp-mq)/mp > 1e-9 {
		t.Fatalf("|B| 不对称: %g vs %g", mp, mq)
	}
}

// 等螺距螺线管只在端部破坏旋转对称，小螺距下对称两点的场强接近相等
func TestSymmetryUniformHelix(t *testing.T) {
	geo, err := coil.Uniform(4, 0.0005, 0.04, 0.0002, 200)
	if err != nil {
		t.Fatal(err)
	}
	segs := geo.Segments()
	amps := make([]float64, len(segs))
	for i := range amps {
		amps[i] = 1
	}

	p := model.Vec{X: 0.02, Y: 0.01, Z: 0.001}
	q := model.Vec{X: -p.X, Y: -p.Y, Z: p.Z}
	bp, err := fieldAt(p, segs, amps)
	if err != nil {
		t.Fatal(err)
	}
	bq, err := fieldAt(q, segs, amps)
	if err != nil {
		t.Fatal(err)
	}
	mp, mq := r3.Norm(bp), r3.Norm(bq)
	if math.Abs(mp-mq)/mp > 0.05 {
		t.Fatalf("|B| 偏差过大: %g vs %g", mp, mq)
	}
}
