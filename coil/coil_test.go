package coil

import (
	"errors"
	"math"
	"testing"

	"srf/model"
)

func TestUniform(t *testing.T) {
	geo, err := Uniform(4, 0.003, 0.04, 0.0005, 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(geo.Points) != 201 || geo.S() != 200 {
		t.Fatalf("点数 %d, 期望 201", len(geo.Points))
	}
	// 所有点都在半径 R 的圆柱面上
	for i, p := range geo.Points {
		rho := math.Hypot(p.X, p.Y)
		if math.Abs(rho-0.04) > 1e-12 {
			t.Fatalf("第 %d 点偏离圆柱面: ρ=%g", i, rho)
		}
	}
	// 高度从 0 单调升到总螺距
	if geo.Points[0].Z != 0 {
		t.Fatalf("起点高度 %g", geo.Points[0].Z)
	}
	if math.Abs(geo.Points[200].Z-0.012) > 1e-12 {
		t.Fatalf("终点高度 %g, 期望 0.012", geo.Points[200].Z)
	}
	for i := 1; i < len(geo.Points); i++ {
		if geo.Points[i].Z < geo.Points[i-1].Z {
			t.Fatalf("高度在第 %d 点回落", i)
		}
	}
}

func TestVariedTurnHeights(t *testing.T) {
	pitch := []float64{0.002, 0.004, 0.006}
	geo, err := Varied(pitch, 0.04, 0.0005, 150)
	if err != nil {
		t.Fatal(err)
	}
	// 匝边界处的累计高度等于前面螺距之和
	spt := geo.S() / geo.N
	var zc float64
	for k := 0; k < geo.N; k++ {
		if math.Abs(geo.Points[k*spt].Z-zc) > 1e-12 {
			t.Fatalf("第 %d 匝起点高度 %g, 期望 %g", k+1, geo.Points[k*spt].Z, zc)
		}
		zc += pitch[k]
	}
	// 每段长度都相近（无跳点）
	for i := 0; i < geo.S(); i++ {
		dl := model.Vec{
			X: geo.Points[i+1].X - geo.Points[i].X,
			Y: geo.Points[i+1].Y - geo.Points[i].Y,
			Z: geo.Points[i+1].Z - geo.Points[i].Z,
		}
		l := math.Sqrt(dl.X*dl.X + dl.Y*dl.Y + dl.Z*dl.Z)
		if l <= 0 || l > 2*math.Pi*0.04/float64(spt)*1.5 {
			t.Fatalf("第 %d 段长度异常: %g", i, l)
		}
	}
}

func TestVariedRejectsBadSegmentCount(t *testing.T) {
	_, err := Varied([]float64{0.003, 0.003, 0.003}, 0.04, 0.0005, 100)
	var ge *model.GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("期望 GeometryError, 得到 %v", err)
	}
}

func TestSpherical(t *testing.T) {
	pitch := []float64{0.01, 0.01, 0.01, 0.01}
	geo, err := Spherical(pitch, 0.04, 0.0005, 200)
	if err != nil {
		t.Fatal(err)
	}
	center := geo.Height() / 2
	for i, p := range geo.Points {
		rho := math.Hypot(p.X, p.Y)
		if rho > 0.04+1e-12 {
			t.Fatalf("第 %d 点超出包络半径: ρ=%g", i, rho)
		}
		// 点在球面上
		d := math.Sqrt(rho*rho + (p.Z-center)*(p.Z-center))
		if math.Abs(d-0.04) > 1e-9 {
			t.Fatalf("第 %d 点偏离球面: %g", i, d)
		}
	}
	// 赤道附近达到包络半径
	mid := len(geo.Points) / 2
	if math.Hypot(geo.Points[mid].X, geo.Points[mid].Y) < 0.039 {
		t.Fatalf("赤道半径偏小: %g", math.Hypot(geo.Points[mid].X, geo.Points[mid].Y))
	}
}

func TestSphericalRejectsTallWinding(t *testing.T) {
	// 总高 0.1 不小于球直径 0.08
	_, err := Spherical([]float64{0.05, 0.05}, 0.04, 0.0005, 100)
	var ge *model.GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("期望 GeometryError, 得到 %v", err)
	}
}
