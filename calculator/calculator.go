package calculator

import (
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"srf/grid"
	"srf/model"
)

// 自谐振频率求解管线：
// 几何 → 电流分布 → 网格场扫描 → 每匝磁通积分 → 电感 → 电容 → f_res
// 三个阶段边界：扫描全部完成才开始积分，全部匝积分完才进入电容与谐振阶段。
// 一次求解内没有共享可变状态，失败都是输入问题，不可重试。

type Calculator struct {
	geo  *model.CoilGeometry
	env  model.Env
	segs []model.Segment
	e    *executor

	field *grid.Field // 最近一次扫描结果，供云图输出使用
}

// NewCalculator 校验几何与参数，未填的求解参数取配置默认值。
// 匝与段的索引非良定义时立即拒绝，不进入计算。
func NewCalculator(geo *model.CoilGeometry, env model.Env) (*Calculator, error) {
	if geo == nil || len(geo.Points) < 2 {
		return nil, &model.GeometryError{Reason: "中心线点数不足"}
	}
	if geo.N < 1 {
		return nil, &model.GeometryError{Reason: "匝数必须为正"}
	}
	if len(geo.Pitch) != geo.N {
		return nil, &model.GeometryError{Reason: "螺距数与匝数不一致"}
	}
	if geo.S()%geo.N != 0 {
		return nil, &model.GeometryError{Reason: "段数不能被匝数整除"}
	}
	for _, p := range geo.Pitch {
		if p <= 0 {
			return nil, &model.GeometryError{Reason: "螺距必须为正"}
		}
	}
	if geo.Radius <= 0 || geo.WireRadius <= 0 || geo.WireRadius >= geo.Radius {
		return nil, &model.GeometryError{Reason: "半径参数非法"}
	}

	if env.F1 <= 0 {
		env.F1 = calCfg.F1
	}
	if env.Step <= 0 {
		env.Step = calCfg.Step
	}
	if env.Margin <= 0 {
		env.Margin = calCfg.Margin
	}
	if env.Workers <= 0 {
		env.Workers = calCfg.Workers
	}

	return &Calculator{
		geo:  geo,
		env:  env,
		segs: geo.Segments(),
		e:    newExecutor(env.Workers),
	}, nil
}

// Solve 执行一次完整求解
func (c *Calculator) Solve() (model.Result, error) {
	// 电容模型定义域校验先行，不通过则一律不跑场计算
	if err := validateSpans(c.geo.Pitch, c.geo.WireRadius); err != nil {
		return model.Result{}, err
	}

	amps := currentDistribution(c.segs, c.env.F1, c.env.Time, c.env.Phase0, calCfg.Speed)

	lat := grid.NewLattice(c.geo.Radius, c.geo.Height(), c.env.Margin, c.env.Step)
	field := grid.NewField(lat)
	start := time.Now()
	if err := c.e.scan(field, c.segs, amps); err != nil {
		return model.Result{}, err
	}
	// 扫描失败时不留下写了一半的网格
	c.field = field
	log.WithFields(log.Fields{
		"节点数":  lat.Len(),
		"段数":   len(c.segs),
		"扫描耗时": time.Since(start),
	}).Info("场扫描完成")

	// 每匝磁通积分，匝间并行
	n := c.geo.N
	phi := make([]float64, n)
	iRef := make([]float64, n)
	var wg sync.WaitGroup
	for k := 1; k <= n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			phi[k-1], iRef[k-1] = turnFlux(field, c.geo, amps, k)
		}(k)
	}
	wg.Wait()

	// 外电感 = 磁通/参考电流，再加内电感，各匝求和
	lTurn := make([]float64, n)
	for k := 0; k < n; k++ {
		lTurn[k] = phi[k]/iRef[k] + internalInductance(c.geo.Radius, c.geo.Pitch[k])
	}
	l := floats.Sum(lTurn)
	ctot := totalCapacitance(c.geo.Pitch, c.geo.Radius, c.geo.WireRadius)

	fres, err := resonance(l, ctot)
	if err != nil {
		return model.Result{}, err
	}
	log.WithFields(log.Fields{
		"L":     l,
		"C":     ctot,
		"f_res": fres,
	}).Info("求解完成")
	return model.Result{L: l, C: ctot, Fres: fres}, nil
}

// Field 最近一次扫描得到的场网格，Solve 成功前为 nil
func (c *Calculator) Field() *grid.Field {
	return c.field
}

// resonance f = 1/(2π·√(L·C))
func resonance(l, c float64) (float64, error) {
	lc := l * c
	if lc <= 0 || math.IsNaN(lc) || math.IsInf(lc, 0) {
		return 0, &model.DegenerateInductanceError{L: l, C: c}
	}
	return 1 / (2 * math.Pi * math.Sqrt(lc)), nil
}
