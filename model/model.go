package model

import "gonum.org/v1/gonum/spatial/r3"

// Vec 三维矢量，直接复用 gonum 的 r3 实现
type Vec = r3.Vec

// 线圈中心线几何，由几何生成器产生，求解管线只读
// Points 长度为 s+1，s 为段数，必须能被匝数 N 整除
type CoilGeometry struct {
	Points     []Vec     // 导线中心线离散点
	Pitch      []float64 // 每匝螺距，长度 N
	N          int       // 匝数
	Radius     float64   // 线圈包络半径 R
	WireRadius float64   // 导线半径 r_w
}

// S 段数
func (g *CoilGeometry) S() int {
	return len(g.Points) - 1
}

// Height 线圈总高度（各匝螺距之和）
func (g *CoilGeometry) Height() float64 {
	var h float64
	for _, p := range g.Pitch {
		h += p
	}
	return h
}

// Segment 由相邻两点导出的电流元：位置取段起点，DL 为位移矢量
// 段一经导出不再修改
type Segment struct {
	Position Vec
	DL       Vec
}

// Segments 把中心线离散为 s 个电流元
func (g *CoilGeometry) Segments() []Segment {
	segs := make([]Segment, g.S())
	for i := range segs {
		segs[i] = Segment{
			Position: g.Points[i],
			DL:       r3.Sub(g.Points[i+1], g.Points[i]),
		}
	}
	return segs
}

// Env 一次求解的环境参数，由前端下发
type Env struct {
	Shape      string    `json:"shape"` // uniform / varied / spherical
	N          int       `json:"n"`
	S          int       `json:"s"`
	Pitch      []float64 `json:"pitch"`       // 每匝螺距 m
	Radius     float64   `json:"radius"`      // 线圈半径 m
	WireRadius float64   `json:"wire_radius"` // 导线半径 m
	F1         float64   `json:"f1"`          // 探测频率 Hz，远低于谐振频率
	Step       float64   `json:"step"`        // 网格步长 m
	Margin     float64   `json:"margin"`      // 网格外延 m
	Time       float64   `json:"time"`        // 电流相位模型的取样时刻 s
	Phase0     float64   `json:"phase0"`      // 初相位
	Workers    int       `json:"workers"`
}

// Result 一次求解的输出，SI 单位
type Result struct {
	L    float64 `json:"l"`     // 总电感 H
	C    float64 `json:"c"`     // 总电容 F
	Fres float64 `json:"f_res"` // 自谐振频率 Hz
}

// Msg websocket 消息
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
