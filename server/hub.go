package server

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"

	"srf/calculator"
	"srf/coil"
	"srf/grid"
	"srf/model"
	"srf/report"
)

// 推送给前端的求解数据：结果连同线圈中部高度的 Bz 切片
type solveData struct {
	Result model.Result `json:"result"`
	Bz     bzSlice      `json:"bz_slice"`
}

// bzSlice 一个 z 层的 Bz 采样，按 (x,y) 网格排列
type bzSlice struct {
	Z    float64     `json:"z"`
	X0   float64     `json:"x0"`
	Y0   float64     `json:"y0"`
	Step float64     `json:"step"`
	Data [][]float64 `json:"data"`
}

// Hub 维护一条连接上的求解会话：
// env 消息装配几何与求解器，start 消息触发一次求解并推送结果
type Hub struct {
	c    *calculator.Calculator
	env  model.Env
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	envSet  chan model.Msg
	started chan model.Msg
	stopped chan model.Msg
}

func NewHub() *Hub {
	return &Hub{
		msg:     make(chan model.Msg, 10),
		envSet:  make(chan model.Msg, 10),
		started: make(chan model.Msg, 10),
		stopped: make(chan model.Msg, 10),
	}
}

func (h *Hub) handleResponse() {
	for {
		var reply model.Msg
		select {
		case reply = <-h.envSet:
		case reply = <-h.started:
		case reply = <-h.stopped:
		}
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Println("err: ", err)
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for msg := range h.msg {
		switch msg.Type {
		case "env":
			h.envSet <- h.setEnv(msg.Content)
		case "start":
			h.started <- h.solve()
		case "stop":
			h.stopped <- model.Msg{Type: "stopped", Content: "stopped"}
		default:
			log.Println("no such type: ", msg.Type)
		}
	}
}

// setEnv 解析环境参数并装配几何与求解器
func (h *Hub) setEnv(content string) model.Msg {
	var env model.Env
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}

	var geo *model.CoilGeometry
	var err error
	switch env.Shape {
	case "uniform":
		var pitch float64
		if len(env.Pitch) > 0 {
			pitch = env.Pitch[0]
		}
		geo, err = coil.Uniform(env.N, pitch, env.Radius, env.WireRadius, env.S)
	case "spherical":
		geo, err = coil.Spherical(env.Pitch, env.Radius, env.WireRadius, env.S)
	default: // varied
		geo, err = coil.Varied(env.Pitch, env.Radius, env.WireRadius, env.S)
	}
	if err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}

	c, err := calculator.NewCalculator(geo, env)
	if err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}
	h.c = c
	h.env = env
	return model.Msg{Type: "envSet", Content: "env is set"}
}

// solve 跑一次求解并把结果（以及配置了输出路径时的报表）发回
func (h *Hub) solve() model.Msg {
	if h.c == nil {
		return model.Msg{Type: "error", Content: "env not set"}
	}
	res, err := h.c.Solve()
	if err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}

	cfg := calculator.DefaultConfig()
	if cfg.XLSXFile != "" {
		if err := report.SaveXLSX(cfg.XLSXFile, h.env, res); err != nil {
			log.Println("xlsx save error: ", err)
		}
	}
	if cfg.HeatmapFile != "" {
		if err := report.SaveHeatmap(cfg.HeatmapFile, h.c.Field()); err != nil {
			log.Println("heatmap save error: ", err)
		}
	}

	payload := solveData{Result: res, Bz: buildSlice(h.c.Field())}
	data, err := json.Marshal(&payload)
	if err != nil {
		return model.Msg{Type: "error", Content: err.Error()}
	}
	return model.Msg{Type: "started", Content: string(data)}
}

// buildSlice 取场网格中部高度的一层 Bz
func buildSlice(f *grid.Field) bzSlice {
	k := f.Lat.NZ / 2
	data := make([][]float64, f.Lat.NX)
	for i := 0; i < f.Lat.NX; i++ {
		row := make([]float64, f.Lat.NY)
		for j := 0; j < f.Lat.NY; j++ {
			row[j] = f.Bz(i, j, k)
		}
		data[i] = row
	}
	return bzSlice{
		Z:    f.Lat.Z(k),
		X0:   f.Lat.X0,
		Y0:   f.Lat.Y0,
		Step: f.Lat.Step,
		Data: data,
	}
}
