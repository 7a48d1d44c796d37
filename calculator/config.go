package calculator

import (
	"fmt"

	"gopkg.in/ini.v1"
)

var calCfg Config

type Config struct {
	Workers int     // 网格扫描工作协程数
	Step    float64 // 默认网格步长 m
	Margin  float64 // 默认网格外延 m
	F1      float64 // 默认探测频率 Hz
	Speed   float64 // 电流波传播速度 m/s

	XLSXFile    string // 求解结果 xlsx 输出路径，空则不输出
	HeatmapFile string // Bz 切片云图输出路径，空则不输出
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		fmt.Println("配置文件读取错误，使用默认参数: ", err)
		calCfg = loadCfg(ini.Empty())
		return
	}
	calCfg = loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	return Config{
		Workers: file.Section("solver").Key("Workers").MustInt(4),
		Step:    file.Section("solver").Key("Step").MustFloat64(0.001),
		Margin:  file.Section("solver").Key("Margin").MustFloat64(0.005),
		F1:      file.Section("solver").Key("F1").MustFloat64(1000),
		Speed:   file.Section("solver").Key("Speed").MustFloat64(3e8),

		XLSXFile:    file.Section("report").Key("XLSXFile").MustString(""),
		HeatmapFile: file.Section("report").Key("HeatmapFile").MustString(""),
	}
}

// DefaultConfig 当前生效的求解配置
func DefaultConfig() Config {
	return calCfg
}
