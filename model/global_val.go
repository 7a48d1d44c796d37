package model

import "math"

// 物理常数，SI 单位

const (
	Mu0  = 4 * math.Pi * 1e-7 // 真空磁导率
	Eps0 = 8.854187817e-12    // 真空介电常数
	C0   = 3e8                // 电流波传播速度近似值 m/s
)

// 导线电阻率，谐振频率公式本身不使用，保留声明供损耗估算
const (
	CopperResistivity = 1.68e-8 // Ω·m
	SilverResistivity = 1.59e-8 // Ω·m
)
