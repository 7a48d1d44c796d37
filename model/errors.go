package model

import "fmt"

// 错误分类：全部在计算开始前或阶段边界处立即返回，不产生部分结果，
// 也不可重试，只能修正几何或参数后重新提交

// GeometryError 几何输入非法，匝与段的索引无从定义
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "几何错误: " + e.Reason
}

// SingularityError 场点与导线点重合，毕奥-萨伐尔贡献无定义
type SingularityError struct {
	X, Y, Z float64
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("奇点错误: 场点 (%g, %g, %g) 与导线重合", e.X, e.Y, e.Z)
}

// DomainError 匝间距不大于线径，电容模型的 acosh 参数越界
type DomainError struct {
	N1, N2   int // 出错的匝编号，1 起
	Span     float64
	Diameter float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("定义域错误: 第 %d-%d 匝间距 %g 不大于线径 %g", e.N1, e.N2, e.Span, e.Diameter)
}

// DegenerateInductanceError L·C ≤ 0，谐振频率无定义
type DegenerateInductanceError struct {
	L, C float64
}

func (e *DegenerateInductanceError) Error() string {
	return fmt.Sprintf("退化错误: L=%g C=%g，L·C 非正，谐振频率无定义", e.L, e.C)
}
