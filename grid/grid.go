/**
 *
 * 规则三维网格与场采样容器。
 * 场扫描的主要消耗在于逐节点遍历计算，因此采用扁平数组存储，
 * (i,j,k) 到线性下标的映射显式给出，便于按 x 方向分块并行遍历。
 *
 */

package grid

import "math"

// Lattice 以 step 为步长的规则三维点阵
// x、y 覆盖 [-(R+margin), R+margin]，z 覆盖 [-margin, height+margin]
type Lattice struct {
	Step       float64
	X0, Y0, Z0 float64 // 各轴最小坐标
	NX, NY, NZ int
}

// NewLattice 由线圈半径、总高度、外延与步长确定点阵尺寸
// 尺寸在此一次算定，后续不再伸缩
func NewLattice(radius, height, margin, step float64) Lattice {
	half := radius + margin
	return Lattice{
		Step: step,
		X0:   -half,
		Y0:   -half,
		Z0:   -margin,
		NX:   int(math.Round(2*half/step)) + 1,
		NY:   int(math.Round(2*half/step)) + 1,
		NZ:   int(math.Round((height+2*margin)/step)) + 1,
	}
}

// X 第 i 列的 x 坐标
func (l Lattice) X(i int) float64 { return l.X0 + float64(i)*l.Step }

// Y 第 j 列的 y 坐标
func (l Lattice) Y(j int) float64 { return l.Y0 + float64(j)*l.Step }

// Z 第 k 层的 z 坐标
func (l Lattice) Z(k int) float64 { return l.Z0 + float64(k)*l.Step }

// Index (i,j,k) 对应的线性下标
func (l Lattice) Index(i, j, k int) int {
	return (i*l.NY+j)*l.NZ + k
}

// Len 节点总数
func (l Lattice) Len() int {
	return l.NX * l.NY * l.NZ
}

// ZIndexAbove 不小于坐标 z 的最小采样层号，越界时收拢到边界层
func (l Lattice) ZIndexAbove(z float64) int {
	k := int(math.Ceil((z - l.Z0) / l.Step))
	if k < 0 {
		return 0
	}
	if k >= l.NZ {
		return l.NZ - 1
	}
	return k
}

// Slabs 把 [0, NX) 按 x 方向切成至多 n 份前闭后开区间，
// 区间两两不交且并起来恰好覆盖整个点阵
func (l Lattice) Slabs(n int) [][2]int {
	if n < 1 {
		n = 1
	}
	if n > l.NX {
		n = l.NX
	}
	size, remainder := l.NX/n, l.NX%n
	slabs := make([][2]int, 0, n)
	start := 0
	for w := 0; w < n; w++ {
		end := start + size
		if w < remainder {
			end++
		}
		slabs = append(slabs, [2]int{start, end})
		start = end
	}
	return slabs
}

// Field 点阵上的场采样：|B| 与 Bz 各存一份
// 一次扫描写满后只读，扫描是原子的，不保留部分结果
type Field struct {
	Lat Lattice
	mag []float64
	bz  []float64
}

// NewField 预分配整个点阵的采样数组
func NewField(lat Lattice) *Field {
	return &Field{
		Lat: lat,
		mag: make([]float64, lat.Len()),
		bz:  make([]float64, lat.Len()),
	}
}

// Set 写入一个节点的采样值
func (f *Field) Set(i, j, k int, mag, bz float64) {
	idx := f.Lat.Index(i, j, k)
	f.mag[idx] = mag
	f.bz[idx] = bz
}

// Mag 节点上的场强
func (f *Field) Mag(i, j, k int) float64 {
	return f.mag[f.Lat.Index(i, j, k)]
}

// Bz 节点上的 z 分量
func (f *Field) Bz(i, j, k int) float64 {
	return f.bz[f.Lat.Index(i, j, k)]
}
