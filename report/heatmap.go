package report

import (
	"bufio"
	"errors"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"srf/grid"
)

// bzGrid 把场网格的一个 z 切片包装成热图数据源
type bzGrid struct {
	f *grid.Field
	k int // z 层号
}

func (g bzGrid) Dims() (c, r int)   { return g.f.Lat.NX, g.f.Lat.NY }
func (g bzGrid) Z(c, r int) float64 { return g.f.Bz(c, r, g.k) }
func (g bzGrid) X(c int) float64    { return g.f.Lat.X(c) }
func (g bzGrid) Y(r int) float64    { return g.f.Lat.Y(r) }

// SaveHeatmap 把线圈中部高度的 Bz 切片渲染为 PNG 云图
func SaveHeatmap(filename string, f *grid.Field) error {
	if f == nil {
		return errors.New("场网格为空，先完成一次求解")
	}

	p := plot.New()
	p.Title.Text = "Bz 中部切片"
	p.X.Label.Text = "x [m]"
	p.Y.Label.Text = "y [m]"

	g := bzGrid{f: f, k: f.Lat.NZ / 2}
	pal := moreland.SmoothBlueRed().Palette(255)
	p.Add(plotter.NewHeatMap(g, pal))

	c := vgimg.NewWith(
		vgimg.UseWH(6*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(300),
	)
	p.Draw(draw.New(c))

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	png := vgimg.PngCanvas{Canvas: c}
	_, err = png.WriteTo(bw)
	return err
}
