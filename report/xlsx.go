package report

import (
	"github.com/xuri/excelize/v2"

	"srf/model"
)

// SaveXLSX 把一次求解的输入参数与结果写入 xlsx：
// Result 表存 L、C、f_res，Env 表存求解参数与每匝螺距
func SaveXLSX(filename string, env model.Env, res model.Result) error {
	f := excelize.NewFile()

	result := "Result"
	f.SetSheetName("Sheet1", result)
	f.SetCellValue(result, "A1", "L [H]")
	f.SetCellValue(result, "B1", "C [F]")
	f.SetCellValue(result, "C1", "f_res [Hz]")
	f.SetCellValue(result, "A2", res.L)
	f.SetCellValue(result, "B2", res.C)
	f.SetCellValue(result, "C2", res.Fres)

	sheet := "Env"
	f.NewSheet(sheet)
	headers := []string{"shape", "N", "s", "radius [m]", "wire_radius [m]", "f1 [Hz]", "step [m]", "margin [m]"}
	values := []interface{}{env.Shape, env.N, env.S, env.Radius, env.WireRadius, env.F1, env.Step, env.Margin}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		cell, _ = excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, values[i])
	}

	// 每匝螺距单独一列成行
	f.SetCellValue(sheet, "A4", "pitch [m]")
	for i, p := range env.Pitch {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		f.SetCellValue(sheet, cell, p)
	}

	return f.SaveAs(filename)
}
