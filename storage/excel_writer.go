package storage

import (
	"fmt"

	"get_104_jobs/model"

	"github.com/xuri/excelize/v2"
)

// ExcelWriter 將職缺紀錄寫成 xlsx 檔，表頭一列加每筆一列
type ExcelWriter struct {
	filePath string
}

func NewExcelWriter(filePath string) *ExcelWriter {
	return &ExcelWriter{filePath: filePath}
}

func (w *ExcelWriter) Write(jobs []model.Job) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", toRow(model.Headers())); err != nil {
		return fmt.Errorf("寫入表頭失敗: %w", err)
	}
	for i := range jobs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, toRow(jobs[i].Row())); err != nil {
			return fmt.Errorf("寫入第 %d 列失敗: %w", i+2, err)
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("儲存 %s 失敗: %w", w.filePath, err)
	}
	return nil
}

// toRow SetSheetRow 需要指向 []interface{} 的指標
func toRow(fields []string) *[]interface{} {
	row := make([]interface{}, len(fields))
	for i, v := range fields {
		row[i] = v
	}
	return &row
}
