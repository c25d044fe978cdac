package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"get_104_jobs/model"
)

// CSVWriter 將職缺紀錄寫成 CSV 檔，欄位順序與 xlsx 輸出相同
type CSVWriter struct {
	filePath string
}

func NewCSVWriter(filePath string) *CSVWriter {
	return &CSVWriter{filePath: filePath}
}

func (w *CSVWriter) Write(jobs []model.Job) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("建立 %s 失敗: %w", w.filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(model.Headers()); err != nil {
		return fmt.Errorf("寫入表頭失敗: %w", err)
	}
	for i := range jobs {
		if err := writer.Write(jobs[i].Row()); err != nil {
			return fmt.Errorf("寫入資料列失敗: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
