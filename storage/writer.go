package storage

import (
	"path/filepath"
	"strings"

	"get_104_jobs/model"
)

// Writer 將整批職缺紀錄寫成單一輸出檔
type Writer interface {
	Write(jobs []model.Job) error
}

// ForPath 依副檔名選擇輸出格式，預設為 xlsx
func ForPath(path string) Writer {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVWriter(path)
	}
	return NewExcelWriter(path)
}
