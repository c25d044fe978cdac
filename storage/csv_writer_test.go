package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"get_104_jobs/model"
)

func sampleJobs() []model.Job {
	return []model.Job{
		{
			CompanyName: "測試公司",
			JobName:     "後端工程師",
			Location:    "台北市信義區",
			Salary:      "面議",
			Href:        "https://www.104.com.tw/job/aaa111",
		},
		{
			CompanyName: "另一間公司",
			JobName:     "資料工程師",
			Href:        "https://www.104.com.tw/job/bbb222",
		},
	}
}

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	if err := NewCSVWriter(path).Write(sampleJobs()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "公司名稱" || rows[0][14] != "職缺連結" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "測試公司" || rows[2][1] != "資料工程師" {
		t.Fatalf("unexpected rows: %v / %v", rows[1], rows[2])
	}
}

func TestCSVWriterUnwritablePath(t *testing.T) {
	err := NewCSVWriter(filepath.Join(t.TempDir(), "no-such-dir", "jobs.csv")).Write(sampleJobs())
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("104_jobs.xlsx").(*ExcelWriter); !ok {
		t.Fatalf("expected ExcelWriter for .xlsx")
	}
	if _, ok := ForPath("jobs.CSV").(*CSVWriter); !ok {
		t.Fatalf("expected CSVWriter for .csv")
	}
	if _, ok := ForPath("no-extension").(*ExcelWriter); !ok {
		t.Fatalf("expected ExcelWriter as the default")
	}
}
