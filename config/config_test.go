package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestReadConfigResolvesAreaNames(t *testing.T) {
	path := writeConfig(t, `
# 搜尋條件
keyword = golang
area = 台北市,新北市

page=1
`)

	params, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if got := params["area"]; got != "6001001000,6001002000" {
		t.Fatalf("unexpected area: %q", got)
	}
	if got := params["keyword"]; got != "golang" {
		t.Fatalf("unexpected keyword: %q", got)
	}
	if got := params["page"]; got != "1" {
		t.Fatalf("unexpected page: %q", got)
	}
}

func TestReadConfigKeepsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "jobsource=index_s\nisnew=7\n")

	params, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if params["jobsource"] != "index_s" || params["isnew"] != "7" {
		t.Fatalf("unexpected params: %v", params)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolveAreasSkipsUnknownNames(t *testing.T) {
	if got := ResolveAreas("台北市,火星市,高雄市"); got != "6001001000,6001005000" {
		t.Fatalf("unexpected codes: %q", got)
	}
}

func TestResolveAreasPreservesOrder(t *testing.T) {
	if got := ResolveAreas("高雄市, 台北市"); got != "6001005000,6001001000" {
		t.Fatalf("unexpected codes: %q", got)
	}
}

func TestResolveAreasAllUnknown(t *testing.T) {
	if got := ResolveAreas("火星市"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestAreaCodesCollisionsPreserved(t *testing.T) {
	// 上游代碼表即如此，不可自行修正
	if AreaCodes["彰化縣"] != AreaCodes["嘉義縣"] {
		t.Fatalf("expected 彰化縣 and 嘉義縣 to share a code")
	}
}
