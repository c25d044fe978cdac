package config

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
	log "github.com/sirupsen/logrus"
)

// AreaKey 地區篩選參數的鍵名，值會被轉換成 104 的地區代碼
const AreaKey = "area"

// AreaCodes 地區名稱對應 104 地區代碼
// 彰化縣/嘉義縣共用同一代碼，與上游代碼表一致，維持原樣
var AreaCodes = map[string]string{
	"台北市": "6001001000",
	"新北市": "6001002000",
	"桃園市": "6001003000",
	"台中市": "6001004000",
	"高雄市": "6001005000",
	"台南市": "6001006000",
	"新竹縣": "6001007000",
	"新竹市": "6001008000",
	"苗栗縣": "6001009000",
	"彰化縣": "6001011000",
	"雲林縣": "6001012000",
	"嘉義市": "6001010000",
	"嘉義縣": "6001011000",
	"屏東縣": "6001013000",
	"宜蘭縣": "6001015000",
	"花蓮縣": "6001014000",
	"台東縣": "6001016000",
	"基隆市": "6001017000",
	"南投縣": "6001018000",
	"澎湖縣": "6001019000",
	"金門縣": "6001020000",
	"連江縣": "6001021000",
}

// ReadConfig 讀取 key=value 設定檔並轉換成查詢參數
// 只有 area 會做地區名稱轉換，其餘鍵原樣傳遞給搜尋端點
func ReadConfig(path string) (map[string]string, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("讀取設定檔失敗: %w", err)
	}
	p.DisableExpansion = true

	params := make(map[string]string, p.Len())
	for _, key := range p.Keys() {
		value := strings.TrimSpace(p.GetString(key, ""))
		if key == AreaKey {
			value = ResolveAreas(value)
		}
		params[strings.TrimSpace(key)] = value
	}
	return params, nil
}

// ResolveAreas 將逗號分隔的地區名稱轉成逗號分隔的地區代碼
// 無法辨識的名稱只警告，不產生代碼
func ResolveAreas(value string) string {
	var codes []string
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		code, ok := AreaCodes[name]
		if !ok {
			log.Warnf("無法辨識地區名稱：%s", name)
			continue
		}
		codes = append(codes, code)
	}
	return strings.Join(codes, ",")
}
