package utils

import (
	"fmt"
	"strings"
	"time"
)

// IsEmpty 檢查字串去除空白後是否為空
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultIfEmpty 如果字串為空，回傳預設值
func DefaultIfEmpty(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// CleanBreaks 將 CRLF 換行序列換成空格並去除前後空白
// 104 的內文欄位以 \r\n 斷行
func CleanBreaks(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", " "))
}

// FormatDuration 計算並格式化兩個時間點之間的耗時
// 回傳格式為 "H時m分s秒"
func FormatDuration(startTime, endTime time.Time) string {
	duration := endTime.Sub(startTime)

	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	return fmt.Sprintf("%d時%d分%d秒", hours, minutes, seconds)
}
