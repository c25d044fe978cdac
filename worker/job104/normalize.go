package job104

import (
	"strconv"
	"strings"

	"get_104_jobs/model"
	"get_104_jobs/utils"
)

// 各欄位回退鏈全部落空時的預設值
const (
	placeholderCompany     = "(unknown company)"
	placeholderJobName     = "(untitled posting)"
	placeholderUnspecified = "unspecified"
)

// Normalize 將 104 詳情文件攤平成單筆職缺紀錄
// 同一欄位可能因刊登流程不同出現在不同區段，依優先順序逐層回退；
// 全部落空時填預設值，結構空白的文件也不會失敗
func Normalize(info map[string]any, jobID string) model.Job {
	header := sub(info, "header")
	detail := sub(info, "jobDetail")
	condition := sub(info, "condition")
	cust := sub(info, "custInfo")
	welfare := sub(info, "welfare")

	companyName := firstNonEmpty(
		getString(info, "custName"),
		getString(cust, "custName"),
		getString(header, "custName"),
	)
	jobName := firstNonEmpty(
		getString(detail, "jobName"),
		getString(header, "jobName"),
		getString(info, "jobName"),
	)
	otherCondition := firstNonEmpty(
		getString(condition, "other"),
		getString(detail, "otherCondition"),
		getString(sub(info, "requirement"), "other"),
	)

	return model.Job{
		CompanyName:    utils.DefaultIfEmpty(companyName, placeholderCompany),
		JobName:        utils.DefaultIfEmpty(jobName, placeholderJobName),
		Location:       getString(detail, "addressRegion") + getString(detail, "addressDetail"),
		WorkExp:        getString(condition, "workExp"),
		Education:      getString(condition, "edu"),
		Language:       languages(condition["language"]),
		Specialty:      utils.DefaultIfEmpty(descListOrString(condition["specialty"], getString(detail, "specialty")), placeholderUnspecified),
		Skill:          utils.DefaultIfEmpty(descListOrString(condition["skill"], getString(detail, "skill")), placeholderUnspecified),
		Salary:         getString(detail, "salary"),
		Welfare:        getString(welfare, "welfare"),
		NeedEmp:        getString(detail, "needEmp"),
		JobDescription: utils.CleanBreaks(getString(detail, "jobDescription")),
		OtherCondition: utils.CleanBreaks(otherCondition),
		AppearDate:     getString(header, "appearDate"),
		Href:           baseURL + "/job/" + jobID,
	}
}

// sub 取出巢狀區段，缺少或型別不符時回傳 nil，nil map 仍可安全查詢
func sub(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// getString 依序嘗試多個鍵，回傳第一個非空字串值
func getString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if !utils.IsEmpty(v) {
			return v
		}
	}
	return ""
}

// languages 將語言條件格式化為 "語言:能力"，沒有能力描述時只留語言名稱
func languages(val any) string {
	list, _ := val.([]any)
	var parts []string
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		lang := getString(m, "language")
		if lang == "" {
			continue
		}
		if ability := getString(m, "ability"); ability != "" {
			lang = lang + ":" + ability
		}
		parts = append(parts, lang)
	}
	return utils.DefaultIfEmpty(strings.Join(parts, ", "), placeholderUnspecified)
}

// descListOrString 處理清單或字串兩種形態的條件欄位：
// 清單時串接每項的 desc，字串直接使用，其餘形態退回 jobDetail 的同名欄位
func descListOrString(val any, fallback string) string {
	switch v := val.(type) {
	case []any:
		var descs []string
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				if d := getString(m, "desc"); d != "" {
					descs = append(descs, d)
				}
			}
		}
		return strings.Join(descs, ", ")
	case string:
		return strings.TrimSpace(v)
	}
	return fallback
}
