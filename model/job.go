package model

// Job 104 職缺資訊結構體，欄位順序即輸出欄位順序
type Job struct {
	CompanyName    string `json:"companyName"`    //公司名稱
	JobName        string `json:"jobName"`        //職缺名稱
	Location       string `json:"location"`       //地點
	WorkExp        string `json:"workExp"`        //工作經歷
	Education      string `json:"education"`      //學歷
	Language       string `json:"language"`       //語言能力
	Specialty      string `json:"specialty"`      //擅長工具
	Skill          string `json:"skill"`          //工作技能
	Salary         string `json:"salary"`         //薪資
	Welfare        string `json:"welfare"`        //福利
	NeedEmp        string `json:"needEmp"`        //職缺需求人數
	JobDescription string `json:"jobDescription"` //工作內容
	OtherCondition string `json:"otherCondition"` //其他條件
	AppearDate     string `json:"appearDate"`     //職缺更新日期
	Href           string `json:"href"`           //職缺連結
}

// Headers 輸出表頭，與 Row 的欄位順序一一對應
func Headers() []string {
	return []string{
		"公司名稱", "職缺名稱", "地點", "工作經歷", "學歷",
		"語言能力", "擅長工具", "工作技能", "薪資", "福利",
		"職缺需求人數", "工作內容", "其他條件", "職缺更新日期", "職缺連結",
	}
}

// Row 依表頭順序輸出一列
func (j *Job) Row() []string {
	return []string{
		j.CompanyName, j.JobName, j.Location, j.WorkExp, j.Education,
		j.Language, j.Specialty, j.Skill, j.Salary, j.Welfare,
		j.NeedEmp, j.JobDescription, j.OtherCondition, j.AppearDate, j.Href,
	}
}
