package job104

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"get_104_jobs/model"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	baseURL = "https://www.104.com.tw"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) " +
		"Version/17.0 Safari/605.1.15"

	// fetchDelay 每筆詳情之間的固定間隔，避免請求過快被封鎖
	fetchDelay = time.Second
)

// ListItem 搜尋清單中的單筆職缺摘要
type ListItem struct {
	Link struct {
		Job string `json:"job"` //職缺連結，末段路徑為職缺代碼
	} `json:"link"`
}

type listResponse struct {
	Data *struct {
		List []ListItem `json:"list"`
	} `json:"data"`
}

// Client 104 職缺抓取客戶端
type Client struct {
	hc      *http.Client
	limiter *rate.Limiter
	baseURL string
}

func NewClient() *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: rate.NewLimiter(rate.Every(fetchDelay), 1),
		baseURL: baseURL,
	}
}

func (c *Client) get(ctx context.Context, rawURL, referer string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP 狀態碼 %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

// FetchJobList 以查詢參數抓取職缺搜尋清單，只取上游回傳的單頁
func (c *Client) FetchJobList(ctx context.Context, params map[string]string) ([]ListItem, error) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}

	body, err := c.get(ctx, c.baseURL+"/jobs/search/list?"+q.Encode(), c.baseURL+"/jobs/search/")
	if err != nil {
		return nil, fmt.Errorf("抓取職缺清單失敗: %w", err)
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("職缺清單回應不是合法 JSON: %w", err)
	}
	if resp.Data == nil || resp.Data.List == nil {
		return nil, errors.New("職缺清單回應缺少 data.list")
	}
	return resp.Data.List, nil
}

// Crawl 依序處理清單中的每筆職缺：抓詳情、攤平、累積結果
// 單筆失敗只記錄後跳過，不中斷整批
func (c *Client) Crawl(ctx context.Context, params map[string]string) ([]model.Job, error) {
	list, err := c.FetchJobList(ctx, params)
	if err != nil {
		return nil, err
	}
	log.Infof("共取得 %d 筆職缺，開始抓取詳細資料...", len(list))

	jobs := make([]model.Job, 0, len(list))
	for _, item := range list {
		if err := c.limiter.Wait(ctx); err != nil {
			return jobs, err
		}

		jobID := ExtractJobID(item.Link.Job)
		info, err := c.FetchJobDetail(ctx, jobID)
		if err != nil {
			log.Warnf("跳過職缺 %s，原因：%v", jobID, err)
			continue
		}

		job := Normalize(info, jobID)
		jobs = append(jobs, job)
		log.Infof("已抓取：%s - %s", job.JobName, job.CompanyName)
	}
	return jobs, nil
}
