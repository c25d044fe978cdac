package job104

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrJobWithdrawn 詳情回應缺少業務資料，代表職缺已下架或資料不完整
var ErrJobWithdrawn = errors.New("此職缺資料不完整或已下架")

type detailResponse struct {
	Data map[string]any `json:"data"`
}

// ExtractJobID 從清單連結取出職缺代碼：去掉查詢字串後取最後一段路徑
func ExtractJobID(raw string) string {
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	return raw
}

// FetchJobDetail 抓取單筆職缺的詳情文件
func (c *Client) FetchJobDetail(ctx context.Context, jobID string) (map[string]any, error) {
	body, err := c.get(ctx, c.baseURL+"/job/ajax/content/"+jobID, c.baseURL+"/job/"+jobID)
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("職缺詳情回應不是合法 JSON: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, ErrJobWithdrawn
	}
	return resp.Data, nil
}
