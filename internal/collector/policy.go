package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"greenwatt/internal/errors"
	"greenwatt/internal/logging"
)

// policyKeyword is the fixed program search keyword
const policyKeyword = "에너지"

type bizinfoResponse struct {
	Items []struct {
		ID          string `json:"pblancId"`
		Title       string `json:"pblancNm"`
		Regions     string `json:"reqstAreaNm"`
		Period      string `json:"reqstBeginEndDe"`
		URL         string `json:"pblancUrl"`
		Summary     string `json:"bsnsSumryCn"`
		Description string `json:"pblancAle"`
	} `json:"jsonArray"`
}

// FetchPolicies returns current energy support programs from the bizinfo
// portal, shaped for display. Without a service key it serves a fallback
// list.
func (c *Client) FetchPolicies(ctx context.Context) ([]Policy, error) {
	if c.cfg.BizinfoKey == "" {
		logging.Debug("policy portal key missing, serving fallback")
		return fallbackPolicies(), nil
	}

	query := url.Values{}
	query.Set("crtfcKey", c.cfg.BizinfoKey)
	query.Set("dataType", "json")
	query.Set("searchCnt", "10")
	query.Set("searchTy", "A")
	query.Set("keyword", policyKeyword)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BizinfoURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Internal("build policy request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Network("fetch policies", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeNetwork, "policy portal returned %s", resp.Status)
	}

	var payload bizinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Parsing("decode policy response", err)
	}
	if len(payload.Items) == 0 {
		logging.Warn("policy portal returned no items, serving fallback")
		return fallbackPolicies(), nil
	}

	policies := make([]Policy, 0, len(payload.Items))
	for _, item := range payload.Items {
		summary := item.Summary
		if summary == "" {
			summary = item.Description
		}
		policies = append(policies, Policy{
			ID:          item.ID,
			Region:      formatRegion(item.Regions),
			Title:       item.Title,
			Amount:      "지원상세",
			Status:      statusFromPeriod(item.Period, c.now()),
			Description: truncate(stripHTML(summary), 80),
			Link:        item.URL,
		})
	}
	return policies, nil
}

// formatRegion collapses a long comma-separated region list into
// "first 외 N" for display.
func formatRegion(regionText string) string {
	if regionText == "" {
		return "전국"
	}
	regions := strings.Split(regionText, ",")
	if len(regions) > 2 {
		return fmt.Sprintf("%s 외 %d", strings.TrimSpace(regions[0]), len(regions)-1)
	}
	return regionText
}

// statusFromPeriod derives an open/closed label from a "YYYYMMDD~YYYYMMDD"
// application window. Unparseable windows count as open.
func statusFromPeriod(period string, now time.Time) string {
	const open, closed = "접수중", "마감"

	parts := strings.SplitN(period, "~", 2)
	if len(parts) != 2 {
		return open
	}
	end, err := time.Parse("20060102", strings.TrimSpace(parts[1]))
	if err != nil {
		return open
	}
	if now.After(end.AddDate(0, 0, 1)) {
		return closed
	}
	return open
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func fallbackPolicies() []Policy {
	return []Policy{
		{
			ID:          "fallback-1",
			Region:      "전국",
			Title:       "신재생에너지 보급지원사업 (추가공고)",
			Amount:      "예산 소진 시까지",
			Status:      "접수중",
			Description: "주택 및 건물지원사업 추가 모집 공고입니다.",
			Link:        "https://www.knrec.or.kr",
		},
		{
			ID:          "fallback-2",
			Region:      "서울",
			Title:       "베란다형 태양광 미니발전소 보급",
			Amount:      "최대 40만원",
			Status:      "접수중",
			Description: "아파트 및 주택 베란다 태양광 설치 지원",
			Link:        "https://solarmap.seoul.go.kr",
		},
	}
}
