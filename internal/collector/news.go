package collector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"greenwatt/internal/errors"
	"greenwatt/internal/logging"
)

const newsEndpoint = "https://openapi.naver.com/v1/search/news.json"

// newsQuery is the fixed renewable-energy search the dashboard shows
const newsQuery = "RE100 재생에너지 태양광 정책"

type naverNewsResponse struct {
	Items []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Description string `json:"description"`
		PubDate     string `json:"pubDate"`
	} `json:"items"`
}

// FetchNews returns the latest renewable-energy news. Without client
// credentials it serves a fallback list.
func (c *Client) FetchNews(ctx context.Context) ([]NewsItem, error) {
	if c.cfg.NaverClientID == "" || c.cfg.NaverClientSecret == "" {
		logging.Debug("news credentials missing, serving fallback")
		return fallbackNews(), nil
	}

	query := url.Values{}
	query.Set("query", newsQuery)
	query.Set("display", "10")
	query.Set("start", "1")
	query.Set("sort", "date")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsEndpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Internal("build news request", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.cfg.NaverClientID)
	req.Header.Set("X-Naver-Client-Secret", c.cfg.NaverClientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Network("fetch news", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeNetwork, "news portal returned %s", resp.Status)
	}

	var payload naverNewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Parsing("decode news response", err)
	}

	items := make([]NewsItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, NewsItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			PubDate:     item.PubDate,
		})
	}
	return items, nil
}

func fallbackNews() []NewsItem {
	return []NewsItem{
		{
			Title:       "RE100 참여 기업, 재생에너지 조달 확대",
			Link:        "https://www.knrec.or.kr",
			Description: "국내 RE100 참여 기업들이 태양광 PPA 계약을 통한 재생에너지 조달을 확대하고 있다.",
			PubDate:     "Mon, 24 Aug 2026 09:00:00 +0900",
		},
		{
			Title:       "태양광 발전 단가 하락세 지속",
			Link:        "https://www.knrec.or.kr",
			Description: "모듈 가격 하락으로 태양광 발전의 균등화발전비용이 전년 대비 감소했다.",
			PubDate:     "Fri, 21 Aug 2026 14:00:00 +0900",
		},
	}
}
