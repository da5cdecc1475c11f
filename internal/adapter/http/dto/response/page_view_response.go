package response

import "buffet_pizzas/internal/domain/entities"

type PageViewResponse struct {
	Path  string `json:"path"`
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

func FromPageView(v entities.PageView) PageViewResponse {
	return PageViewResponse{Path: v.Path, Day: v.Day, Count: v.Count}
}

func FromPageViews(vs []entities.PageView) []PageViewResponse {
	out := make([]PageViewResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromPageView(v))
	}
	return out
}
