package models

type Page struct {
	Items        []Post `json:"items"`
	TotalRecords int64  `json:"total_records"`
	PerPage      int    `json:"per_page"`
	TotalPages   int    `json:"total_pages"`
	CurrentPage  int    `json:"current_page"`
	HasNext      bool   `json:"has_next"`
	HasPrev      bool   `json:"has_prev"`
}
