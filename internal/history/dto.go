package history

type CreateHistoryDTO struct {
	Topic          string `json:"topic" validate:"notblank,max=200"`
	Difficulty     string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	QuestionCount  int    `json:"questionCount" validate:"gt=0"`
	Score          int    `json:"score" validate:"gte=0,ltefield=TotalQuestions"`
	TotalQuestions int    `json:"totalQuestions" validate:"gt=0"`
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

type ListResult struct {
	Items      []History
	Pagination Pagination
}
