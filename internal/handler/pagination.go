package handler

// paginationView is the pagination block every listing template receives.
type paginationView struct {
	CurrentPage int
	TotalPages  int
	Total       int64
	HasNextPage bool
	HasPrevPage bool
	NextPage    int
	PrevPage    int
	Limit       int
	StartItem   int
	EndItem     int
}

func newPaginationView(page, limit, totalPages int, total int64) paginationView {
	view := paginationView{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
		StartItem:   int(int64(page-1)*int64(limit) + 1),
		EndItem:     int(min(int64(page)*int64(limit), total)),
	}
	if view.HasNextPage {
		view.NextPage = page + 1
	}
	if view.HasPrevPage {
		view.PrevPage = page - 1
	}
	return view
}
