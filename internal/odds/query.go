package odds

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// MatchQuery filters the paged match listing. Zero ids and nil year/round
// match everything. Cursor is the id bound of the previous page, 0 starts
// from the beginning in the requested direction.
type MatchQuery struct {
	BookMakerID int     `json:"book_maker_id"`
	LeagueID    int     `json:"league_id"`
	TeamID      int     `json:"team_id"`
	GameYear    *string `json:"game_year"`
	GameRound   *string `json:"game_round"`
	IsDesc      bool    `json:"is_desc"`
	Cursor      int     `json:"cursor"`
	PageSize    int     `json:"page_size"`
}

// Normalize clamps the page size and rejects negative ids or cursors.
func (q MatchQuery) Normalize() (MatchQuery, error) {
	if q.BookMakerID < 0 || q.LeagueID < 0 || q.TeamID < 0 {
		return q, Invalidf("filter ids must not be negative")
	}
	if q.Cursor < 0 {
		return q, Invalidf("cursor must not be negative")
	}
	switch {
	case q.PageSize <= 0:
		q.PageSize = DefaultPageSize
	case q.PageSize > MaxPageSize:
		q.PageSize = MaxPageSize
	}
	if q.GameYear != nil && *q.GameYear == "" {
		q.GameYear = nil
	}
	if q.GameRound != nil && *q.GameRound == "" {
		q.GameRound = nil
	}
	return q, nil
}

// NextCursor returns the cursor for the page after page, or 0 once a short
// page signals the end.
func (q MatchQuery) NextCursor(page []Matches) int {
	if len(page) == 0 || len(page) < q.PageSize {
		return 0
	}
	return page[len(page)-1].ID
}
