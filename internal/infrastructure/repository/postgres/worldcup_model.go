package postgres

type matchTableModel struct {
	GlobalID    string `db:"global_id"`
	Year        string `db:"year"`
	MatchNumber int    `db:"match_number"`
	MatchDate   string `db:"match_date"`
	Stage       string `db:"stage"`
	TeamA       string `db:"team_a"`
	TeamB       string `db:"team_b"`
	TeamACode   string `db:"team_a_code"`
	TeamBCode   string `db:"team_b_code"`
	ScoreA      int    `db:"score_a"`
	ScoreB      int    `db:"score_b"`
}

type goalTableModel struct {
	MatchGlobalID string `db:"match_global_id"`
	Seq           int    `db:"seq"`
	Minute        int    `db:"minute"`
	Player        string `db:"player"`
	TeamCode      string `db:"team_code"`
}

type teamTableModel struct {
	Code string `db:"code"`
	Name string `db:"name"`
}

type teamYearTableModel struct {
	Year     string `db:"year"`
	TeamCode string `db:"team_code"`
}
