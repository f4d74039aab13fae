package entity

import "time"

// Series is the persisted snapshot of a series and its live round.
type Series struct {
	ID        string     `json:"id"`
	Match     MatchState `json:"match"`
	Round     Round      `json:"round"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SeriesRecord is the history entry written when a champion is declared.
type SeriesRecord struct {
	SeriesID     string    `json:"series_id"`
	SideAName    string    `json:"side_a_name"`
	SideBName    string    `json:"side_b_name"`
	Champion     string    `json:"champion"`
	WinsA        int       `json:"wins_a"`
	WinsB        int       `json:"wins_b"`
	RoundsToWin  int       `json:"rounds_to_win"`
	Rounds       int       `json:"rounds"`
	IsAIOpponent bool      `json:"is_ai_opponent"`
	Tier         Tier      `json:"tier,omitempty"`
	FinishedAt   time.Time `json:"finished_at"`
}

// NewSeriesRecord - builds the history entry for a finished series.
func NewSeriesRecord(series *Series, finishedAt time.Time) SeriesRecord {
	record := SeriesRecord{
		SeriesID:     series.ID,
		SideAName:    series.Match.SideAName,
		SideBName:    series.Match.SideBName,
		WinsA:        series.Match.WinsA,
		WinsB:        series.Match.WinsB,
		RoundsToWin:  series.Match.RoundsToWin,
		Rounds:       series.Match.RoundNumber,
		IsAIOpponent: series.Match.IsAIOpponent,
		Tier:         series.Match.Tier,
		FinishedAt:   finishedAt,
	}

	if champion, ok := series.Match.Champion(); ok {
		record.Champion = series.Match.Name(champion)
	}

	return record
}
