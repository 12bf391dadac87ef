package domain

import "strings"

type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Venue        string `json:"venue,omitempty"`
	League       string `json:"league,omitempty"`
	Division     string `json:"division,omitempty"`
	LogoURL      string `json:"logo"`
}

// Game is a snapshot of everything the live feed knows about one event.
type Game struct {
	ID           string
	Season       string
	GameType     string
	DateTime     string
	OfficialDate string
	Status       string
	Venue        string
	Weather      string
	Home         GameTeam
	Away         GameTeam
	Plays        []Play
	LineScore    LineScore
}

type GameTeam struct {
	Team     Team
	Roster   []RosterEntry
	Batting  []BattingLine
	Pitching []PitchingLine
}

type RosterEntry struct {
	PlayerID int
	Name     string
	Position string
	Jersey   string
}

type BattingLine struct {
	PlayerID   int
	Name       string
	Position   string
	AtBats     int
	Runs       int
	Hits       int
	RBI        int
	Walks      int
	StrikeOuts int
	HomeRuns   int
}

type PitchingLine struct {
	PlayerID       int
	Name           string
	InningsPitched string
	Hits           int
	Runs           int
	EarnedRuns     int
	Walks          int
	StrikeOuts     int
	HomeRuns       int
	Pitches        int
}

type Play struct {
	Inning       int
	HalfInning   string
	Description  string
	Batter       string
	Pitcher      string
	HomeScore    int
	AwayScore    int
	LaunchAngle  *float64
	ExitVelocity *float64
	Distance     *float64
	Pitches      []Pitch
	Runners      []RunnerMove
}

type Pitch struct {
	Type       string
	Speed      *float64
	SpinRate   *float64
	BreakAngle *float64
}

type RunnerMove struct {
	Runner string
	End    string
	Event  string
}

type LineScore struct {
	CurrentInning int           `json:"currentInning"`
	Innings       []InningScore `json:"innings"`
	Home          InningLine    `json:"home"`
	Away          InningLine    `json:"away"`
	HomeTeamID    int           `json:"homeTeamId"`
	AwayTeamID    int           `json:"awayTeamId"`
}

type InningScore struct {
	Inning int        `json:"inning"`
	Home   InningLine `json:"home"`
	Away   InningLine `json:"away"`
}

type InningLine struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// Highlight is one clip of the event's highlight list.
type Highlight struct {
	Index       int
	Title       string
	Headline    string
	Description string
	Duration    string
	Playbacks   []Playback
}

type Playback struct {
	Name string
	URL  string
}

const preferredPlayback = "mp4Avc"

// PlaybackURL returns the mp4 rendition of the clip, preferring mp4Avc.
func (h Highlight) PlaybackURL() (string, bool) {
	for _, p := range h.Playbacks {
		if p.Name == preferredPlayback && p.URL != "" {
			return p.URL, true
		}
	}
	for _, p := range h.Playbacks {
		if strings.HasSuffix(strings.ToLower(p.URL), ".mp4") {
			return p.URL, true
		}
	}
	return "", false
}

type LeaderCategory struct {
	Category  string   `json:"category"`
	StatGroup string   `json:"statGroup,omitempty"`
	Leaders   []Leader `json:"leaders"`
}

type Leader struct {
	Rank     int    `json:"rank"`
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

type Player struct {
	ID           int         `json:"id"`
	FullName     string      `json:"name"`
	Nickname     string      `json:"nickname,omitempty"`
	Position     string      `json:"position,omitempty"`
	JerseyNumber string      `json:"jersey_number,omitempty"`
	BirthDate    string      `json:"birth_date,omitempty"`
	Age          int         `json:"age,omitempty"`
	BirthCity    string      `json:"birth_city,omitempty"`
	BirthState   string      `json:"birth_state,omitempty"`
	BirthCountry string      `json:"birth_country,omitempty"`
	Height       string      `json:"height,omitempty"`
	Weight       int         `json:"weight,omitempty"`
	Bats         string      `json:"bats,omitempty"`
	Throws       string      `json:"throws,omitempty"`
	Debut        string      `json:"mlb_debut,omitempty"`
	YearsActive  *int        `json:"years_in_mlb"`
	DraftYear    int         `json:"draft_year,omitempty"`
	HeadshotURL  string      `json:"headshot_url"`
	ProfileURL   string      `json:"mlb_profile_url"`
	Stats        PlayerStats `json:"overall_stats"`
}

// PlayerStats holds career numbers; a discipline is nil when the player has
// no activity in it.
type PlayerStats struct {
	Hitting  *HittingStats  `json:"Hitting,omitempty"`
	Pitching *PitchingStats `json:"Pitching,omitempty"`
	Fielding *FieldingStats `json:"Fielding,omitempty"`
}

type HittingStats struct {
	Avg         string `json:"AVG"`
	HomeRuns    int    `json:"HR"`
	RBI         int    `json:"RBI"`
	OPS         string `json:"OPS"`
	GamesPlayed int    `json:"Games Played"`
}

type PitchingStats struct {
	ERA        string `json:"ERA"`
	StrikeOuts int    `json:"Strikeouts"`
	WHIP       string `json:"WHIP"`
	Wins       int    `json:"Wins"`
	Losses     int    `json:"Losses"`
}

type FieldingStats struct {
	PutOuts    int    `json:"Putouts"`
	Assists    int    `json:"Assists"`
	Errors     int    `json:"Errors"`
	Percentage string `json:"Fielding Percentage"`
}
