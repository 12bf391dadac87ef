package mlb

// Response shapes of the MLB Stats API. Only fields the rewind uses are mapped.

type LiveFeed struct {
	GamePk   int      `json:"gamePk"`
	GameData GameData `json:"gameData"`
	LiveData LiveData `json:"liveData"`
}

type GameData struct {
	Game struct {
		Pk     int    `json:"pk"`
		Type   string `json:"type"`
		Season string `json:"season"`
	} `json:"game"`
	Datetime struct {
		DateTime     string `json:"dateTime"`
		OfficialDate string `json:"officialDate"`
	} `json:"datetime"`
	Status struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Home TeamRef `json:"home"`
		Away TeamRef `json:"away"`
	} `json:"teams"`
	Venue struct {
		Name string `json:"name"`
	} `json:"venue"`
	Weather struct {
		Condition string `json:"condition"`
		Temp      string `json:"temp"`
		Wind      string `json:"wind"`
	} `json:"weather"`
}

type TeamRef struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TeamName     string `json:"teamName"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
	Venue        struct {
		Name string `json:"name"`
	} `json:"venue"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Division struct {
		Name string `json:"name"`
	} `json:"division"`
}

type LiveData struct {
	Plays struct {
		AllPlays []PlayData `json:"allPlays"`
	} `json:"plays"`
	Linescore Linescore `json:"linescore"`
	Boxscore  Boxscore  `json:"boxscore"`
}

type PlayData struct {
	Result struct {
		Description string `json:"description"`
		HomeScore   int    `json:"homeScore"`
		AwayScore   int    `json:"awayScore"`
	} `json:"result"`
	About struct {
		Inning     int    `json:"inning"`
		HalfInning string `json:"halfInning"`
	} `json:"about"`
	Matchup struct {
		Batter  PersonRef `json:"batter"`
		Pitcher PersonRef `json:"pitcher"`
	} `json:"matchup"`
	HitData *struct {
		LaunchAngle   *float64 `json:"launchAngle"`
		LaunchSpeed   *float64 `json:"launchSpeed"`
		TotalDistance *float64 `json:"totalDistance"`
	} `json:"hitData"`
	PlayEvents []PlayEvent `json:"playEvents"`
	Runners    []Runner    `json:"runners"`
}

type PlayEvent struct {
	Details struct {
		Type struct {
			Description string `json:"description"`
		} `json:"type"`
	} `json:"details"`
	PitchData *struct {
		StartSpeed *float64 `json:"startSpeed"`
		Breaks     struct {
			SpinRate   *float64 `json:"spinRate"`
			BreakAngle *float64 `json:"breakAngle"`
		} `json:"breaks"`
	} `json:"pitchData"`
	// some feeds report hit data on the last event instead of the play
	HitData *struct {
		LaunchAngle   *float64 `json:"launchAngle"`
		LaunchSpeed   *float64 `json:"launchSpeed"`
		TotalDistance *float64 `json:"totalDistance"`
	} `json:"hitData"`
}

type Runner struct {
	Movement struct {
		End string `json:"end"`
	} `json:"movement"`
	Details struct {
		Event  string    `json:"event"`
		Runner PersonRef `json:"runner"`
	} `json:"details"`
}

type PersonRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type Linescore struct {
	CurrentInning int `json:"currentInning"`
	Innings       []struct {
		Num  int        `json:"num"`
		Home LineCounts `json:"home"`
		Away LineCounts `json:"away"`
	} `json:"innings"`
	Teams struct {
		Home LineCounts `json:"home"`
		Away LineCounts `json:"away"`
	} `json:"teams"`
}

type LineCounts struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type Boxscore struct {
	Teams struct {
		Home BoxscoreTeam `json:"home"`
		Away BoxscoreTeam `json:"away"`
	} `json:"teams"`
}

type BoxscoreTeam struct {
	Team     TeamRef                   `json:"team"`
	Players  map[string]BoxscorePlayer `json:"players"`
	Batters  []int                     `json:"batters"`
	Pitchers []int                     `json:"pitchers"`
}

type BoxscorePlayer struct {
	Person       PersonRef `json:"person"`
	JerseyNumber string    `json:"jerseyNumber"`
	Position     struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"position"`
	Stats struct {
		Batting  BattingStats  `json:"batting"`
		Pitching PitchingStats `json:"pitching"`
	} `json:"stats"`
}

type BattingStats struct {
	AtBats      int `json:"atBats"`
	Runs        int `json:"runs"`
	Hits        int `json:"hits"`
	RBI         int `json:"rbi"`
	BaseOnBalls int `json:"baseOnBalls"`
	StrikeOuts  int `json:"strikeOuts"`
	HomeRuns    int `json:"homeRuns"`
}

type PitchingStats struct {
	InningsPitched  string `json:"inningsPitched"`
	Hits            int    `json:"hits"`
	Runs            int    `json:"runs"`
	EarnedRuns      int    `json:"earnedRuns"`
	BaseOnBalls     int    `json:"baseOnBalls"`
	StrikeOuts      int    `json:"strikeOuts"`
	HomeRuns        int    `json:"homeRuns"`
	NumberOfPitches int    `json:"numberOfPitches"`
}

type ContentResponse struct {
	Highlights struct {
		Highlights struct {
			Items []HighlightItem `json:"items"`
		} `json:"highlights"`
	} `json:"highlights"`
}

type HighlightItem struct {
	Title       string `json:"title"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Blurb       string `json:"blurb"`
	Duration    string `json:"duration"`
	Playbacks   []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"playbacks"`
}

type LeadersResponse struct {
	TeamLeaders []struct {
		LeaderCategory string `json:"leaderCategory"`
		StatGroup      string `json:"statGroup"`
		Leaders        []struct {
			Rank   int       `json:"rank"`
			Value  string    `json:"value"`
			Person PersonRef `json:"person"`
		} `json:"leaders"`
	} `json:"teamLeaders"`
}

type TeamsResponse struct {
	Teams []TeamRef `json:"teams"`
}

type PeopleResponse struct {
	People []Person `json:"people"`
}

type Person struct {
	ID                 int    `json:"id"`
	FullName           string `json:"fullName"`
	NickName           string `json:"nickName"`
	PrimaryNumber      string `json:"primaryNumber"`
	BirthDate          string `json:"birthDate"`
	CurrentAge         int    `json:"currentAge"`
	BirthCity          string `json:"birthCity"`
	BirthStateProvince string `json:"birthStateProvince"`
	BirthCountry       string `json:"birthCountry"`
	Height             string `json:"height"`
	Weight             int    `json:"weight"`
	MLBDebutDate       string `json:"mlbDebutDate"`
	DraftYear          int    `json:"draftYear"`
	PrimaryPosition    struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"primaryPosition"`
	BatSide struct {
		Description string `json:"description"`
	} `json:"batSide"`
	PitchHand struct {
		Description string `json:"description"`
	} `json:"pitchHand"`
	Stats []struct {
		Group struct {
			DisplayName string `json:"displayName"`
		} `json:"group"`
		Splits []struct {
			Stat CareerStat `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

// CareerStat merges the hitting, pitching and fielding stat objects.
type CareerStat struct {
	GamesPlayed    int    `json:"gamesPlayed"`
	AtBats         int    `json:"atBats"`
	Avg            string `json:"avg"`
	HomeRuns       int    `json:"homeRuns"`
	RBI            int    `json:"rbi"`
	OPS            string `json:"ops"`
	ERA            string `json:"era"`
	StrikeOuts     int    `json:"strikeOuts"`
	WHIP           string `json:"whip"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	InningsPitched string `json:"inningsPitched"`
	PutOuts        int    `json:"putOuts"`
	Assists        int    `json:"assists"`
	Errors         int    `json:"errors"`
	Fielding       string `json:"fielding"`
}
