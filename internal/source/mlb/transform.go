package mlb

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"rewind/internal/domain"
)

const (
	teamLogoURL      = "https://www.mlbstatic.com/team-logos/team-cap-on-dark/%d.svg"
	headshotURL      = "https://img.mlbstatic.com/mlb/images/players/head_shot/%d.jpg"
	playerProfileURL = "https://www.mlb.com/player/%d"
)

func TeamLogoURL(teamID int) string {
	return fmt.Sprintf(teamLogoURL, teamID)
}

func (s *Source) transformGame(gameID string, feed *LiveFeed) *domain.Game {
	gd := feed.GameData

	game := &domain.Game{
		ID:           gameID,
		Season:       gd.Game.Season,
		GameType:     gd.Game.Type,
		DateTime:     gd.Datetime.DateTime,
		OfficialDate: gd.Datetime.OfficialDate,
		Status:       gd.Status.DetailedState,
		Venue:        gd.Venue.Name,
		Weather:      weatherText(gd),
		Home:         transformGameTeam(gd.Teams.Home, feed.LiveData.Boxscore.Teams.Home),
		Away:         transformGameTeam(gd.Teams.Away, feed.LiveData.Boxscore.Teams.Away),
		LineScore:    transformLinescore(feed.LiveData.Linescore, gd.Teams.Home.ID, gd.Teams.Away.ID),
	}
	if game.Season == "" && len(game.OfficialDate) >= 4 {
		game.Season = game.OfficialDate[:4]
	}

	for _, p := range feed.LiveData.Plays.AllPlays {
		game.Plays = append(game.Plays, transformPlay(p))
	}

	return game
}

func weatherText(gd GameData) string {
	parts := []string{}
	if gd.Weather.Condition != "" {
		parts = append(parts, gd.Weather.Condition)
	}
	if gd.Weather.Temp != "" {
		parts = append(parts, gd.Weather.Temp+"°F")
	}
	if gd.Weather.Wind != "" {
		parts = append(parts, "wind "+gd.Weather.Wind)
	}
	return strings.Join(parts, ", ")
}

func transformTeam(t TeamRef) domain.Team {
	short := t.ShortName
	if short == "" {
		short = t.TeamName
	}
	return domain.Team{
		ID:           t.ID,
		Name:         t.Name,
		ShortName:    short,
		Abbreviation: t.Abbreviation,
		Venue:        t.Venue.Name,
		League:       t.League.Name,
		Division:     t.Division.Name,
		LogoURL:      TeamLogoURL(t.ID),
	}
}

func transformGameTeam(ref TeamRef, box BoxscoreTeam) domain.GameTeam {
	team := domain.GameTeam{Team: transformTeam(ref)}

	seen := make(map[int]bool)
	addRoster := func(p BoxscorePlayer) {
		if seen[p.Person.ID] {
			return
		}
		seen[p.Person.ID] = true
		team.Roster = append(team.Roster, domain.RosterEntry{
			PlayerID: p.Person.ID,
			Name:     p.Person.FullName,
			Position: p.Position.Abbreviation,
			Jersey:   p.JerseyNumber,
		})
	}

	for _, id := range box.Batters {
		p, ok := box.Players[playerKey(id)]
		if !ok {
			continue
		}
		addRoster(p)
		b := p.Stats.Batting
		team.Batting = append(team.Batting, domain.BattingLine{
			PlayerID:   id,
			Name:       p.Person.FullName,
			Position:   p.Position.Abbreviation,
			AtBats:     b.AtBats,
			Runs:       b.Runs,
			Hits:       b.Hits,
			RBI:        b.RBI,
			Walks:      b.BaseOnBalls,
			StrikeOuts: b.StrikeOuts,
			HomeRuns:   b.HomeRuns,
		})
	}

	for _, id := range box.Pitchers {
		p, ok := box.Players[playerKey(id)]
		if !ok {
			continue
		}
		addRoster(p)
		ps := p.Stats.Pitching
		team.Pitching = append(team.Pitching, domain.PitchingLine{
			PlayerID:       id,
			Name:           p.Person.FullName,
			InningsPitched: ps.InningsPitched,
			Hits:           ps.Hits,
			Runs:           ps.Runs,
			EarnedRuns:     ps.EarnedRuns,
			Walks:          ps.BaseOnBalls,
			StrikeOuts:     ps.StrikeOuts,
			HomeRuns:       ps.HomeRuns,
			Pitches:        ps.NumberOfPitches,
		})
	}

	// players who did not appear, in id order so the feed stays stable
	rest := make([]BoxscorePlayer, 0, len(box.Players))
	for _, p := range box.Players {
		if !seen[p.Person.ID] {
			rest = append(rest, p)
		}
	}
	slices.SortFunc(rest, func(a, b BoxscorePlayer) int { return a.Person.ID - b.Person.ID })
	for _, p := range rest {
		addRoster(p)
	}

	return team
}

func playerKey(id int) string {
	return "ID" + strconv.Itoa(id)
}

func transformLinescore(ls Linescore, homeID, awayID int) domain.LineScore {
	out := domain.LineScore{
		CurrentInning: ls.CurrentInning,
		Home:          domain.InningLine(ls.Teams.Home),
		Away:          domain.InningLine(ls.Teams.Away),
		HomeTeamID:    homeID,
		AwayTeamID:    awayID,
	}
	for _, in := range ls.Innings {
		out.Innings = append(out.Innings, domain.InningScore{
			Inning: in.Num,
			Home:   domain.InningLine(in.Home),
			Away:   domain.InningLine(in.Away),
		})
	}
	return out
}

func transformPlay(p PlayData) domain.Play {
	play := domain.Play{
		Inning:      p.About.Inning,
		HalfInning:  p.About.HalfInning,
		Description: p.Result.Description,
		Batter:      p.Matchup.Batter.FullName,
		Pitcher:     p.Matchup.Pitcher.FullName,
		HomeScore:   p.Result.HomeScore,
		AwayScore:   p.Result.AwayScore,
	}

	if p.HitData != nil {
		play.LaunchAngle = p.HitData.LaunchAngle
		play.ExitVelocity = p.HitData.LaunchSpeed
		play.Distance = p.HitData.TotalDistance
	}

	for _, ev := range p.PlayEvents {
		if ev.HitData != nil && play.ExitVelocity == nil {
			play.LaunchAngle = ev.HitData.LaunchAngle
			play.ExitVelocity = ev.HitData.LaunchSpeed
			play.Distance = ev.HitData.TotalDistance
		}
		if ev.PitchData == nil {
			continue
		}
		play.Pitches = append(play.Pitches, domain.Pitch{
			Type:       ev.Details.Type.Description,
			Speed:      ev.PitchData.StartSpeed,
			SpinRate:   ev.PitchData.Breaks.SpinRate,
			BreakAngle: ev.PitchData.Breaks.BreakAngle,
		})
	}

	for _, r := range p.Runners {
		play.Runners = append(play.Runners, domain.RunnerMove{
			Runner: r.Details.Runner.FullName,
			End:    r.Movement.End,
			Event:  r.Details.Event,
		})
	}

	return play
}

func transformHighlights(items []HighlightItem) []domain.Highlight {
	out := make([]domain.Highlight, 0, len(items))
	for i, it := range items {
		desc := it.Description
		if desc == "" {
			desc = it.Blurb
		}
		h := domain.Highlight{
			Index:       i,
			Title:       it.Title,
			Headline:    it.Headline,
			Description: desc,
			Duration:    it.Duration,
		}
		for _, pb := range it.Playbacks {
			h.Playbacks = append(h.Playbacks, domain.Playback{Name: pb.Name, URL: pb.URL})
		}
		out = append(out, h)
	}
	return out
}

func transformLeaders(resp *LeadersResponse) []domain.LeaderCategory {
	out := make([]domain.LeaderCategory, 0, len(resp.TeamLeaders))
	for _, tl := range resp.TeamLeaders {
		cat := domain.LeaderCategory{
			Category:  tl.LeaderCategory,
			StatGroup: tl.StatGroup,
		}
		for _, l := range tl.Leaders {
			if len(cat.Leaders) == leadersLimit {
				break
			}
			cat.Leaders = append(cat.Leaders, domain.Leader{
				Rank:     l.Rank,
				PlayerID: l.Person.ID,
				Name:     l.Person.FullName,
				Value:    l.Value,
			})
		}
		out = append(out, cat)
	}
	return out
}

func (s *Source) transformPlayer(p *Person) *domain.Player {
	player := &domain.Player{
		ID:           p.ID,
		FullName:     p.FullName,
		Nickname:     p.NickName,
		Position:     p.PrimaryPosition.Abbreviation,
		JerseyNumber: p.PrimaryNumber,
		BirthDate:    p.BirthDate,
		Age:          p.CurrentAge,
		BirthCity:    p.BirthCity,
		BirthState:   p.BirthStateProvince,
		BirthCountry: p.BirthCountry,
		Height:       p.Height,
		Weight:       p.Weight,
		Bats:         p.BatSide.Description,
		Throws:       p.PitchHand.Description,
		Debut:        p.MLBDebutDate,
		DraftYear:    p.DraftYear,
		HeadshotURL:  fmt.Sprintf(headshotURL, p.ID),
		ProfileURL:   fmt.Sprintf(playerProfileURL, p.ID),
	}

	if len(p.MLBDebutDate) >= 4 {
		if year, err := strconv.Atoi(p.MLBDebutDate[:4]); err == nil {
			years := s.now().Year() - year
			player.YearsActive = &years
		}
	}

	for _, group := range p.Stats {
		if len(group.Splits) == 0 {
			continue
		}
		switch group.Group.DisplayName {
		case "hitting":
			st := group.Splits[0].Stat
			if st.GamesPlayed > 0 || st.AtBats > 0 {
				player.Stats.Hitting = &domain.HittingStats{
					Avg:         st.Avg,
					HomeRuns:    st.HomeRuns,
					RBI:         st.RBI,
					OPS:         st.OPS,
					GamesPlayed: st.GamesPlayed,
				}
			}
		case "pitching":
			st := group.Splits[0].Stat
			if st.GamesPlayed > 0 || (st.InningsPitched != "" && st.InningsPitched != "0.0") {
				player.Stats.Pitching = &domain.PitchingStats{
					ERA:        st.ERA,
					StrikeOuts: st.StrikeOuts,
					WHIP:       st.WHIP,
					Wins:       st.Wins,
					Losses:     st.Losses,
				}
			}
		case "fielding":
			// career fielding is split by position
			var f domain.FieldingStats
			for _, sp := range group.Splits {
				f.PutOuts += sp.Stat.PutOuts
				f.Assists += sp.Stat.Assists
				f.Errors += sp.Stat.Errors
				if f.Percentage == "" {
					f.Percentage = sp.Stat.Fielding
				}
			}
			if f.PutOuts > 0 || f.Assists > 0 || f.Errors > 0 {
				player.Stats.Fielding = &f
			}
		}
	}

	return player
}
