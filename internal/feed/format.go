package feed

import (
	"fmt"
	"strconv"
	"strings"

	"rewind/internal/domain"
)

const notAvailable = "N/A"

func formatPreferences(req domain.RewindRequest) string {
	if len(req.FocusPlayers) == 0 && len(req.FocusAreas) == 0 && len(req.FocusTeams) == 0 {
		return "No specific preferences. Cover the most important moments of the game."
	}

	var sb strings.Builder
	sb.WriteString("Give extra attention to the following, without inventing facts that are not in this feed.\n")
	if len(req.FocusPlayers) > 0 {
		fmt.Fprintf(&sb, "Players: %s\n", strings.Join(req.FocusPlayers, "; "))
	}
	if len(req.FocusTeams) > 0 {
		fmt.Fprintf(&sb, "Teams: %s\n", strings.Join(req.FocusTeams, "; "))
	}
	if len(req.FocusAreas) > 0 {
		fmt.Fprintf(&sb, "Areas: %s\n", strings.Join(req.FocusAreas, "; "))
	}
	return sb.String()
}

func formatGameInfo(g *domain.Game) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Home team: %s (ID: %d)\n", g.Home.Team.Name, g.Home.Team.ID)
	fmt.Fprintf(&sb, "Away team: %s (ID: %d)\n", g.Away.Team.Name, g.Away.Team.ID)
	fmt.Fprintf(&sb, "Venue: %s\n", orNA(g.Venue))
	fmt.Fprintf(&sb, "Date and time: %s\n", orNA(g.DateTime))
	fmt.Fprintf(&sb, "Season: %s, game type: %s\n", orNA(g.Season), orNA(g.GameType))
	fmt.Fprintf(&sb, "Weather: %s\n", orNA(g.Weather))
	fmt.Fprintf(&sb, "Status: %s\n", orNA(g.Status))
	fmt.Fprintf(&sb, "Final score: %s %d, %s %d\n",
		g.Away.Team.Name, g.LineScore.Away.Runs,
		g.Home.Team.Name, g.LineScore.Home.Runs,
	)
	return sb.String()
}

func formatBoxScore(g *domain.Game) string {
	var sb strings.Builder
	for _, side := range []domain.GameTeam{g.Away, g.Home} {
		fmt.Fprintf(&sb, "%s batting (AB R H RBI BB SO HR):\n", side.Team.Name)
		for _, b := range side.Batting {
			fmt.Fprintf(&sb, "  %s (ID: %d, %s): %d %d %d %d %d %d %d\n",
				b.Name, b.PlayerID, b.Position,
				b.AtBats, b.Runs, b.Hits, b.RBI, b.Walks, b.StrikeOuts, b.HomeRuns)
		}
		fmt.Fprintf(&sb, "%s pitching (IP H R ER BB SO HR NP):\n", side.Team.Name)
		for _, p := range side.Pitching {
			fmt.Fprintf(&sb, "  %s (ID: %d): %s %d %d %d %d %d %d %d\n",
				p.Name, p.PlayerID,
				p.InningsPitched, p.Hits, p.Runs, p.EarnedRuns, p.Walks, p.StrikeOuts, p.HomeRuns, p.Pitches)
		}
	}
	return sb.String()
}

func formatLeaders(g *domain.Game, home, away []domain.LeaderCategory) string {
	var sb strings.Builder
	for _, side := range []struct {
		team    domain.Team
		leaders []domain.LeaderCategory
	}{
		{g.Home.Team, home},
		{g.Away.Team, away},
	} {
		fmt.Fprintf(&sb, "%s (team ID: %d, season %s, game type %s):\n", side.team.Name, side.team.ID, g.Season, g.GameType)
		if len(side.leaders) == 0 {
			sb.WriteString("  no leaders reported\n")
			continue
		}
		for _, cat := range side.leaders {
			names := make([]string, 0, len(cat.Leaders))
			for _, l := range cat.Leaders {
				names = append(names, fmt.Sprintf("%d. %s (ID: %d) %s", l.Rank, l.Name, l.PlayerID, l.Value))
			}
			fmt.Fprintf(&sb, "  %s: %s\n", cat.Category, strings.Join(names, ", "))
		}
	}
	return sb.String()
}

func formatLanguage(lang domain.Language) string {
	return fmt.Sprintf("Write every narration in %s (%s). Keep JSON keys, component types and ids in English.", lang.Name, lang.Code)
}

func formatRosters(g *domain.Game) string {
	var sb strings.Builder
	for _, side := range []domain.GameTeam{g.Home, g.Away} {
		fmt.Fprintf(&sb, "%s (team ID: %d):\n", side.Team.Name, side.Team.ID)
		for _, r := range side.Roster {
			fmt.Fprintf(&sb, "  %s (ID: %d, %s, #%s)\n", r.Name, r.PlayerID, orNA(r.Position), orNA(r.Jersey))
		}
	}
	return sb.String()
}

func formatLineScore(g *domain.Game) string {
	ls := g.LineScore

	var sb strings.Builder
	sb.WriteString("Inning | Away R-H-E | Home R-H-E\n")
	for _, in := range ls.Innings {
		fmt.Fprintf(&sb, "%d | %s | %s\n", in.Inning, rhe(in.Away), rhe(in.Home))
	}
	fmt.Fprintf(&sb, "Total | %s | %s\n", rhe(ls.Away), rhe(ls.Home))
	fmt.Fprintf(&sb, "Innings played: %d\n", ls.CurrentInning)
	return sb.String()
}

func rhe(l domain.InningLine) string {
	return fmt.Sprintf("%d-%d-%d", l.Runs, l.Hits, l.Errors)
}

func formatPlays(plays []domain.Play) string {
	var sb strings.Builder
	inning, half := -1, ""
	for _, p := range plays {
		if p.Inning != inning || p.HalfInning != half {
			inning, half = p.Inning, p.HalfInning
			fmt.Fprintf(&sb, "%s of inning %d:\n", titleCase(half), inning)
		}

		fmt.Fprintf(&sb, "  %s (batter %s, pitcher %s; score away %d, home %d)\n",
			orNA(p.Description), orNA(p.Batter), orNA(p.Pitcher), p.AwayScore, p.HomeScore)
		fmt.Fprintf(&sb, "    launch angle %s, exit velocity %s, distance %s\n",
			num(p.LaunchAngle, "°"), num(p.ExitVelocity, " mph"), num(p.Distance, " ft"))

		for _, pitch := range p.Pitches {
			fmt.Fprintf(&sb, "    pitch: %s, %s, spin %s, break %s\n",
				orNA(pitch.Type), num(pitch.Speed, " mph"), num(pitch.SpinRate, " rpm"), num(pitch.BreakAngle, "°"))
		}
		for _, r := range p.Runners {
			fmt.Fprintf(&sb, "    runner: %s to %s (%s)\n", orNA(r.Runner), orNA(r.End), orNA(r.Event))
		}
	}
	if sb.Len() == 0 {
		return "No plays recorded."
	}
	return sb.String()
}

// formatHighlights lists clips that have an mp4 rendition under their
// index in the content listing, which is what HighlightVideo components refer to.
func formatHighlights(highlights []domain.Highlight) string {
	var sb strings.Builder
	for _, h := range highlights {
		if _, ok := h.PlaybackURL(); !ok {
			continue
		}
		fmt.Fprintf(&sb, "Index %d: %s | %s | duration %s | headline: %s\n",
			h.Index, orNA(h.Title), orNA(h.Description), orNA(h.Duration), orNA(h.Headline))
	}
	if sb.Len() == 0 {
		return "No highlight videos available."
	}
	return sb.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func num(v *float64, unit string) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + unit
}

func titleCase(s string) string {
	if s == "" {
		return notAvailable
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
