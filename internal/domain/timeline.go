package domain

import (
	"encoding/json"
	"fmt"
)

// Timeline is the final rewind artifact.
type Timeline struct {
	EventID            string            `json:"id"`
	TotalDuration      float64           `json:"total_duration"`
	BackgroundMusicURL string            `json:"background_music_url"`
	Sections           []ResolvedSection `json:"video"`
}

type ResolvedSection struct {
	SectionID       int                `json:"section_id"`
	SectionDuration float64            `json:"section_duration"`
	Components      []SectionComponent `json:"section_components"`
}

// SectionComponent is either the Dialogue clip or a resolved UI payload.
type SectionComponent struct {
	Type     ComponentKind   `json:"type"`
	URL      string          `json:"url,omitempty"`
	Duration float64         `json:"duration,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Narration is a rendered and published audio clip.
type Narration struct {
	URL      string
	Duration float64
}

// ClipRange is the sub-range of a highlight video chosen for a section.
type ClipRange struct {
	Start    string
	End      string
	Duration float64
}

// ResolvedComponent is the payload a client needs to render a UI component.
type ResolvedComponent struct {
	Type ComponentKind
	Data any
}

func NewDialogue(n Narration) SectionComponent {
	return SectionComponent{Type: KindDialogue, URL: n.URL, Duration: n.Duration}
}

func NewSectionComponent(rc ResolvedComponent) (SectionComponent, error) {
	data, err := json.Marshal(rc.Data)
	if err != nil {
		return SectionComponent{}, fmt.Errorf("marshal %s data: %w", rc.Type, err)
	}
	return SectionComponent{Type: rc.Type, Data: data}, nil
}

// Recalculate sets TotalDuration to the sum of the section durations.
func (t *Timeline) Recalculate() {
	var total float64
	for _, s := range t.Sections {
		total += s.SectionDuration
	}
	t.TotalDuration = total
}

type GameInfoData struct {
	GameID          string `json:"gameId"`
	Location        string `json:"location"`
	DateAndTime     string `json:"dateAndTime"`
	HomeTeamName    string `json:"homeTeamName"`
	AwayTeamName    string `json:"awayTeamName"`
	HomeTeamLogoURL string `json:"homeTeamLogoURL"`
	AwayTeamLogoURL string `json:"awayTeamLogoURL"`
}

type LineBoxData struct {
	GameID        string    `json:"gameId"`
	CurrentInning int       `json:"currentInning"`
	Score         LineScore `json:"score"`
}

type PlayerCardData struct {
	PlayerID           string  `json:"playerId"`
	Player             *Player `json:"data"`
	PlayerMatchSummary string  `json:"playerMatchSummary,omitempty"`
}

type HighlightVideoData struct {
	GameID      string `json:"gameId"`
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Aligned     bool   `json:"aligned"`
}

type TeamLeadersData struct {
	TeamID      string           `json:"teamId"`
	Season      string           `json:"season"`
	GameType    string           `json:"gameType"`
	TeamDetails *Team            `json:"teamDetails"`
	Leaders     []LeaderCategory `json:"champs"`
}

// UnavailableData stands in for a component that could not be resolved.
type UnavailableData struct {
	RequestedType ComponentKind `json:"requestedType"`
	Reason        string        `json:"reason"`
}
