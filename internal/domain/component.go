package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type ComponentKind string

const (
	KindGameInfoCard   ComponentKind = "GameInfoCard"
	KindLineBox        ComponentKind = "LineBox"
	KindPlayerCard     ComponentKind = "PlayerCard"
	KindHighlightVideo ComponentKind = "HighlightVideo"
	KindTeamLeaders    ComponentKind = "TeamLeaders"

	KindDialogue    ComponentKind = "Dialogue"
	KindUnavailable ComponentKind = "Unavailable"
)

// ComponentKinds lists every UI component variant a script may request.
var ComponentKinds = []ComponentKind{
	KindGameInfoCard,
	KindLineBox,
	KindPlayerCard,
	KindHighlightVideo,
	KindTeamLeaders,
}

// UIComponent is a visual requested by a script section. The set of
// implementations is closed to this package.
type UIComponent interface {
	Kind() ComponentKind
	validate() error
}

type GameInfoCard struct {
	GameID     string `json:"gameId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

type LineBox struct {
	GameID string `json:"gameId"`
	// CurrentInning is -1 when the section covers the whole game.
	CurrentInning int `json:"currentInning"`
}

type PlayerCard struct {
	PlayerID           string `json:"playerId"`
	PlayerMatchSummary string `json:"playerMatchSummary,omitempty"`
}

type HighlightVideo struct {
	GameID    string `json:"gameId"`
	Index     int    `json:"index"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type TeamLeaders struct {
	TeamID   string `json:"teamId"`
	Season   string `json:"season"`
	GameType string `json:"gameType"`
}

func (GameInfoCard) Kind() ComponentKind   { return KindGameInfoCard }
func (LineBox) Kind() ComponentKind        { return KindLineBox }
func (PlayerCard) Kind() ComponentKind     { return KindPlayerCard }
func (HighlightVideo) Kind() ComponentKind { return KindHighlightVideo }
func (TeamLeaders) Kind() ComponentKind    { return KindTeamLeaders }

func (c GameInfoCard) validate() error {
	return requireFields(c.Kind(), map[string]string{"gameId": c.GameID})
}

func (c LineBox) validate() error {
	if c.CurrentInning < -1 {
		return fmt.Errorf("%w: LineBox currentInning %d", ErrInvalidComponent, c.CurrentInning)
	}
	return requireFields(c.Kind(), map[string]string{"gameId": c.GameID})
}

func (c PlayerCard) validate() error {
	return requireFields(c.Kind(), map[string]string{"playerId": c.PlayerID})
}

func (c HighlightVideo) validate() error {
	return requireFields(c.Kind(), map[string]string{"gameId": c.GameID})
}

func (c TeamLeaders) validate() error {
	return requireFields(c.Kind(), map[string]string{
		"teamId":   c.TeamID,
		"season":   c.Season,
		"gameType": c.GameType,
	})
}

func requireFields(kind ComponentKind, fields map[string]string) error {
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("%w: %s missing %s", ErrInvalidComponent, kind, name)
		}
	}
	return nil
}

// DecodeComponent decodes a tagged component object and validates the
// fields its variant requires.
func DecodeComponent(raw []byte) (UIComponent, error) {
	var w wireComponent
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidComponent, err)
	}

	var c UIComponent
	switch ComponentKind(w.Type) {
	case KindGameInfoCard:
		c = GameInfoCard{GameID: string(w.GameID), HomeTeamID: string(w.HomeTeamID), AwayTeamID: string(w.AwayTeamID)}
	case KindLineBox:
		inning := -1
		if w.CurrentInning != nil {
			inning = *w.CurrentInning
		}
		c = LineBox{GameID: string(w.GameID), CurrentInning: inning}
	case KindPlayerCard:
		c = PlayerCard{PlayerID: string(w.PlayerID), PlayerMatchSummary: w.PlayerMatchSummary}
	case KindHighlightVideo:
		if w.Index == nil {
			return nil, fmt.Errorf("%w: HighlightVideo missing index", ErrInvalidComponent)
		}
		c = HighlightVideo{GameID: string(w.GameID), Index: *w.Index, StartTime: w.StartTime, EndTime: w.EndTime}
	case KindTeamLeaders:
		c = TeamLeaders{TeamID: string(w.TeamID), Season: string(w.Season), GameType: w.GameType}
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrInvalidComponent)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidComponent, w.Type)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeComponent writes a component back into its tagged form.
func EncodeComponent(c UIComponent) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"], _ = json.Marshal(c.Kind())
	return json.Marshal(fields)
}

type wireComponent struct {
	Type               string     `json:"type"`
	GameID             FlexString `json:"gameId"`
	HomeTeamID         FlexString `json:"homeTeamId"`
	AwayTeamID         FlexString `json:"awayTeamId"`
	CurrentInning      *int       `json:"currentInning"`
	PlayerID           FlexString `json:"playerId"`
	PlayerMatchSummary string     `json:"playerMatchSummary"`
	Index              *int       `json:"index"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	TeamID             FlexString `json:"teamId"`
	Season             FlexString `json:"season"`
	GameType           string     `json:"gameType"`
}

// FlexString accepts either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
