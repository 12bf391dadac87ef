package script

import (
	"github.com/invopop/jsonschema"
)

// The shapes below only describe the response to the model. Decoding goes
// through rawScript so that missing fields can be told apart from zero values.

type scriptResponse struct {
	Sections []sectionResponse `json:"sections" jsonschema_description:"The rewind sections in playback order."`
}

type sectionResponse struct {
	ID          int               `json:"id" jsonschema_description:"Position of the section, starting at 0."`
	Narration   string            `json:"narration" jsonschema_description:"Commentary spoken during this section."`
	UIComponent componentResponse `json:"ui_component" jsonschema_description:"The visual shown during this section."`
}

type componentResponse struct {
	Type               string `json:"type" jsonschema:"enum=GameInfoCard,enum=LineBox,enum=PlayerCard,enum=HighlightVideo,enum=TeamLeaders"`
	GameID             string `json:"gameId,omitempty"`
	HomeTeamID         string `json:"homeTeamId,omitempty"`
	AwayTeamID         string `json:"awayTeamId,omitempty"`
	CurrentInning      int    `json:"currentInning,omitempty" jsonschema_description:"Inning number, or -1 for several innings."`
	PlayerID           string `json:"playerId,omitempty"`
	PlayerMatchSummary string `json:"playerMatchSummary,omitempty"`
	Index              int    `json:"index,omitempty" jsonschema_description:"Index from the Highlights block."`
	StartTime          string `json:"startTime,omitempty" jsonschema_description:"HH:MM:SS"`
	EndTime            string `json:"endTime,omitempty" jsonschema_description:"HH:MM:SS"`
	TeamID             string `json:"teamId,omitempty"`
	Season             string `json:"season,omitempty"`
	GameType           string `json:"gameType,omitempty"`
}

// ResponseSchema is the JSON schema the script model is asked to follow.
var ResponseSchema = generateSchema[scriptResponse]()

func generateSchema[T any]() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
