package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	req := RewindRequest{
		EventID:      "634594",
		FocusPlayers: []string{"Aaron Judge", "Giancarlo Stanton"},
		FocusAreas:   []string{"Homeruns"},
		FocusTeams:   []string{"New York Yankees"},
		LanguageCode: "en",
	}

	assert.Equal(t, req.Fingerprint(), req.Fingerprint())
	assert.Equal(t, req.Fingerprint(), RewindRequest{
		EventID:      "634594",
		FocusPlayers: []string{"Aaron Judge", "Giancarlo Stanton"},
		FocusAreas:   []string{"Homeruns"},
		FocusTeams:   []string{"New York Yankees"},
		LanguageCode: "en",
	}.Fingerprint())
}

func TestFingerprint_IgnoresListOrderAndMusic(t *testing.T) {
	a := RewindRequest{EventID: "1", FocusPlayers: []string{"B", "A"}, LanguageCode: "en", BackgroundMusicURL: "x"}
	b := RewindRequest{EventID: "1", FocusPlayers: []string{"A", "B", "A"}, LanguageCode: "EN", BackgroundMusicURL: "y"}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint_Distinguishes(t *testing.T) {
	base := RewindRequest{EventID: "1", LanguageCode: "en"}

	others := []RewindRequest{
		{EventID: "2", LanguageCode: "en"},
		{EventID: "1", LanguageCode: "es"},
		{EventID: "1", FocusPlayers: []string{"A"}, LanguageCode: "en"},
		{EventID: "1", FocusAreas: []string{"A"}, LanguageCode: "en"},
		{EventID: "1", FocusTeams: []string{"A"}, LanguageCode: "en"},
	}
	for _, o := range others {
		assert.NotEqual(t, base.Fingerprint(), o.Fingerprint())
	}

	// moving an entry between lists changes the key
	x := RewindRequest{EventID: "1", FocusPlayers: []string{"A", "B"}, LanguageCode: "en"}
	y := RewindRequest{EventID: "1", FocusPlayers: []string{"A"}, FocusAreas: []string{"B"}, LanguageCode: "en"}
	assert.NotEqual(t, x.Fingerprint(), y.Fingerprint())
}

func TestNormalize_SanitizesFocus(t *testing.T) {
	req := RewindRequest{
		EventID:      " 634594 ",
		FocusPlayers: []string{"  Aaron\nJudge ", "", "Aaron Judge", "\t"},
		LanguageCode: " FR ",
	}.Normalize()

	assert.Equal(t, "634594", req.EventID)
	assert.Equal(t, []string{"Aaron Judge"}, req.FocusPlayers)
	assert.Equal(t, "fr", req.LanguageCode)
}

func TestNormalize_TruncatesByRune(t *testing.T) {
	long := "a" + strings.Repeat("大谷", 40)

	req := RewindRequest{
		EventID:      "634594",
		FocusPlayers: []string{long, "大谷翔平"},
		LanguageCode: "ja",
	}.Normalize()

	assert.Len(t, req.FocusPlayers, 2)
	for _, p := range req.FocusPlayers {
		assert.True(t, utf8.ValidString(p), "%q", p)
	}
	assert.Equal(t, maxFocusEntryLen, utf8.RuneCountInString(req.FocusPlayers[0]))
	assert.Equal(t, "a"+strings.Repeat("大谷", 39)+"大", req.FocusPlayers[0])
	assert.Equal(t, "大谷翔平", req.FocusPlayers[1])
}

func TestValidate(t *testing.T) {
	assert.NoError(t, RewindRequest{EventID: "634594", LanguageCode: "en"}.Validate())
	assert.ErrorIs(t, RewindRequest{LanguageCode: "en"}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, RewindRequest{EventID: "abc", LanguageCode: "en"}.Validate(), ErrInvalidRequest)
	assert.ErrorIs(t, RewindRequest{EventID: "1"}.Validate(), ErrInvalidRequest)
}
