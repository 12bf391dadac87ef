package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// maxFocusEntryLen is counted in runes.
const maxFocusEntryLen = 80

// RewindRequest describes a single rewind to produce.
type RewindRequest struct {
	EventID            string   `json:"event_id"`
	FocusPlayers       []string `json:"focus_players"`
	FocusAreas         []string `json:"focus_areas"`
	FocusTeams         []string `json:"focus_teams"`
	LanguageCode       string   `json:"language"`
	BackgroundMusicURL string   `json:"music_url"`
}

// Normalize returns a copy with trimmed fields and sorted, de-duplicated focus lists.
func (r RewindRequest) Normalize() RewindRequest {
	return RewindRequest{
		EventID:            strings.TrimSpace(r.EventID),
		FocusPlayers:       normalizeFocus(r.FocusPlayers),
		FocusAreas:         normalizeFocus(r.FocusAreas),
		FocusTeams:         normalizeFocus(r.FocusTeams),
		LanguageCode:       strings.ToLower(strings.TrimSpace(r.LanguageCode)),
		BackgroundMusicURL: strings.TrimSpace(r.BackgroundMusicURL),
	}
}

func (r RewindRequest) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("%w: event id is required", ErrInvalidRequest)
	}
	if _, err := strconv.ParseInt(r.EventID, 10, 64); err != nil {
		return fmt.Errorf("%w: event id %q is not numeric", ErrInvalidRequest, r.EventID)
	}
	if r.LanguageCode == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidRequest)
	}
	return nil
}

// Fingerprint is the cache key for the request. It only depends on the event,
// the focus lists and the language; list order does not matter.
func (r RewindRequest) Fingerprint() string {
	n := r.Normalize()

	h := sha256.New()
	for _, list := range [][]string{n.FocusPlayers, n.FocusAreas, n.FocusTeams} {
		h.Write([]byte(strings.Join(list, "\x1f")))
		h.Write([]byte{0x1e})
	}
	h.Write([]byte(n.LanguageCode))

	return n.EventID + "_" + hex.EncodeToString(h.Sum(nil))
}

func normalizeFocus(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return ' '
			}
			return r
		}, v)
		v = strings.Join(strings.Fields(v), " ")
		v = truncateRunes(v, maxFocusEntryLen)
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return strings.TrimSpace(s[:i])
		}
		n--
	}
	return s
}
