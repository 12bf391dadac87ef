package highlight

import (
	"fmt"
	"strconv"
)

func buildPrompt(narration string, duration float64) string {
	return fmt.Sprintf(`Analyze the attached baseball highlight video together with the narration below.

Return a JSON object with two fields, "start" and "end", holding the start and end of the part of the video
that best matches the narration, in HH:MM:SS format.

The chosen part must be the most relevant and engaging section for the narration. Its length should be equal
or close to the length of the narration audio, and it must not exceed the length of the video.

Narration audio length: %s seconds
Narration text:
%s

Return only the JSON object, for example {"start": "00:00:03", "end": "00:00:15"}.`,
		strconv.FormatFloat(duration, 'f', 1, 64), narration)
}
