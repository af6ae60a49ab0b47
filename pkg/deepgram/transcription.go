package deepgram

import "strings"

type transcriptionResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
			DetectedLanguage string `json:"detected_language"`
		} `json:"channels"`
		Utterances []struct {
			Transcript string `json:"transcript"`
		} `json:"utterances"`
	} `json:"results"`
}

// transcript extracts the combined text: first alternative of the first
// channel, falling back to joined utterances.
func (r *transcriptionResponse) transcript() string {
	if len(r.Results.Channels) > 0 {
		alts := r.Results.Channels[0].Alternatives
		if len(alts) > 0 && alts[0].Transcript != "" {
			return strings.TrimSpace(alts[0].Transcript)
		}
	}

	var parts []string
	for _, u := range r.Results.Utterances {
		if t := strings.TrimSpace(u.Transcript); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
