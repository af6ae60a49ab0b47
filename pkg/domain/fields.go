package domain

import (
	"fmt"
	"strings"
)

// Field identifies a single settable slot in UserSettings. The set is closed:
// anything outside this list is rejected at the boundary instead of being
// dispatched on a free-form string path.
type Field string

const (
	FieldSpeechLanguage Field = "stt.language"
	FieldSpeechDetect   Field = "stt.detect_language"
	FieldSpeechModel    Field = "stt.model"
	FieldTILanguage     Field = "ti.language"
	FieldTISummarize    Field = "ti.summarize"
	FieldTITopics       Field = "ti.topics"
	FieldTIIntents      Field = "ti.intents"
	FieldTISentiment    Field = "ti.sentiment"
	FieldUILanguage     Field = "ui.language"
)

var allFields = []Field{
	FieldSpeechLanguage,
	FieldSpeechDetect,
	FieldSpeechModel,
	FieldTILanguage,
	FieldTISummarize,
	FieldTITopics,
	FieldTIIntents,
	FieldTISentiment,
	FieldUILanguage,
}

// ParseField resolves a "<section>.<field>" path into a known Field.
func ParseField(path string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(path)))
	for _, known := range allFields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown field %q", ErrValidation, path)
}

// ParseBool accepts the argument spellings the bot has always accepted.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected on/off, true/false or 1/0, got %q", ErrValidation, value)
}

// Apply validates value for field and writes it into s. On validation failure
// s is left untouched.
func (f Field) Apply(s *UserSettings, value string) error {
	value = strings.TrimSpace(value)

	switch f {
	case FieldSpeechLanguage:
		if value == "" {
			return fmt.Errorf("%w: language code required", ErrValidation)
		}
		s.Speech.Language = value
	case FieldSpeechDetect:
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		s.Speech.DetectLanguage = b
	case FieldSpeechModel:
		// Empty resets to the vendor default.
		s.Speech.Model = value
	case FieldTILanguage:
		if value == "" {
			return fmt.Errorf("%w: language code required", ErrValidation)
		}
		s.TI.Language = value
	case FieldTISummarize:
		v := strings.ToLower(value)
		if v != SummarizeOff && v != SummarizeV2 {
			return fmt.Errorf("%w: summarize expects %s or %s, got %q", ErrValidation, SummarizeOff, SummarizeV2, value)
		}
		s.TI.Summarize = v
	case FieldTITopics, FieldTIIntents, FieldTISentiment:
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		switch f {
		case FieldTITopics:
			s.TI.Topics = b
		case FieldTIIntents:
			s.TI.Intents = b
		case FieldTISentiment:
			s.TI.Sentiment = b
		}
	case FieldUILanguage:
		lang, err := ParseUILanguage(value)
		if err != nil {
			return err
		}
		s.UILanguage = lang
	default:
		return fmt.Errorf("%w: unknown field %q", ErrValidation, string(f))
	}

	return nil
}

// ParseUILanguage maps the friendly spellings accepted by /language onto the
// supported interface languages.
func ParseUILanguage(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "en", "english":
		return UILanguageEN, nil
	case "vi", "vn", "viet", "vietnamese", "tiếng việt", "tieng viet":
		return UILanguageVI, nil
	}
	return "", fmt.Errorf("%w: unsupported interface language %q", ErrValidation, value)
}
