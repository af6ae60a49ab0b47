package domain

const (
	SummarizeOff = "off"
	SummarizeV2  = "v2"

	UILanguageEN = "en"
	UILanguageVI = "vi"

	DefaultSpeechLanguage = "en-US"
	DefaultTILanguage     = "en"
)

type SpeechSettings struct {
	Language       string
	DetectLanguage bool
	Model          string
}

type TISettings struct {
	Language  string
	Summarize string
	Topics    bool
	Intents   bool
	Sentiment bool
}

// UserSettings is the per-chat configuration record. A chat with no stored
// record behaves exactly as DefaultSettings.
type UserSettings struct {
	ChatID     int64
	Speech     SpeechSettings
	TI         TISettings
	UILanguage string
}

func DefaultSettings(chatID int64) UserSettings {
	return UserSettings{
		ChatID: chatID,
		Speech: SpeechSettings{
			Language:       DefaultSpeechLanguage,
			DetectLanguage: false,
			Model:          "",
		},
		TI: TISettings{
			Language:  DefaultTILanguage,
			Summarize: SummarizeV2,
			Topics:    true,
			Intents:   true,
			Sentiment: true,
		},
		UILanguage: UILanguageEN,
	}
}
