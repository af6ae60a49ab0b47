package telegram

import (
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".oga":  true,
	".webm": true,
	".flac": true,
	".aac":  true,
}

var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".srt": true,
	".vtt": true,
}

// ClassifyMessage maps a Telegram message to an attachment the services can
// route: voice, audio and video notes go to transcription, known text
// documents go to analysis, everything else is rejected explicitly.
func ClassifyMessage(message *tgbotapi.Message) domain.Attachment {
	switch {
	case message.Voice != nil:
		return domain.Attachment{
			Kind:     domain.AttachmentAudio,
			FileID:   message.Voice.FileID,
			FileName: "voice.ogg",
			MimeType: orDefault(message.Voice.MimeType, "audio/ogg"),
		}
	case message.Audio != nil:
		return domain.Attachment{
			Kind:     domain.AttachmentAudio,
			FileID:   message.Audio.FileID,
			FileName: orDefault(message.Audio.FileName, "audio.mp3"),
			MimeType: message.Audio.MimeType,
		}
	case message.VideoNote != nil:
		// Deepgram extracts the audio track from the mp4 container.
		return domain.Attachment{
			Kind:     domain.AttachmentAudio,
			FileID:   message.VideoNote.FileID,
			FileName: "video_note.mp4",
			MimeType: "video/mp4",
		}
	case message.Document != nil:
		return classifyDocument(message.Document)
	}
	return domain.Attachment{Kind: domain.AttachmentNone}
}

func classifyDocument(doc *tgbotapi.Document) domain.Attachment {
	ext := strings.ToLower(filepath.Ext(doc.FileName))

	switch {
	case audioExtensions[ext] || strings.HasPrefix(doc.MimeType, "audio/"):
		return domain.Attachment{
			Kind:     domain.AttachmentAudio,
			FileID:   doc.FileID,
			FileName: orDefault(doc.FileName, "audio.bin"),
			MimeType: doc.MimeType,
		}
	case textExtensions[ext]:
		return domain.Attachment{
			Kind:     domain.AttachmentText,
			FileID:   doc.FileID,
			FileName: doc.FileName,
			MimeType: doc.MimeType,
		}
	}

	return domain.Attachment{
		Kind:     domain.AttachmentUnsupported,
		FileID:   doc.FileID,
		FileName: doc.FileName,
		MimeType: doc.MimeType,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
