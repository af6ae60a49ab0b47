package telegram

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/repository"
)

type recordingTranscribe struct{ calls int }

func (r *recordingTranscribe) Transcribe(context.Context, int64, int, domain.Attachment) {
	r.calls++
}

type recordingAnalyze struct{ calls int }

func (r *recordingAnalyze) AnalyzeDocument(context.Context, int64, int, domain.Attachment) {
	r.calls++
}

func TestHandleUpdateRejectsUnsupportedUploadWithoutVendorCall(t *testing.T) {
	transcribe := &recordingTranscribe{}
	analyze := &recordingAnalyze{}
	responseCh := make(chan domain.Response, 1)

	h := NewHandler(
		NewCommandHandler(nil),
		transcribe,
		analyze,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)

	update := &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 10,
		Chat:      &tgbotapi.Chat{ID: 1},
		Document:  &tgbotapi.Document{FileID: "d1", FileName: "malware.exe"},
	}}

	h.HandleUpdate(context.Background(), update)

	if transcribe.calls != 0 || analyze.calls != 0 {
		t.Fatalf("vendor flow invoked for unsupported upload: transcribe=%d analyze=%d",
			transcribe.calls, analyze.calls)
	}

	select {
	case response := <-responseCh:
		if !strings.Contains(response.Text, "can't process this file type") {
			t.Errorf("unexpected rejection text: %q", response.Text)
		}
	default:
		t.Fatal("expected a rejection reply")
	}
}

func TestHandleUpdateRoutesAudioToTranscription(t *testing.T) {
	transcribe := &recordingTranscribe{}
	analyze := &recordingAnalyze{}
	responseCh := make(chan domain.Response, 1)

	h := NewHandler(
		NewCommandHandler(nil),
		transcribe,
		analyze,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)

	update := &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 11,
		Chat:      &tgbotapi.Chat{ID: 1},
		Voice:     &tgbotapi.Voice{FileID: "v1"},
	}}

	h.HandleUpdate(context.Background(), update)

	if transcribe.calls != 1 {
		t.Errorf("transcribe calls = %d, want 1", transcribe.calls)
	}
	if analyze.calls != 0 {
		t.Errorf("analyze calls = %d, want 0", analyze.calls)
	}
}
