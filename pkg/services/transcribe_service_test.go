package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dskvich/deepgram-telegram-bot/pkg/deepgram"
	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/repository"
)

type fakeDownloader struct {
	data []byte
	err  error
}

func (f *fakeDownloader) DownloadFile(context.Context, string) ([]byte, error) {
	return f.data, f.err
}

type fakeActions struct{ sent []string }

func (f *fakeActions) SendChatAction(_ context.Context, _ int64, action string) {
	f.sent = append(f.sent, action)
}

type fakeTranscriber struct {
	text string
	err  error

	gotMime string
	gotOpts domain.SpeechSettings
}

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte, mimeType string, opts domain.SpeechSettings) (string, error) {
	f.gotMime = mimeType
	f.gotOpts = opts
	return f.text, f.err
}

func collect(ch chan domain.Response) []domain.Response {
	var responses []domain.Response
	for {
		select {
		case response := <-ch:
			responses = append(responses, response)
		default:
			return responses
		}
	}
}

func TestTranscribeRepliesWithTextFile(t *testing.T) {
	transcriber := &fakeTranscriber{text: "hello world"}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(
		&fakeDownloader{data: []byte("ogg-bytes")},
		&fakeActions{},
		transcriber,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)

	s.Transcribe(context.Background(), 1, 10, domain.Attachment{
		Kind:     domain.AttachmentAudio,
		FileID:   "f1",
		FileName: "voice.ogg",
		MimeType: "audio/ogg",
	})

	responses := collect(responseCh)
	if len(responses) != 2 {
		t.Fatalf("got %d responses, want progress + result", len(responses))
	}

	result := responses[1]
	if result.File == nil {
		t.Fatalf("expected a file reply, got text %q", result.Text)
	}
	if result.File.Name != "voice.txt" {
		t.Errorf("file name = %q, want voice.txt", result.File.Name)
	}
	if string(result.File.Data) != "hello world" {
		t.Errorf("file data = %q", result.File.Data)
	}
	if result.ReplyToMessageID != 10 {
		t.Errorf("replyTo = %d, want 10", result.ReplyToMessageID)
	}
	if transcriber.gotMime != "audio/ogg" {
		t.Errorf("mimeType = %q", transcriber.gotMime)
	}
}

func TestTranscribeVietnameseDefaultsModel(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	settings := domain.DefaultSettings(1)
	settings.Speech.Language = "vi"
	if err := repo.Save(context.Background(), settings); err != nil {
		t.Fatal(err)
	}

	transcriber := &fakeTranscriber{text: "xin chào"}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(&fakeDownloader{data: []byte("x")}, &fakeActions{}, transcriber, repo, responseCh)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	if transcriber.gotOpts.Model != "nova-2" {
		t.Errorf("model = %q, want nova-2 for Vietnamese", transcriber.gotOpts.Model)
	}
}

func TestTranscribeExplicitModelNotOverridden(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	settings := domain.DefaultSettings(1)
	settings.Speech.Language = "vi"
	settings.Speech.Model = "base"
	if err := repo.Save(context.Background(), settings); err != nil {
		t.Fatal(err)
	}

	transcriber := &fakeTranscriber{text: "ok"}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(&fakeDownloader{data: []byte("x")}, &fakeActions{}, transcriber, repo, responseCh)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	if transcriber.gotOpts.Model != "base" {
		t.Errorf("model = %q, want base", transcriber.gotOpts.Model)
	}
}

func TestTranscribeBadRequestSuggestsDetection(t *testing.T) {
	transcriber := &fakeTranscriber{err: &deepgram.RequestError{StatusCode: 400, Body: "bad combo"}}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(
		&fakeDownloader{data: []byte("x")},
		&fakeActions{},
		transcriber,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	responses := collect(responseCh)
	last := responses[len(responses)-1]
	if !strings.Contains(last.Text, "/lang auto") {
		t.Errorf("expected detection hint, got %q", last.Text)
	}
	if last.Err == nil {
		t.Error("expected the failure to carry the underlying error")
	}
}

func TestTranscribeGenericFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: errors.New("connection reset")}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(
		&fakeDownloader{data: []byte("x")},
		&fakeActions{},
		transcriber,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	responses := collect(responseCh)
	last := responses[len(responses)-1]
	if !strings.Contains(last.Text, "couldn't transcribe") {
		t.Errorf("unexpected failure text: %q", last.Text)
	}
}

func TestTranscribeEmptyTranscript(t *testing.T) {
	transcriber := &fakeTranscriber{text: "   "}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(
		&fakeDownloader{data: []byte("x")},
		&fakeActions{},
		transcriber,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	responses := collect(responseCh)
	last := responses[len(responses)-1]
	if last.File != nil {
		t.Fatal("no file expected for an empty transcript")
	}
	if !strings.Contains(last.Text, "empty") {
		t.Errorf("unexpected reply: %q", last.Text)
	}
}

func TestTranscribeDownloadFailure(t *testing.T) {
	transcriber := &fakeTranscriber{text: "never called"}
	responseCh := make(chan domain.Response, 4)

	s := NewTranscribeService(
		&fakeDownloader{err: errors.New("file expired")},
		&fakeActions{},
		transcriber,
		repository.NewMemorySettingsRepository(),
		responseCh,
	)
	s.Transcribe(context.Background(), 1, 10, domain.Attachment{FileID: "f1", FileName: "voice.ogg"})

	responses := collect(responseCh)
	last := responses[len(responses)-1]
	if !strings.Contains(last.Text, "download") {
		t.Errorf("unexpected reply: %q", last.Text)
	}
	if transcriber.gotOpts != (domain.SpeechSettings{}) {
		t.Error("transcriber called despite download failure")
	}
}

func TestTranscriptFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"voice.ogg", "voice.txt"},
		{"Meeting Notes.m4a", "Meeting Notes.txt"},
		{"noext", "noext.txt"},
		{"", "transcription.txt"},
	}
	for _, test := range tests {
		if got := transcriptFileName(test.in); got != test.want {
			t.Errorf("transcriptFileName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
