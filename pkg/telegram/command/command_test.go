package command

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
	"github.com/dskvich/deepgram-telegram-bot/pkg/repository"
)

func commandUpdate(chatID, userID int64, text string) *tgbotapi.Update {
	commandLen := len(text)
	if idx := strings.Index(text, " "); idx != -1 {
		commandLen = idx
	}
	return &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: userID},
		Text:      text,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: commandLen}},
	}}
}

func drain(t *testing.T, ch chan domain.Response) domain.Response {
	t.Helper()
	select {
	case response := <-ch:
		return response
	default:
		t.Fatal("expected a reply")
		return domain.Response{}
	}
}

func TestModelThenStatus(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	NewModel(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/model nova-2"))
	if reply := drain(t, outCh); !strings.Contains(reply.Text, "Model set to nova-2") {
		t.Fatalf("unexpected /model reply: %q", reply.Text)
	}

	NewStatus(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/status"))
	reply := drain(t, outCh)

	for _, want := range []string{"model: nova-2", "language: en-US", "detect_language: false"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("/status reply missing %q: %q", want, reply.Text)
		}
	}
}

func TestLangAutoEnablesDetectionAndClearsFixedLanguage(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()
	cmd := NewLang(repo, outCh)

	cmd.Handle(ctx, commandUpdate(1, 1, "/lang vi"))
	drain(t, outCh)

	cmd.Handle(ctx, commandUpdate(1, 1, "/lang auto"))
	drain(t, outCh)

	settings, _ := repo.Get(ctx, 1)
	if !settings.Speech.DetectLanguage {
		t.Errorf("detect_language not enabled")
	}
	if settings.Speech.Language != domain.DefaultSpeechLanguage {
		t.Errorf("fixed language not cleared: %q", settings.Speech.Language)
	}
}

func TestSummarizeInvalidValueLeavesSettingsUnchanged(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	NewSummarize(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/summarize maybe"))

	reply := drain(t, outCh)
	if !strings.Contains(reply.Text, "Usage: /summarize") {
		t.Errorf("expected usage hint, got %q", reply.Text)
	}

	settings, _ := repo.Get(ctx, 1)
	if settings.TI.Summarize != domain.SummarizeV2 {
		t.Errorf("summarize changed on invalid input: %q", settings.TI.Summarize)
	}
}

func TestDetectOnIsIndependentOfOtherFields(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	NewModel(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/model nova-2"))
	drain(t, outCh)

	NewDetect(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/detect on"))
	drain(t, outCh)

	settings, _ := repo.Get(ctx, 1)
	if !settings.Speech.DetectLanguage {
		t.Errorf("detect_language not set")
	}
	if settings.Speech.Model != "nova-2" {
		t.Errorf("model lost on detect toggle: %q", settings.Speech.Model)
	}
}

type allowAdmin struct{ adminID int64 }

func (a allowAdmin) IsAdmin(userID int64) bool { return userID == a.adminID }

func TestAdminSetTargetsOnlyTheGivenChat(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	cmd := NewAdminSet(allowAdmin{adminID: 99}, repo, outCh)
	cmd.Handle(ctx, commandUpdate(1, 99, "/adminset 200 stt.model nova-2"))

	if reply := drain(t, outCh); !strings.Contains(reply.Text, "Updated") {
		t.Fatalf("unexpected reply: %q", reply.Text)
	}

	target, _ := repo.Get(ctx, 200)
	if target.Speech.Model != "nova-2" {
		t.Errorf("target chat not updated: %q", target.Speech.Model)
	}

	own, _ := repo.Get(ctx, 1)
	if own.Speech.Model != "" {
		t.Errorf("admin's own chat mutated: %q", own.Speech.Model)
	}
}

func TestAdminSetRejectsNonAdmin(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	cmd := NewAdminSet(allowAdmin{adminID: 99}, repo, outCh)
	cmd.Handle(ctx, commandUpdate(1, 7, "/adminset 200 stt.model nova-2"))

	if reply := drain(t, outCh); reply.Text != notAllowedReply {
		t.Fatalf("unexpected reply: %q", reply.Text)
	}

	target, _ := repo.Get(ctx, 200)
	if target.Speech.Model != "" {
		t.Errorf("settings mutated by non-admin: %q", target.Speech.Model)
	}
}

func TestAdminSetValidatesValues(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	cmd := NewAdminSet(allowAdmin{adminID: 99}, repo, outCh)
	cmd.Handle(ctx, commandUpdate(1, 99, "/adminset 200 ti.summarize maybe"))

	if reply := drain(t, outCh); !strings.Contains(reply.Text, "Invalid value") {
		t.Fatalf("unexpected reply: %q", reply.Text)
	}

	target, _ := repo.Get(ctx, 200)
	if target.TI.Summarize != domain.SummarizeV2 {
		t.Errorf("summarize changed on invalid admin input: %q", target.TI.Summarize)
	}
}

func TestUILanguageSwitchesReplies(t *testing.T) {
	repo := repository.NewMemorySettingsRepository()
	outCh := make(chan domain.Response, 4)
	ctx := context.Background()

	NewUILanguage(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/language Vietnamese"))
	drain(t, outCh)

	settings, _ := repo.Get(ctx, 1)
	if settings.UILanguage != domain.UILanguageVI {
		t.Fatalf("ui language = %q, want vi", settings.UILanguage)
	}

	NewStart(repo, outCh).Handle(ctx, commandUpdate(1, 1, "/start"))
	if reply := drain(t, outCh); !strings.Contains(reply.Text, "âm thanh") {
		t.Errorf("expected Vietnamese start message, got %q", reply.Text)
	}
}
