package domain

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		path    string
		want    Field
		wantErr bool
	}{
		{"stt.language", FieldSpeechLanguage, false},
		{" STT.Model ", FieldSpeechModel, false},
		{"ti.summarize", FieldTISummarize, false},
		{"ui.language", FieldUILanguage, false},
		{"stt.voice", "", true},
		{"language", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParseField(test.path)
		if test.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseField(%q) error = %v, want ErrValidation", test.path, err)
			}
			continue
		}
		if err != nil || got != test.want {
			t.Errorf("ParseField(%q) = (%q, %v), want (%q, nil)", test.path, got, err, test.want)
		}
	}
}

func TestFieldApply(t *testing.T) {
	tests := []struct {
		field   Field
		value   string
		wantErr bool
		check   func(s UserSettings) bool
	}{
		{FieldSpeechLanguage, "vi", false, func(s UserSettings) bool { return s.Speech.Language == "vi" }},
		{FieldSpeechDetect, "on", false, func(s UserSettings) bool { return s.Speech.DetectLanguage }},
		{FieldSpeechModel, "nova-2", false, func(s UserSettings) bool { return s.Speech.Model == "nova-2" }},
		{FieldSpeechModel, "", false, func(s UserSettings) bool { return s.Speech.Model == "" }},
		{FieldTISummarize, "off", false, func(s UserSettings) bool { return s.TI.Summarize == SummarizeOff }},
		{FieldTITopics, "off", false, func(s UserSettings) bool { return !s.TI.Topics }},
		{FieldUILanguage, "Vietnamese", false, func(s UserSettings) bool { return s.UILanguage == UILanguageVI }},
		{FieldTISummarize, "maybe", true, nil},
		{FieldSpeechDetect, "sometimes", true, nil},
		{FieldSpeechLanguage, "", true, nil},
		{FieldUILanguage, "fr", true, nil},
	}

	for _, test := range tests {
		s := DefaultSettings(1)
		err := test.field.Apply(&s, test.value)
		if test.wantErr {
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Apply(%q, %q) error = %v, want ErrValidation", test.field, test.value, err)
			}
			if s != DefaultSettings(1) {
				t.Errorf("Apply(%q, %q) mutated settings on validation failure", test.field, test.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("Apply(%q, %q) unexpected error: %v", test.field, test.value, err)
			continue
		}
		if !test.check(s) {
			t.Errorf("Apply(%q, %q) did not take effect: %+v", test.field, test.value, s)
		}
	}
}

func TestDetectLanguageIndependentOfOtherFields(t *testing.T) {
	s := DefaultSettings(42)
	s.Speech.Model = "nova-2"

	if err := FieldSpeechDetect.Apply(&s, "on"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Speech.DetectLanguage {
		t.Errorf("detect_language not set")
	}
	if s.Speech.Model != "nova-2" || s.Speech.Language != DefaultSpeechLanguage {
		t.Errorf("unrelated fields changed: %+v", s.Speech)
	}
}
