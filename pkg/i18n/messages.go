// Package i18n holds the bot's reply phrasing. Only the interface language is
// affected; vendor requests never depend on these tables.
package i18n

var en = map[string]string{
	"start_message":        "Send me an audio file or voice note, and I'll return a transcription as a .txt file.",
	"couldnt_download":     "Couldn't download that file.",
	"transcribing":         "Transcribing… this may take a moment.",
	"transcription_empty":  "Transcription came back empty. The audio may be too quiet or unsupported.",
	"transcription_ready":  "Here is your transcription.",
	"transcribe_failed":    "Sorry, I couldn't transcribe that audio.",
	"language_model_quirk": "Deepgram rejected this language/model combination. Try /lang auto to enable language detection, or pick another model with /model.",
	"analyzing_text":       "Analyzing text…",
	"analyzing_file":       "Analyzing file text…",
	"analyze_failed":       "Sorry, I couldn't analyze that text. Please try again.",
	"unsupported_upload":   "I can't process this file type. Send audio (wav, mp3, m4a, ogg, oga, webm, flac, aac) or text (txt, md, srt, vtt).",
	"ui_lang_set_en":       "Interface language set to English.",
	"ui_lang_set_vi":       "Đã chuyển ngôn ngữ hiển thị sang Tiếng Việt.",
	"language_usage":       "Usage: /language <English|Vietnamese|en|vi>",
	"speechlang_usage":     "Usage: /speechlang <English|Vietnamese|en|vi|auto>",
	"speechlang_set_en":    "Speech recognition language set to English (en-US).",
	"speechlang_set_vi":    "Speech recognition language set to Vietnamese (vi).",
	"speechlang_set_auto":  "Language detection enabled for speech recognition.",
	"help_message": `Usage:
- Send a voice message, audio, or upload an audio file.
- I will process and reply with a text file.

Interface language:
/language <English|Vietnamese|en|vi> — set bot language

Speech recognition options:
/speechlang <English|Vietnamese|en|vi|auto> — set speech language
/status — show current language/model settings
/lang <code|auto> — set language (e.g. en-US, vi) or auto-detect
/detect <on|off> — toggle language detection
/model <name> — set model (e.g. nova-2). Leave blank to reset default.

Text Intelligence:
/analyze <text> — summarize, topics, intents, sentiment
/anstatus — show TI settings
/summarize <off|v2>
/topics <on|off>
/intents <on|off>
/sentiment <on|off>
/anlang <code> — TI language (e.g. en, vi)
Or upload a .txt/.md/.srt/.vtt file to analyze contents.`,
}

var vi = map[string]string{
	"start_message":        "Gửi cho tôi file âm thanh hoặc voice note, tôi sẽ trả về bản ghi (.txt).",
	"couldnt_download":     "Không tải được file.",
	"transcribing":         "Đang chuyển giọng nói thành văn bản…",
	"transcription_empty":  "Kết quả trống. Âm thanh quá nhỏ hoặc không hỗ trợ.",
	"transcription_ready":  "Bản ghi của bạn đây.",
	"transcribe_failed":    "Xin lỗi, tôi không thể chuyển âm thanh này.",
	"language_model_quirk": "Deepgram từ chối tổ hợp ngôn ngữ/mô hình này. Hãy thử /lang auto để bật tự phát hiện, hoặc chọn mô hình khác bằng /model.",
	"analyzing_text":       "Đang phân tích văn bản…",
	"analyzing_file":       "Đang phân tích nội dung file…",
	"analyze_failed":       "Xin lỗi, tôi không thể phân tích văn bản này. Vui lòng thử lại.",
	"unsupported_upload":   "Tôi không xử lý được loại file này. Gửi âm thanh (wav, mp3, m4a, ogg, oga, webm, flac, aac) hoặc văn bản (txt, md, srt, vtt).",
	"ui_lang_set_en":       "Đã chuyển ngôn ngữ hiển thị sang English.",
	"ui_lang_set_vi":       "Đã chuyển ngôn ngữ hiển thị sang Tiếng Việt.",
	"language_usage":       "Cú pháp: /language <English|Vietnamese|en|vi>",
	"speechlang_usage":     "Cú pháp: /speechlang <English|Vietnamese|en|vi|auto>",
	"speechlang_set_en":    "Đã đặt ngôn ngữ nhận dạng thành English (en-US).",
	"speechlang_set_vi":    "Đã đặt ngôn ngữ nhận dạng thành Tiếng Việt.",
	"speechlang_set_auto":  "Đã bật tự phát hiện ngôn ngữ cho nhận dạng giọng nói.",
	"help_message": `Cách dùng:
- Gửi voice, audio hoặc tải lên file âm thanh.
- Tôi sẽ xử lý và gửi lại file văn bản.

Ngôn ngữ giao diện:
/language <English|Vietnamese|en|vi> — đổi ngôn ngữ bot

Tùy chọn nhận dạng giọng nói:
/speechlang <English|Vietnamese|en|vi|auto> — đặt ngôn ngữ nhận dạng
/status — xem cài đặt ngôn ngữ/mô hình
/lang <code|auto> — đặt ngôn ngữ (vd: en-US, vi) hoặc tự động
/detect <on|off> — bật/tắt tự phát hiện ngôn ngữ
/model <name> — đặt mô hình (vd: nova-2). Bỏ trống để về mặc định.

Text Intelligence:
/analyze <text> — tóm tắt, chủ đề, ý định, cảm xúc
/anstatus — xem cài đặt TI
/summarize <off|v2>
/topics <on|off>
/intents <on|off>
/sentiment <on|off>
/anlang <code> — ngôn ngữ phân tích (vd: en, vi)
Hoặc tải lên file .txt/.md/.srt/.vtt để phân tích.`,
}

// Message returns the reply text for key in lang, falling back to English,
// then to the key itself.
func Message(lang, key string) string {
	if lang == "vi" {
		if msg, ok := vi[key]; ok {
			return msg
		}
	}
	if msg, ok := en[key]; ok {
		return msg
	}
	return key
}
