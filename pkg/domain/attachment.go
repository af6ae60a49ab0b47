package domain

type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentAudio
	AttachmentText
	AttachmentUnsupported
)

// Attachment is a classified Telegram upload, reduced to what the vendor
// request needs.
type Attachment struct {
	Kind     AttachmentKind
	FileID   string
	FileName string
	MimeType string
}
