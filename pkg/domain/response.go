package domain

type Response struct {
	ChatID           int64
	ReplyToMessageID int
	Text             string
	File             *File
	Err              error
}

type File struct {
	Name    string
	Caption string
	Data    []byte
}
