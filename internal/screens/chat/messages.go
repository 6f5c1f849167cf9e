package chat

// chatResponseMsg is sent when a chat generation request succeeds.
type chatResponseMsg struct {
	Epoch int64
	Text  string
}

// chatFailedMsg is sent when a chat generation request fails.
type chatFailedMsg struct {
	Epoch int64
	Err   error
}
