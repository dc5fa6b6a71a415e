package types

// TextObject is the text part of a section block, Block Kit style.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Block is a single renderable block in a command reply.
type Block struct {
	Type string      `json:"type"`
	Text *TextObject `json:"text,omitempty"`
}

// CommandResponse is the JSON body returned for a slash command.
type CommandResponse struct {
	ResponseType string  `json:"response_type"`
	Blocks       []Block `json:"blocks"`
}

func SectionBlock(text string) Block {
	return Block{
		Type: "section",
		Text: &TextObject{
			Type: "mrkdwn",
			Text: text,
		},
	}
}

func DividerBlock() Block {
	return Block{Type: "divider"}
}
