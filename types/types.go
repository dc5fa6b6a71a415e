package types

const (
	TypeWebsocketPing   = "ping"
	TypeWebsocketPong   = "pong"
	TypeWebsocketAsk    = "ask"
	TypeWebsocketAnswer = "answer"
	TypeWebsocketError  = "error"
)

type WebsocketRequest struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketAskPayload struct {
	Question string `json:"question"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type WebSocketAnswerResponse struct {
	Blocks []Block `json:"blocks"`
}

type WebSocketErrorResponse struct {
	Message string `json:"message"`
}

// CompletionConfig holds the fixed generation parameters for a completion
// provider. Values come from config at startup, not from the request.
type CompletionConfig struct {
	Model           string
	MaxOutputTokens int
	Temperature     float32
}
