package hermes

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// Handler turns raw request payloads into encoded responses. It holds no
// connection so it can be driven without a NATS server.
type Handler struct {
	scorer Scorer
	logger *slog.Logger
}

func NewHandler(scorer Scorer, logger *slog.Logger) *Handler {
	return &Handler{scorer: scorer, logger: logger}
}

func (h *Handler) HandleRequest(data []byte) ([]byte, error) {
	var req ScoreRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	resp := NewScoreResponse(h.scorer, req.Text)
	h.logger.Debug("scored", "id", resp.ID, "compound", resp.Polarity.Compound)

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}
	return payload, nil
}
