package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/drankou/go-sentiment/vader"
)

// ScoreRequest is the payload of a scoring request, over NATS or HTTP.
type ScoreRequest struct {
	Text string `json:"text"`
}

// ScoreResponse carries the polarity of one text. ID is fresh per response.
type ScoreResponse struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Polarity vader.Polarity `json:"polarity"`
}

// Scorer is what the worker needs from an analyzer.
type Scorer interface {
	Score(text string) vader.Polarity
}

// NewScoreResponse scores text and wraps the result with a new id.
func NewScoreResponse(scorer Scorer, text string) ScoreResponse {
	return ScoreResponse{
		ID:       uuid.NewString(),
		Text:     text,
		Polarity: scorer.Score(text),
	}
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.Name("vader"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

// Serve answers every request on subject with the polarity of its text.
// Requests that cannot be decoded get no reply.
func (c *Client) Serve(subject string, scorer Scorer) error {
	handler := NewHandler(scorer, c.logger)
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		reply, err := handler.HandleRequest(msg.Data)
		if err != nil {
			c.logger.Warn("dropping score request", "subject", msg.Subject, "error", err)
			return
		}
		if msg.Reply == "" {
			return
		}
		if err := msg.Respond(reply); err != nil {
			c.logger.Warn("failed to respond", "subject", msg.Subject, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
