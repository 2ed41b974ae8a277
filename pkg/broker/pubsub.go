package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the JSON message format for live coordination channels.
type Envelope struct {
	Type     string         `json:"type"`
	SenderID string         `json:"sender_id"`
	Content  any            `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
	TS       float64        `json:"ts"`
}

// SwarmChannel derives the pub/sub channel name for a coordination domain.
func SwarmChannel(swarmID string) string {
	return "swarm:" + swarmID
}

// Publish sends an envelope on a channel. The timestamp is stamped here if
// the caller left it zero.
func (c *Client) Publish(ctx context.Context, channel string, env *Envelope) error {
	if env.TS == 0 {
		env.TS = float64(time.Now().UnixNano()) / float64(time.Second)
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	if err := c.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish on %s: %w", channel, err)
	}
	return nil
}

// Subscription delivers envelopes from one channel until closed.
type Subscription struct {
	ch     chan *Envelope
	cancel context.CancelFunc
}

// Envelopes returns the receive channel. It is closed when the subscription
// ends.
func (s *Subscription) Envelopes() <-chan *Envelope {
	return s.ch
}

// Close terminates the subscription.
func (s *Subscription) Close() {
	s.cancel()
}

// Subscribe starts listening on a channel. Malformed payloads are dropped.
func (c *Client) Subscribe(ctx context.Context, channel string) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	pubsub := c.rdb.Subscribe(ctx, channel)
	// Force the subscription to be established before returning.
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	sub := &Subscription{
		ch:     make(chan *Envelope, 16),
		cancel: cancel,
	}

	go func() {
		defer close(sub.ch)
		defer func() { _ = pubsub.Close() }()
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgs:
				if !ok {
					return
				}
				var env Envelope
				if err := json.Unmarshal([]byte(m.Payload), &env); err != nil {
					continue
				}
				select {
				case sub.ch <- &env:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return sub, nil
}
