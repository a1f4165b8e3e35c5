package events

import (
	"encoding/json"
	"time"

	"github.com/fystack/builder-client/pkg/builder"
)

const (
	EventTypeBid     = "bid"
	EventTypeAuction = "auction"
)

// Event is the envelope published for every builder interaction.
type Event struct {
	Type      string `json:"type"`
	ChainID   string `json:"chain_id"`
	Height    uint64 `json:"height"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type Emitter interface {
	EmitBid(chainID string, height uint64, res *builder.BidResult, err error) error
	EmitAuction(chainID string, height uint64, res *builder.AuctionResult, err error) error
	Emit(event Event) error
}

type emitter struct {
	publisher     Publisher
	subjectPrefix string
	now           func() time.Time
}

func NewEmitter(publisher Publisher, subjectPrefix string) Emitter {
	return &emitter{
		publisher:     publisher,
		subjectPrefix: subjectPrefix,
		now:           time.Now,
	}
}

func (e *emitter) EmitBid(chainID string, height uint64, res *builder.BidResult, err error) error {
	ev := Event{Type: EventTypeBid, ChainID: chainID, Height: height}
	if res != nil {
		ev.Data = res
	}
	if err != nil {
		ev.Error = err.Error()
	}
	return e.Emit(ev)
}

func (e *emitter) EmitAuction(chainID string, height uint64, res *builder.AuctionResult, err error) error {
	ev := Event{Type: EventTypeAuction, ChainID: chainID, Height: height}
	if res != nil {
		ev.Data = res
	}
	if err != nil {
		ev.Error = err.Error()
	}
	return e.Emit(ev)
}

// Emit publishes event on <prefix>.<type>.
func (e *emitter) Emit(event Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = e.now().UTC().Unix()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.publisher.Publish(e.subjectPrefix+"."+event.Type, data)
}
