package amqp

import (
	"encoding/json"
	"time"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// LedgerEventMessage announces that the ledger changed. It carries only the
// mutated record id and the operation; consumers read the current snapshot
// themselves.
type LedgerEventMessage struct {
	Op        string    `json:"op"`
	ID        string    `json:"id"`
	Records   int       `json:"records"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerEventMessage(op, id string, records int) *LedgerEventMessage {
	return &LedgerEventMessage{
		Op:        op,
		ID:        id,
		Records:   records,
		Timestamp: time.Now(),
	}
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
