// Package nexus fans community and private messages out to live
// subscribers. The Redis Streams broker carries delivery across
// instances; the in-process broker covers single-node and test runs.
package nexus

import (
	"encoding/json"
	"fmt"

	"waniyilo/models"
)

// Event kinds carried on the stream.
const (
	KindGlobal  = "global"
	KindPrivate = "private"
)

// Event is the wire envelope for one published message.
type Event struct {
	Kind    string                 `json:"kind"`
	Global  *models.NexusMessage   `json:"global,omitempty"`
	Private *models.PrivateMessage `json:"private,omitempty"`
}

// MarshalEvent encodes an event for the stream.
func MarshalEvent(event *Event) (string, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event: %w", err)
	}
	return string(b), nil
}

// UnmarshalEvent decodes a stream payload.
func UnmarshalEvent(data string) (*Event, error) {
	var event Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Kind == KindGlobal && event.Global == nil {
		return nil, fmt.Errorf("global event without payload")
	}
	if event.Kind == KindPrivate && event.Private == nil {
		return nil, fmt.Errorf("private event without payload")
	}
	return &event, nil
}
