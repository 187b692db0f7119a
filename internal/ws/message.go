package ws

import (
	"encoding/json"
	"time"
)

type EventType string

// Server to client only; the feed is read-only.
const (
	EventTypePickMade         EventType = "PICK_MADE"
	EventTypeDraftCompleted   EventType = "DRAFT_COMPLETED"
	EventTypeScoresCalculated EventType = "SCORES_CALCULATED"
)

type Event struct {
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewEvent(eventType EventType, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// DecodePayload unmarshals the event payload into v.
func (e *Event) DecodePayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

type PickMadePayload struct {
	PickID     string `json:"pickId"`
	PickNumber int    `json:"pickNumber"`
	Round      int    `json:"round"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	Conference string `json:"conference"`
}

type DraftCompletedPayload struct {
	LeagueID   string `json:"leagueId"`
	TotalPicks int    `json:"totalPicks"`
}

type ScoresCalculatedPayload struct {
	LeagueID   string `json:"leagueId"`
	WeekNumber int    `json:"weekNumber"`
}
