package dto

import "time"

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"notblank,max=255"`
	Content string `json:"content" validate:"notblank"`
}

type NoteResponse struct {
	Id      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Notes  int64  `json:"notes"`
}

// NoteEventMessage is the JSON body carried on the note events topic.
type NoteEventMessage struct {
	Id         string                 `json:"id"`
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
