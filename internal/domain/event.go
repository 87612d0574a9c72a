package domain

import (
	"time"

	"github.com/google/uuid"
)

type SketchEventKind string

const (
	SketchCreated SketchEventKind = "created"
	SketchUpdated SketchEventKind = "updated"
	SketchDeleted SketchEventKind = "deleted"
)

type SketchEvent struct {
	SketchID uuid.UUID       `json:"sketch_id"`
	OwnerID  uuid.UUID       `json:"owner_id"`
	Kind     SketchEventKind `json:"kind"`
	At       time.Time       `json:"at"`
}
