package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is implemented by all persisted resources.
type Model interface {
	// Self is the human readable name of the resource, used in errors.
	Self() string
}

// DefaultModel holds the ID and timestamps shared by all resources with a
// UUID primary key.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps are set by gorm.
type Timestamps struct {
	CreatedAt time.Time       `json:"createdAt" example:"2026-03-02T19:28:44.491514Z"`                                             // Time the resource was created
	UpdatedAt time.Time       `json:"updatedAt" example:"2026-03-17T20:14:01.048145Z"`                                             // Last time the resource was updated
	DeletedAt *gorm.DeletedAt `json:"deletedAt" gorm:"index" example:"2026-03-22T21:01:05.058161Z" swaggertype:"primitive,string"` // Time the resource was marked as deleted
}

// utc converts all timestamps to UTC. Databases return them in the local
// zone of the connection.
func (t *Timestamps) utc() {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()

	if t.DeletedAt != nil {
		t.DeletedAt.Time = t.DeletedAt.Time.UTC()
	}
}

func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.utc()
	return nil
}

// BeforeCreate assigns a new UUID unless one is set already.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
