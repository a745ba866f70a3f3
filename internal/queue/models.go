package queue

import (
	"database/sql"
	"time"
)

// Record is one processed dump as stored in the database.
type Record struct {
	ID               int64
	RunID            string
	BasePath         string
	Media            string
	Complete         bool
	Missing          string
	Title            string
	Category         string
	Version          string
	Layerbreak       sql.NullInt64
	SizeBytes        int64
	VolumeDescriptor string
	ArtifactCount    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
