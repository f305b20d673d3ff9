package render

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/tessella/tessella/pkg/pattern"
)

// Snapshot is a serializable copy of one generated pattern. The preview
// server takes a snapshot under its lock, so readers are unaffected by
// later regenerations of the same pattern instance.
type Snapshot struct {
	ID      string `json:"id"`
	Group   string `json:"group"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Seed    int64  `json:"seed"`
	Pattern string `json:"pattern"`
}

// NewSnapshot copies the pattern's current grid and metadata and assigns a
// fresh snapshot ID.
func NewSnapshot(p *pattern.Pattern) Snapshot {
	return Snapshot{
		ID:      uuid.NewString(),
		Group:   string(p.Group()),
		Width:   p.Width(),
		Height:  p.Height(),
		Seed:    p.Seed(),
		Pattern: Text(p.Rows()),
	}
}

// JSON marshals a snapshot for the preview endpoint.
func JSON(s Snapshot) ([]byte, error) {
	return json.Marshal(s)
}
