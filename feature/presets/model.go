package presets

import (
	"encoding/json"
	"time"
)

// Preset is a named, reusable set of operator goals.
type Preset struct {
	Index   int             `json:"index"`
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload" swaggertype:"object"`
}

// Row is the presets table row.
type Row struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:64"`
	Index     int       `gorm:"column:idx;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;size:128;not null"`
	Payload   string    `gorm:"column:payload;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the presets table.
func (Row) TableName() string {
	return "presets"
}

func (r Row) toPreset() Preset {
	payload := json.RawMessage(r.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	return Preset{Index: r.Index, Name: r.Name, Payload: payload}
}
