// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp  time.Time       `json:"timestamp"`
	ActorID    string          `json:"actor_id"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resource_id"`
	Success    bool            `json:"success"`
	Details    json.RawMessage `json:"details,omitempty"`
}
