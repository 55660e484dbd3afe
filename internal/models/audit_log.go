package models

import "time"

type AuditLog struct {
	Actor     string         `bson:"actor,omitempty" json:"actor,omitempty"`
	Role      string         `bson:"role,omitempty" json:"role,omitempty"`
	Action    string         `bson:"action" json:"action"`
	Entity    string         `bson:"entity" json:"entity"`
	EntityID  string         `bson:"entityId,omitempty" json:"entityId,omitempty"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
