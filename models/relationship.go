package models

import (
	"time"

	"github.com/google/uuid"
)

// RelationshipType classifies a directed edge between two artefacts.
type RelationshipType string

const (
	RelationshipTypeSupports       RelationshipType = "supports"
	RelationshipTypeUses           RelationshipType = "uses"
	RelationshipTypeDependsOn      RelationshipType = "depends_on"
	RelationshipTypeManages        RelationshipType = "manages"
	RelationshipTypeIntegratesWith RelationshipType = "integrates_with"
)

func (t RelationshipType) Valid() bool {
	switch t {
	case RelationshipTypeSupports, RelationshipTypeUses, RelationshipTypeDependsOn,
		RelationshipTypeManages, RelationshipTypeIntegratesWith:
		return true
	}
	return false
}

// Relationship is a directed, typed edge between two artefacts.
// SourceID and TargetID are weak references: the relationship does not own
// the artefacts it points at, they are resolved on read.
type Relationship struct {
	ID        uuid.UUID        `json:"id"`
	SourceID  uuid.UUID        `json:"sourceId"`
	TargetID  uuid.UUID        `json:"targetId"`
	Type      RelationshipType `json:"type"`
	Label     string           `json:"label"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Relationship model.
func (Relationship) TableName() string {
	return "relationships"
}

// ResolvedRelationship is a relationship with its endpoints looked up.
// Source or Target is nil when the referenced artefact no longer exists;
// such rows are still returned rather than faulting the read path.
type ResolvedRelationship struct {
	Relationship
	Source *Artefact `json:"source,omitempty"`
	Target *Artefact `json:"target,omitempty"`
}

// RelationshipFilter holds the optional list filters for relationships.
type RelationshipFilter struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
	Type     RelationshipType

	Pagination
}
