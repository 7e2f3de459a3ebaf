package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtefactType classifies a catalogued enterprise-architecture element.
type ArtefactType string

const (
	ArtefactTypeBusiness    ArtefactType = "business"
	ArtefactTypeData        ArtefactType = "data"
	ArtefactTypeApplication ArtefactType = "application"
	ArtefactTypeTechnology  ArtefactType = "technology"
	ArtefactTypeSecurity    ArtefactType = "security"
	ArtefactTypeIntegration ArtefactType = "integration"
)

// Valid reports whether t is one of the known artefact types.
func (t ArtefactType) Valid() bool {
	switch t {
	case ArtefactTypeBusiness, ArtefactTypeData, ArtefactTypeApplication,
		ArtefactTypeTechnology, ArtefactTypeSecurity, ArtefactTypeIntegration:
		return true
	}
	return false
}

// ArtefactStatus is the lifecycle state of an artefact.
type ArtefactStatus string

const (
	ArtefactStatusActive     ArtefactStatus = "active"
	ArtefactStatusDraft      ArtefactStatus = "draft"
	ArtefactStatusDeprecated ArtefactStatus = "deprecated"
	ArtefactStatusPlanned    ArtefactStatus = "planned"
)

func (s ArtefactStatus) Valid() bool {
	switch s {
	case ArtefactStatusActive, ArtefactStatusDraft, ArtefactStatusDeprecated, ArtefactStatusPlanned:
		return true
	}
	return false
}

// RiskLevel is the assessed risk of an artefact.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
	RiskLevelNone   RiskLevel = "none"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevelHigh, RiskLevelMedium, RiskLevelLow, RiskLevelNone:
		return true
	}
	return false
}

// UsageFrequency describes how often an artefact is used.
type UsageFrequency string

const (
	UsageFrequencyHigh   UsageFrequency = "high"
	UsageFrequencyMedium UsageFrequency = "medium"
	UsageFrequencyLow    UsageFrequency = "low"
)

func (u UsageFrequency) Valid() bool {
	switch u {
	case UsageFrequencyHigh, UsageFrequencyMedium, UsageFrequencyLow:
		return true
	}
	return false
}

// Artefact is a catalogued enterprise-architecture element: a business
// process, application, data asset, technology component, security control
// or integration.
//
// Dependencies and Dependents are advisory counters supplied by the caller.
// They are not derived from the relationship graph and may drift from it.
type Artefact struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	NameTh         string         `json:"nameTh"`
	Type           ArtefactType   `json:"type"`
	Description    string         `json:"description"`
	Owner          string         `json:"owner"`
	Department     string         `json:"department"`
	Status         ArtefactStatus `json:"status"`
	RiskLevel      RiskLevel      `json:"riskLevel"`
	Version        string         `json:"version"`
	UsageFrequency UsageFrequency `json:"usageFrequency"`
	Dependencies   int            `json:"dependencies"`
	Dependents     int            `json:"dependents"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Artefact model.
func (Artefact) TableName() string {
	return "artefacts"
}

// ArtefactUpdate is a partial update of an artefact. Nil fields are left
// unchanged.
type ArtefactUpdate struct {
	Name           *string         `json:"name"`
	NameTh         *string         `json:"nameTh"`
	Type           *ArtefactType   `json:"type"`
	Description    *string         `json:"description"`
	Owner          *string         `json:"owner"`
	Department     *string         `json:"department"`
	Status         *ArtefactStatus `json:"status"`
	RiskLevel      *RiskLevel      `json:"riskLevel"`
	Version        *string         `json:"version"`
	UsageFrequency *UsageFrequency `json:"usageFrequency"`
	Dependencies   *int            `json:"dependencies"`
	Dependents     *int            `json:"dependents"`
}

// Empty reports whether the update carries no fields at all.
func (u ArtefactUpdate) Empty() bool {
	return u.Name == nil && u.NameTh == nil && u.Type == nil &&
		u.Description == nil && u.Owner == nil && u.Department == nil &&
		u.Status == nil && u.RiskLevel == nil && u.Version == nil &&
		u.UsageFrequency == nil && u.Dependencies == nil && u.Dependents == nil
}

// ArtefactFilter holds the optional list filters for artefacts.
// Provided fields are ANDed together; Search matches name, nameTh,
// description and owner as a case-insensitive substring.
type ArtefactFilter struct {
	Type       ArtefactType
	Status     ArtefactStatus
	RiskLevel  RiskLevel
	Department string
	Search     string

	Pagination
}

// ArtefactStats is the dashboard summary: the total artefact count and
// per-type, per-risk and per-status breakdowns. Groups with no artefacts
// are omitted.
type ArtefactStats struct {
	Total    int64         `json:"total"`
	ByType   []TypeCount   `json:"byType"`
	ByRisk   []RiskCount   `json:"byRisk"`
	ByStatus []StatusCount `json:"byStatus"`
}

type TypeCount struct {
	Type  ArtefactType `json:"type"`
	Count int64        `json:"count"`
}

type RiskCount struct {
	RiskLevel RiskLevel `json:"riskLevel"`
	Count     int64     `json:"count"`
}

type StatusCount struct {
	Status ArtefactStatus `json:"status"`
	Count  int64          `json:"count"`
}
