package models

import (
	"time"

	"gorm.io/gorm"
)

type CampaignStatus string

const (
	CampaignPlanned   CampaignStatus = "planned"
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
)

// Кампания — именованное окно инвентаризации, группирует записи для отчётов.
type InspectionCampaign struct {
	gorm.Model

	Name        string         `gorm:"size:200;not null"`
	StartDate   time.Time      `gorm:"not null"`
	EndDate     time.Time      `gorm:"not null"`
	Description string         `gorm:"type:text"`
	Status      CampaignStatus `gorm:"type:varchar(20);not null;default:planned"`

	CreatedBy uint
	Creator   User `gorm:"foreignKey:CreatedBy"`

	CompletedAt *time.Time

	Inspections []InventoryInspection `gorm:"foreignKey:CampaignID"`
}

type InspectionOutcome string

const (
	OutcomeNormal           InspectionOutcome = "normal"
	OutcomeLocationMismatch InspectionOutcome = "location_mismatch"
	OutcomeStatusAbnormal   InspectionOutcome = "status_abnormal"
	OutcomeMissing          InspectionOutcome = "missing"
)

// ValidOutcome проверяет значение до обращения к БД.
func ValidOutcome(o InspectionOutcome) bool {
	switch o {
	case OutcomeNormal, OutcomeLocationMismatch, OutcomeStatusAbnormal, OutcomeMissing:
		return true
	}
	return false
}

// Запись журнала инвентаризации. Только добавление: записи никогда не
// правятся и не удаляются, исправление — это новая запись.
type InventoryInspection struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	CampaignID *uint
	Campaign   *InspectionCampaign

	AssetID uint `gorm:"not null;index"`
	Asset   Asset

	InspectionDate time.Time `gorm:"not null;index"`

	InspectorID   uint
	InspectorName string `gorm:"size:100;not null"`

	Status         InspectionOutcome `gorm:"type:varchar(20);not null;default:normal"`
	ActualLocation string            `gorm:"size:200"`
	ActualStatus   string            `gorm:"size:50"`
	ConditionNotes string            `gorm:"type:text"`
	PhotoURL       string            `gorm:"size:500"`
}
