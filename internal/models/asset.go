package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetStatusNormal   AssetStatus = "normal"    // в эксплуатации
	AssetStatusInRepair AssetStatus = "in_repair" // в ремонте
	AssetStatusDisposed AssetStatus = "disposed"  // списан
	AssetStatusMissing  AssetStatus = "missing"   // утерян
)

type Asset struct {
	gorm.Model

	AssetNumber  string `gorm:"size:50;uniqueIndex;not null"` // инвентарный номер, зашит в QR-код
	Name         string `gorm:"size:100;not null"`
	Category     string `gorm:"size:50"` // ПК, ноутбук, сетевое оборудование и т.п.
	Manufacturer string `gorm:"size:100"`
	ModelName    string `gorm:"size:100"`

	Status     AssetStatus `gorm:"type:varchar(20);not null;default:normal"`
	Location   string      `gorm:"size:100"`
	AssignedTo string      `gorm:"size:100"` // ответственный сотрудник

	PurchaseDate *time.Time
	Notes        string `gorm:"type:text"`

	// даты инвентаризации: двигает только движок инвентаризации
	LastInspectionDate *time.Time
	NextInspectionDate *time.Time
}
