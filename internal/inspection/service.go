package inspection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-inspector/internal/models"

	"gorm.io/gorm"
)

// Через сколько дней после успешной инвентаризации актив снова попадает в план.
const ReinspectionPeriodDays = 180

// qrPrefix — служебный префикс, который мобильный сканер добавляет
// к инвентарному номеру в QR-коде.
const qrPrefix = "ASSET:"

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAlreadyInspected = errors.New("asset already inspected in current cycle")
	ErrValidation       = errors.New("validation failed")
)

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// NewServiceAt — сервис с фиксированными часами, для тестов.
func NewServiceAt(db *gorm.DB, now func() time.Time) *Service {
	return &Service{db: db, now: now}
}

// NormalizeAssetNumber срезает префикс сканера независимо от регистра.
// Номер без префикса проходит без изменений.
func NormalizeAssetNumber(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= len(qrPrefix) && strings.EqualFold(s[:len(qrPrefix)], qrPrefix) {
		s = s[len(qrPrefix):]
	}
	return s
}

type EligibilityResult struct {
	Asset              models.Asset
	Permitted          bool
	Reason             string
	LastOutcome        *models.InspectionOutcome
	LastInspection     *models.InventoryInspection
	NextInspectionDate *time.Time
}

// Eligibility — read-only проверка: можно ли сейчас записать
// инвентаризацию по активу. Состояние не меняет.
func (s *Service) Eligibility(assetKey string) (*EligibilityResult, error) {
	today := s.now()

	asset, err := s.findAsset(s.db, assetKey)
	if err != nil {
		return nil, err
	}

	last, err := s.latestEntry(s.db, asset.ID, today)
	if err != nil {
		return nil, err
	}

	verdict := Decide(today, asset.NextInspectionDate, toLastEntry(last))

	res := &EligibilityResult{
		Asset:              asset,
		Permitted:          verdict.Permitted,
		Reason:             verdict.Reason,
		NextInspectionDate: asset.NextInspectionDate,
	}
	if last != nil {
		res.LastOutcome = &last.Status
		res.LastInspection = last
	}
	return res, nil
}

type RecordRequest struct {
	AssetNumber    string
	Outcome        models.InspectionOutcome
	ActualLocation string
	ActualStatus   string
	ConditionNotes string
	PhotoURL       string
	CampaignID     *uint
	InspectorID    uint
	InspectorName  string
}

type RecordResult struct {
	Entry        models.InventoryInspection
	Reinspection bool // по активу уже были записи в журнале
}

// Record — запись инвентаризации. Проверка допуска и мутация состояния
// (вставка в журнал + обновление дат актива) идут одной транзакцией,
// причём допуск перепроверяется уже внутри транзакции: два параллельных
// скана одного актива не могут закоммитить по записи на один цикл.
func (s *Service) Record(req RecordRequest) (*RecordResult, error) {
	if !models.ValidOutcome(req.Outcome) {
		return nil, fmt.Errorf("%w: unknown outcome %q", ErrValidation, req.Outcome)
	}
	if req.InspectorName == "" {
		return nil, fmt.Errorf("%w: inspector name is required", ErrValidation)
	}

	now := s.now()
	today := dateOnly(now)

	var result RecordResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		asset, err := s.findAsset(tx, req.AssetNumber)
		if err != nil {
			return err
		}

		if req.CampaignID != nil {
			var campaign models.InspectionCampaign
			if err := tx.First(&campaign, *req.CampaignID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCampaignNotFound
				}
				return err
			}
		}

		last, err := s.latestEntry(tx, asset.ID, now)
		if err != nil {
			return err
		}

		verdict := Decide(now, asset.NextInspectionDate, toLastEntry(last))
		if !verdict.Permitted {
			return ErrAlreadyInspected
		}

		var prior int64
		if err := tx.Model(&models.InventoryInspection{}).
			Where("asset_id = ?", asset.ID).
			Count(&prior).Error; err != nil {
			return err
		}

		actualLocation := req.ActualLocation
		if actualLocation == "" {
			actualLocation = asset.Location
		}

		entry := models.InventoryInspection{
			CampaignID:     req.CampaignID,
			AssetID:        asset.ID,
			InspectionDate: now,
			InspectorID:    req.InspectorID,
			InspectorName:  req.InspectorName,
			Status:         req.Outcome,
			ActualLocation: actualLocation,
			ActualStatus:   req.ActualStatus,
			ConditionNotes: req.ConditionNotes,
			PhotoURL:       req.PhotoURL,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		next := today.AddDate(0, 0, ReinspectionPeriodDays)
		asset.LastInspectionDate = &today
		asset.NextInspectionDate = &next
		if req.Outcome == models.OutcomeNormal {
			asset.Status = models.AssetStatusNormal
		}
		if err := tx.Save(&asset).Error; err != nil {
			return err
		}

		result = RecordResult{Entry: entry, Reinspection: prior > 0}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) findAsset(tx *gorm.DB, assetKey string) (models.Asset, error) {
	var asset models.Asset
	number := NormalizeAssetNumber(assetKey)
	if err := tx.Where("asset_number = ?", number).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return asset, ErrAssetNotFound
		}
		return asset, err
	}
	return asset, nil
}

// latestEntry — свежайшая запись по активу в пределах окна текущего
// цикла; id решает ничью при равных датах.
func (s *Service) latestEntry(tx *gorm.DB, assetID uint, now time.Time) (*models.InventoryInspection, error) {
	windowStart := dateOnly(now).AddDate(0, 0, -ReinspectionPeriodDays)

	var entry models.InventoryInspection
	err := tx.
		Where("asset_id = ? AND inspection_date >= ?", assetID, windowStart).
		Order("inspection_date desc, id desc").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func toLastEntry(e *models.InventoryInspection) *LastEntry {
	if e == nil {
		return nil
	}
	return &LastEntry{Outcome: e.Status, Date: e.InspectionDate}
}
