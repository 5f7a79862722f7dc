package inspection

import (
	"math"
	"time"

	"asset-inspector/internal/models"

	"gorm.io/gorm"
)

type Stats struct {
	TotalAssets    int64 `json:"total_assets"`
	InspectedCount int64 `json:"inspected_count"` // активы хотя бы с одной учтённой записью
	CoveredCount   int64 `json:"covered_count"`   // next_inspection_date назначена и в будущем
	PendingCount   int64 `json:"pending_count"`

	// разбивка по последнему результату на актив
	NormalCount           int64 `json:"normal_count"`
	LocationMismatchCount int64 `json:"location_mismatch_count"`
	StatusAbnormalCount   int64 `json:"status_abnormal_count"`
	MissingCount          int64 `json:"missing_count"`

	InspectionRate float64 `json:"inspection_rate"` // % активов с учтённой записью
}

// ComputeStats пересчитывает сводку с нуля по текущему состоянию
// активов и журнала — никаких накопительных счётчиков, которые можно
// рассинхронизировать. Инвентаря мало, полный проход дешевле.
// campaignID сужает разбивку до записей одной кампании.
func ComputeStats(db *gorm.DB, today time.Time, campaignID *uint) (*Stats, error) {
	stats := &Stats{}

	if err := db.Model(&models.Asset{}).Count(&stats.TotalAssets).Error; err != nil {
		return nil, err
	}

	day := dateOnly(today)
	if err := db.Model(&models.Asset{}).
		Where("next_inspection_date IS NOT NULL AND next_inspection_date > ?", day).
		Count(&stats.CoveredCount).Error; err != nil {
		return nil, err
	}
	stats.PendingCount = stats.TotalAssets - stats.CoveredCount

	query := db.Model(&models.InventoryInspection{}).
		Order("inspection_date desc, id desc")
	if campaignID != nil {
		query = query.Where("campaign_id = ?", *campaignID)
	}

	var entries []models.InventoryInspection
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	// записи идут от свежих к старым: первая встреченная по активу — последняя по времени
	latest := make(map[uint]models.InspectionOutcome)
	for _, e := range entries {
		if _, seen := latest[e.AssetID]; seen {
			continue
		}
		latest[e.AssetID] = e.Status
	}

	stats.InspectedCount = int64(len(latest))
	for _, outcome := range latest {
		switch outcome {
		case models.OutcomeNormal:
			stats.NormalCount++
		case models.OutcomeLocationMismatch:
			stats.LocationMismatchCount++
		case models.OutcomeStatusAbnormal:
			stats.StatusAbnormalCount++
		case models.OutcomeMissing:
			stats.MissingCount++
		}
	}

	if stats.TotalAssets > 0 {
		rate := float64(stats.InspectedCount) / float64(stats.TotalAssets) * 100
		stats.InspectionRate = math.Round(rate*10) / 10
	}

	return stats, nil
}
