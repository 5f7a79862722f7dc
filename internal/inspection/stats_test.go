package inspection

import (
	"testing"
	"time"

	"asset-inspector/internal/models"

	"gorm.io/gorm"
)

func seedEntry(t *testing.T, db *gorm.DB, assetID uint, campaignID *uint, at time.Time, outcome models.InspectionOutcome) {
	t.Helper()

	if err := db.Create(&models.InventoryInspection{
		AssetID:        assetID,
		CampaignID:     campaignID,
		InspectionDate: at,
		InspectorID:    1,
		InspectorName:  "Петров П.П.",
		Status:         outcome,
	}).Error; err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	db := testDB(t)

	stats, err := ComputeStats(db, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalAssets != 0 || stats.InspectionRate != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func TestComputeStats_LatestOutcomePerAsset(t *testing.T) {
	db := testDB(t)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	a1 := seedAsset(t, db, "S-1")
	a2 := seedAsset(t, db, "S-2")
	a3 := seedAsset(t, db, "S-3")
	seedAsset(t, db, "S-4") // без записей

	// a1: сначала missing, потом normal — в разбивке учитывается normal
	seedEntry(t, db, a1.ID, nil, today.Add(-48*time.Hour), models.OutcomeMissing)
	seedEntry(t, db, a1.ID, nil, today.Add(-2*time.Hour), models.OutcomeNormal)

	seedEntry(t, db, a2.ID, nil, today.Add(-time.Hour), models.OutcomeLocationMismatch)
	seedEntry(t, db, a3.ID, nil, today.Add(-time.Hour), models.OutcomeStatusAbnormal)

	// у a1 цикл закрыт, next в будущем; у остальных срок не назначен
	future := today.AddDate(0, 0, ReinspectionPeriodDays)
	if err := db.Model(&models.Asset{}).Where("id = ?", a1.ID).
		Update("next_inspection_date", future).Error; err != nil {
		t.Fatalf("failed to set next date: %v", err)
	}

	stats, err := ComputeStats(db, today, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalAssets != 4 {
		t.Errorf("expected 4 assets, got %d", stats.TotalAssets)
	}
	if stats.InspectedCount != 3 {
		t.Errorf("expected 3 inspected assets, got %d", stats.InspectedCount)
	}
	if stats.CoveredCount != 1 {
		t.Errorf("expected 1 covered asset, got %d", stats.CoveredCount)
	}
	if stats.PendingCount != 3 {
		t.Errorf("expected 3 pending assets, got %d", stats.PendingCount)
	}
	if stats.NormalCount != 1 {
		t.Errorf("expected 1 normal, got %d", stats.NormalCount)
	}
	if stats.LocationMismatchCount != 1 {
		t.Errorf("expected 1 location_mismatch, got %d", stats.LocationMismatchCount)
	}
	if stats.StatusAbnormalCount != 1 {
		t.Errorf("expected 1 status_abnormal, got %d", stats.StatusAbnormalCount)
	}
	if stats.MissingCount != 0 {
		t.Errorf("expected 0 missing (перекрыт повторной записью), got %d", stats.MissingCount)
	}
	if stats.InspectionRate != 75.0 {
		t.Errorf("expected inspection rate 75.0, got %v", stats.InspectionRate)
	}
}

func TestComputeStats_PastDueIsPending(t *testing.T) {
	db := testDB(t)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	asset := seedAsset(t, db, "S-10")
	past := today.AddDate(0, 0, -1)
	if err := db.Model(&models.Asset{}).Where("id = ?", asset.ID).
		Update("next_inspection_date", past).Error; err != nil {
		t.Fatalf("failed to set next date: %v", err)
	}

	stats, err := ComputeStats(db, today, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CoveredCount != 0 {
		t.Errorf("expected past-due asset to be pending, got covered=%d", stats.CoveredCount)
	}
	if stats.PendingCount != 1 {
		t.Errorf("expected 1 pending, got %d", stats.PendingCount)
	}
}

func TestComputeStats_CampaignFilter(t *testing.T) {
	db := testDB(t)
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	campaign := models.InspectionCampaign{
		Name:      "Кампания Q2",
		StartDate: today.AddDate(0, 0, -14),
		EndDate:   today.AddDate(0, 0, 14),
		Status:    models.CampaignActive,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}

	a1 := seedAsset(t, db, "S-20")
	a2 := seedAsset(t, db, "S-21")

	seedEntry(t, db, a1.ID, &campaign.ID, today.Add(-time.Hour), models.OutcomeNormal)
	seedEntry(t, db, a2.ID, nil, today.Add(-time.Hour), models.OutcomeMissing) // вне кампании

	stats, err := ComputeStats(db, today, &campaign.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.InspectedCount != 1 {
		t.Errorf("expected 1 inspected asset within campaign, got %d", stats.InspectedCount)
	}
	if stats.NormalCount != 1 || stats.MissingCount != 0 {
		t.Errorf("expected campaign breakdown normal=1 missing=0, got %+v", stats)
	}
}
