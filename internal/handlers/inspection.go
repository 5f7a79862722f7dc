package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"asset-inspector/internal/database"
	"asset-inspector/internal/inspection"
	"asset-inspector/internal/middleware"
	"asset-inspector/internal/models"

	"github.com/gin-gonic/gin"
)

// СКАНИРОВАНИЕ QR — ПРОВЕРКА ДОПУСКА

func ScanAsset(c *gin.Context) {
	svc := inspection.NewService(database.DB)

	res, err := svc.Eligibility(c.Param("asset_number"))
	if err != nil {
		if errors.Is(err, inspection.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Актив не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка проверки допуска"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset":                res.Asset,
		"permitted":            res.Permitted,
		"reason":               res.Reason,
		"last_outcome":         res.LastOutcome,
		"last_inspection":      res.LastInspection,
		"next_inspection_date": res.NextInspectionDate,
	})
}

// СКАНИРОВАНИЕ QR — ЗАПИСЬ ИНВЕНТАРИЗАЦИИ

type scanForm struct {
	AssetNumber    string `json:"asset_number" binding:"required"`
	Status         string `json:"status" binding:"required"`
	ActualLocation string `json:"actual_location"`
	ActualStatus   string `json:"actual_status"`
	ConditionNotes string `json:"condition_notes"`
	PhotoURL       string `json:"photo_url"`
	CampaignID     *uint  `json:"campaign_id"`
}

func RecordInspection(c *gin.Context) {
	var form scanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Требуется вход в систему"})
		return
	}

	svc := inspection.NewService(database.DB)
	res, err := svc.Record(inspection.RecordRequest{
		AssetNumber:    form.AssetNumber,
		Outcome:        models.InspectionOutcome(form.Status),
		ActualLocation: form.ActualLocation,
		ActualStatus:   form.ActualStatus,
		ConditionNotes: form.ConditionNotes,
		PhotoURL:       form.PhotoURL,
		CampaignID:     form.CampaignID,
		InspectorID:    user.ID,
		InspectorName:  user.DisplayName(),
	})
	if err != nil {
		switch {
		case errors.Is(err, inspection.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый результат инвентаризации"})
		case errors.Is(err, inspection.ErrAssetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Актив не найден"})
		case errors.Is(err, inspection.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Кампания не найдена"})
		case errors.Is(err, inspection.ErrAlreadyInspected):
			c.JSON(http.StatusConflict, gin.H{"error": "Актив уже проверен в текущем цикле"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка записи инвентаризации"})
		}
		return
	}

	database.CreateAuditLog(user.ID, "inspection", res.Entry.ID, "create",
		fmt.Sprintf("Инвентаризация актива %s: %s", form.AssetNumber, form.Status))

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Инвентаризация записана",
		"inspection":      res.Entry,
		"is_reinspection": res.Reinspection,
	})
}

// СПИСОК ЗАПИСЕЙ ЖУРНАЛА

func ListInspections(c *gin.Context) {
	query := database.DB.Preload("Asset").
		Order("inspection_date desc, id desc")

	if v := c.Query("campaign_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный campaign_id"})
			return
		}
		query = query.Where("campaign_id = ?", uint(id))
	}
	if v := c.Query("asset_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный asset_id"})
			return
		}
		query = query.Where("asset_id = ?", uint(id))
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	var entries []models.InventoryInspection
	if err := query.Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения журнала"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// СТАТИСТИКА ИНВЕНТАРИЗАЦИИ

func InspectionStats(c *gin.Context) {
	var campaignID *uint
	if v := c.Query("campaign_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный campaign_id"})
			return
		}
		cid := uint(id)
		campaignID = &cid
	}

	stats, err := inspection.ComputeStats(database.DB, time.Now(), campaignID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка расчёта статистики"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
