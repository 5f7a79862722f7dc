package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"asset-inspector/internal/database"
	"asset-inspector/internal/middleware"
	"asset-inspector/internal/models"

	"github.com/gin-gonic/gin"
)

// КАМПАНИИ ИНВЕНТАРИЗАЦИИ

type campaignForm struct {
	Name        string `json:"name" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
}

func CreateCampaign(c *gin.Context) {
	var form campaignForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	start, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата начала"})
		return
	}
	end, err := time.Parse("2006-01-02", form.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата окончания"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Дата окончания раньше даты начала"})
		return
	}

	user, _ := middleware.CurrentUser(c)

	campaign := models.InspectionCampaign{
		Name:        form.Name,
		StartDate:   start,
		EndDate:     end,
		Description: form.Description,
		Status:      models.CampaignPlanned,
		CreatedBy:   user.ID,
	}

	if err := database.DB.Create(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения кампании"})
		return
	}

	database.CreateAuditLog(user.ID, "campaign", campaign.ID, "create",
		"Создана кампания инвентаризации: "+campaign.Name)

	c.JSON(http.StatusCreated, campaign)
}

func ListCampaigns(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	var campaigns []models.InspectionCampaign
	if err := database.DB.
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&campaigns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения кампаний"})
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func GetCampaign(c *gin.Context) {
	var campaign models.InspectionCampaign
	if err := database.DB.
		Preload("Inspections").
		Preload("Inspections.Asset").
		First(&campaign, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Кампания не найдена"})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// СМЕНА СТАТУСА КАМПАНИИ

type campaignStatusForm struct {
	Status string `json:"status" binding:"required"`
}

// переходы только вперёд: planned -> active -> completed
var campaignTransitions = map[models.CampaignStatus]models.CampaignStatus{
	models.CampaignPlanned: models.CampaignActive,
	models.CampaignActive:  models.CampaignCompleted,
}

func UpdateCampaignStatus(c *gin.Context) {
	var form campaignStatusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	var campaign models.InspectionCampaign
	if err := database.DB.First(&campaign, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Кампания не найдена"})
		return
	}

	target := models.CampaignStatus(form.Status)
	if campaignTransitions[campaign.Status] != target {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Недопустимый переход: %s -> %s", campaign.Status, target),
		})
		return
	}

	campaign.Status = target
	if target == models.CampaignCompleted {
		now := time.Now()
		campaign.CompletedAt = &now
	}

	if err := database.DB.Save(&campaign).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения кампании"})
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(user.ID, "campaign", campaign.ID, "status_change",
			"Кампания "+campaign.Name+" переведена в статус "+string(target))
	}

	c.JSON(http.StatusOK, campaign)
}
