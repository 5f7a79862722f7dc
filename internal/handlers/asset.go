package handlers

import (
	"net/http"
	"strings"
	"time"

	"asset-inspector/internal/database"
	"asset-inspector/internal/middleware"
	"asset-inspector/internal/models"

	"github.com/gin-gonic/gin"
)

// КАТАЛОГ АКТИВОВ

func ListAssets(c *gin.Context) {
	query := database.DB.Order("asset_number asc")

	if v := c.Query("status"); v != "" {
		query = query.Where("status = ?", v)
	}
	if v := c.Query("category"); v != "" {
		query = query.Where("category = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + v + "%"
		query = query.Where("asset_number LIKE ? OR name LIKE ? OR location LIKE ?", like, like, like)
	}

	var assets []models.Asset
	if err := query.Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения активов"})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func GetAsset(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Актив не найден"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

type assetForm struct {
	AssetNumber  string `json:"asset_number" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	ModelName    string `json:"model_name"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	AssignedTo   string `json:"assigned_to"`
	PurchaseDate string `json:"purchase_date"` // YYYY-MM-DD
	Notes        string `json:"notes"`

	LastInspectionDate string `json:"last_inspection_date"`
	NextInspectionDate string `json:"next_inspection_date"`
}

func CreateAsset(c *gin.Context) {
	var form assetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	asset := models.Asset{
		AssetNumber:  strings.TrimSpace(form.AssetNumber),
		Name:         strings.TrimSpace(form.Name),
		Category:     form.Category,
		Manufacturer: form.Manufacturer,
		ModelName:    form.ModelName,
		Status:       models.AssetStatusNormal,
		Location:     form.Location,
		AssignedTo:   form.AssignedTo,
		Notes:        form.Notes,
	}

	if asset.AssetNumber == "" || asset.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Инвентарный номер и название обязательны"})
		return
	}

	if form.Status != "" {
		asset.Status = models.AssetStatus(form.Status)
	}
	if form.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", form.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата покупки"})
			return
		}
		asset.PurchaseDate = &d
	}

	var count int64
	database.DB.Model(&models.Asset{}).
		Where("asset_number = ?", asset.AssetNumber).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Актив с таким инвентарным номером уже есть"})
		return
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения актива"})
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(user.ID, "asset", asset.ID, "create", "Создан актив: "+asset.AssetNumber)
	}

	c.JSON(http.StatusCreated, asset)
}

func UpdateAsset(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Актив не найден"})
		return
	}

	var form assetForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
		return
	}

	number := strings.TrimSpace(form.AssetNumber)
	name := strings.TrimSpace(form.Name)
	if number == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Инвентарный номер и название обязательны"})
		return
	}

	if number != asset.AssetNumber {
		var count int64
		database.DB.Model(&models.Asset{}).
			Where("asset_number = ? AND id <> ?", number, asset.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Актив с таким инвентарным номером уже есть"})
			return
		}
	}

	asset.AssetNumber = number
	asset.Name = name
	asset.Category = form.Category
	asset.Manufacturer = form.Manufacturer
	asset.ModelName = form.ModelName
	asset.Location = form.Location
	asset.AssignedTo = form.AssignedTo
	asset.Notes = form.Notes

	if form.Status != "" {
		asset.Status = models.AssetStatus(form.Status)
	}
	if form.PurchaseDate != "" {
		d, err := time.Parse("2006-01-02", form.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата покупки"})
			return
		}
		asset.PurchaseDate = &d
	}

	// даты инвентаризации можно задать вручную, но next не раньше last
	if form.LastInspectionDate != "" {
		d, err := time.Parse("2006-01-02", form.LastInspectionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата последней инвентаризации"})
			return
		}
		asset.LastInspectionDate = &d
	}
	if form.NextInspectionDate != "" {
		d, err := time.Parse("2006-01-02", form.NextInspectionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректная дата следующей инвентаризации"})
			return
		}
		asset.NextInspectionDate = &d
	}
	if asset.LastInspectionDate != nil && asset.NextInspectionDate != nil &&
		asset.NextInspectionDate.Before(*asset.LastInspectionDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Дата следующей инвентаризации раньше последней"})
		return
	}

	if err := database.DB.Save(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения актива"})
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(user.ID, "asset", asset.ID, "update", "Изменён актив: "+asset.AssetNumber)
	}

	c.JSON(http.StatusOK, asset)
}

func DeleteAsset(c *gin.Context) {
	var asset models.Asset
	if err := database.DB.First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Актив не найден"})
		return
	}

	if err := database.DB.Delete(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления актива"})
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(user.ID, "asset", asset.ID, "delete", "Удалён актив: "+asset.AssetNumber)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Актив удалён"})
}
