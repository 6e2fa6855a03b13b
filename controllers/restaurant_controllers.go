package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tablebook/tablebook/middlewares"
	"github.com/tablebook/tablebook/models"
	"github.com/tablebook/tablebook/services"
	"github.com/tablebook/tablebook/utils"
)

var (
	ErrRestaurantNotFound = errors.New("Restaurant not found")
	ErrSubdomainTaken     = errors.New("Subdomain already taken")
	ErrTableNumberTaken   = errors.New("Table number already in use")
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetBySubdomain -> restaurant with its floor plan, tables ordered by
// number for display.
func (rc *RestaurantController) GetBySubdomain(c *gin.Context) {
	subdomain := strings.ToLower(c.Param("subdomain"))

	var restaurant models.Restaurant
	err := rc.DB.Preload("Tables", func(db *gorm.DB) *gorm.DB {
		return db.Order("number ASC")
	}).Where("subdomain = ?", subdomain).First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// GetCurrentTenant -> the restaurant addressed by the request's
// subdomain, resolved by the tenant middleware from the Host header.
func (rc *RestaurantController) GetCurrentTenant(c *gin.Context) {
	restaurant, ok := middlewares.TenantFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	var withTables models.Restaurant
	err := rc.DB.Preload("Tables", func(db *gorm.DB) *gorm.DB {
		return db.Order("number ASC")
	}).First(&withTables, restaurant.ID).Error
	if err != nil {
		utils.RespondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, withTables)
}

// GetAllRestaurants -> full tenant list for admin tooling.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Order("subdomain ASC").Find(&restaurants).Error; err != nil {
		utils.RespondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

type createRestaurantRequest struct {
	Subdomain   string `json:"subdomain" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	MaxCapacity int    `json:"maxCapacity"`
}

// CreateRestaurant -> admin provisioning of a tenant. Restaurants are
// effectively immutable afterwards.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrMissingFields)
		return
	}

	restaurant := models.Restaurant{
		Subdomain:   strings.ToLower(strings.TrimSpace(req.Subdomain)),
		Name:        req.Name,
		Email:       req.Email,
		MaxCapacity: req.MaxCapacity,
	}
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusBadRequest, ErrSubdomainTaken)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant %q created (subdomain=%s)", restaurant.Name, restaurant.Subdomain)
	c.JSON(http.StatusCreated, restaurant)
}

type createTableRequest struct {
	Number   int     `json:"number" binding:"required"`
	Capacity int     `json:"capacity" binding:"required"`
	PhotoURL *string `json:"photoUrl"`
}

// CreateTable -> add a table to a restaurant's floor plan.
func (rc *RestaurantController) CreateTable(c *gin.Context) {
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, c.Param("restaurant_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	var req createTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrMissingFields)
		return
	}

	table := models.Table{
		RestaurantID: restaurant.ID,
		Number:       req.Number,
		Capacity:     req.Capacity,
		PhotoURL:     req.PhotoURL,
	}
	if err := rc.DB.Create(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondError(c, http.StatusBadRequest, ErrTableNumberTaken)
			return
		}
		utils.RespondInternal(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d (seats %d) added to %s", table.Number, table.Capacity, restaurant.Subdomain)
	c.JSON(http.StatusCreated, table)
}
