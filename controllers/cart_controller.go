package controllers

import (
	"gin-tourbooking/constants"
	"gin-tourbooking/dto"
	"gin-tourbooking/models"
	"gin-tourbooking/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ICartController interface {
	GetCart(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func currentIdentity(ctx *gin.Context) (*models.Identity, bool) {
	value, exists := ctx.Get("identity")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrNotLoggedIn})
		return nil, false
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": constants.ErrNotLoggedIn})
		return nil, false
	}
	return identity, true
}

func (c *CartController) GetCart(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	lines, err := c.service.GetCart(identity.ID)
	if err != nil {
		log.Printf("Get cart error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, lines)
}

func (c *CartController) AddItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	var input dto.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidInput})
		return
	}

	if err := c.service.AddItem(identity.ID, input.TourID); err != nil {
		log.Printf("Add cart item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	identity, ok := currentIdentity(ctx)
	if !ok {
		return
	}

	tourID, err := strconv.ParseUint(ctx.Param("tourId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return
	}

	hadCart, err := c.service.RemoveItem(identity.ID, uint(tourID))
	if err != nil {
		log.Printf("Remove cart item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	// No cart yet means nothing to remove; still a success
	if !hadCart {
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK})
}
