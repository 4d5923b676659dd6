package controllers

import (
	"gin-tourbooking/constants"
	"gin-tourbooking/dto"
	"gin-tourbooking/services"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	ListUsers(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	err := c.service.Register(input.FullName, input.Email, input.Password)
	if err != nil {
		// Duplicate email keeps the storefront's 400, not 409
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrEmailExists})
			return
		}
		log.Printf("Register error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgRegistered})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	response, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if err.Error() == constants.ErrBadCredentials {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrBadCredentials})
			return
		}
		log.Printf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.service.ListUsers()
	if err != nil {
		log.Printf("List users error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}
