package controllers

import (
	"fmt"
	"gin-tourbooking/constants"
	"gin-tourbooking/dto"
	"gin-tourbooking/services"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ITourController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	FindImages(ctx *gin.Context)
	UploadImage(ctx *gin.Context)
	FindSchedules(ctx *gin.Context)
	CreateSchedule(ctx *gin.Context)
}

type TourController struct {
	service   services.ITourService
	uploadDir string
}

func NewTourController(service services.ITourService, uploadDir string) ITourController {
	return &TourController{service: service, uploadDir: uploadDir}
}

func tourIDParam(ctx *gin.Context) (uint, bool) {
	tourID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrInvalidID})
		return 0, false
	}
	return uint(tourID), true
}

func (c *TourController) FindAll(ctx *gin.Context) {
	tours, err := c.service.FindAll(ctx.Query("q"))
	if err != nil {
		log.Printf("List tours error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, tours)
}

func (c *TourController) FindById(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	tour, err := c.service.FindById(tourID)
	if err != nil {
		if err.Error() == constants.ErrTourNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrTourNotFound})
			return
		}
		log.Printf("Tour detail error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, tour)
}

func (c *TourController) Create(ctx *gin.Context) {
	var input dto.CreateTourInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	newTour, err := c.service.Create(input)
	if err != nil {
		log.Printf("Create tour error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK, "id": newTour.ID})
}

func (c *TourController) Update(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	var input dto.UpdateTourInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	if _, err := c.service.Update(tourID, input); err != nil {
		if err.Error() == constants.ErrTourNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrTourNotFound})
			return
		}
		log.Printf("Update tour error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK})
}

func (c *TourController) Delete(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(tourID); err != nil {
		if err.Error() == constants.ErrTourNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrTourNotFound})
			return
		}
		log.Printf("Delete tour error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK})
}

func (c *TourController) FindImages(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	images, err := c.service.FindImages(tourID)
	if err != nil {
		log.Printf("Tour images error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, images)
}

func (c *TourController) UploadImage(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingImage})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.NewString() + ext

	if err := ctx.SaveUploadedFile(file, filepath.Join(c.uploadDir, filename)); err != nil {
		log.Printf("Save upload error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	imageURL := fmt.Sprintf("%s://%s/uploads/%s", scheme, ctx.Request.Host, filename)

	isPrimary := ctx.PostForm("isPrimary") == "1"
	image, err := c.service.AddImage(tourID, imageURL, isPrimary)
	if err != nil {
		if err.Error() == constants.ErrTourNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrTourNotFound})
			return
		}
		log.Printf("Add image error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK, "imageUrl": imageURL, "id": image.ID})
}

func (c *TourController) FindSchedules(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	schedules, err := c.service.FindSchedules(tourID)
	if err != nil {
		log.Printf("Tour schedules error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, schedules)
}

func (c *TourController) CreateSchedule(ctx *gin.Context) {
	tourID, ok := tourIDParam(ctx)
	if !ok {
		return
	}

	var input dto.CreateScheduleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": constants.ErrMissingFields})
		return
	}

	schedule, err := c.service.AddSchedule(tourID, input)
	if err != nil {
		if err.Error() == constants.ErrTourNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"message": constants.ErrTourNotFound})
			return
		}
		log.Printf("Create schedule error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgOK, "id": schedule.ID})
}
