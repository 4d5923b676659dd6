package controllers

import (
	"bytes"
	"encoding/json"
	"gin-tourbooking/dto"
	"gin-tourbooking/middlewares"
	"gin-tourbooking/models"
	"gin-tourbooking/repositories"
	"gin-tourbooking/services"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRouter wires the real middleware chain and controllers over an
// in-memory database, mirroring the wiring in main.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Tour{},
		&models.TourImage{},
		&models.TourSchedule{},
		&models.Cart{},
		&models.CartItem{},
	))

	authService := services.NewAuthService(
		repositories.NewAuthRepository(db),
		"test-secret",
		map[string]bool{"admin@example.com": true},
	)
	authController := NewAuthController(authService)
	cartController := NewCartController(services.NewCartService(repositories.NewCartRepository(db)))
	tourController := NewTourController(services.NewTourService(repositories.NewTourRepository(db)), t.TempDir())

	authRequired := middlewares.AuthMiddleware(authService)
	adminRequired := middlewares.AdminRequired()

	r := gin.New()
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.GET("/users", authRequired, adminRequired, authController.ListUsers)

	tourRouter := r.Group("/tours")
	tourAdminRouter := r.Group("/tours", authRequired, adminRequired)
	tourRouter.GET("", tourController.FindAll)
	tourRouter.GET("/:id", tourController.FindById)
	tourRouter.GET("/:id/images", tourController.FindImages)
	tourRouter.GET("/:id/schedules", tourController.FindSchedules)
	tourAdminRouter.POST("", tourController.Create)
	tourAdminRouter.PUT("/:id", tourController.Update)
	tourAdminRouter.DELETE("/:id", tourController.Delete)
	tourAdminRouter.POST("/:id/images", tourController.UploadImage)
	tourAdminRouter.POST("/:id/schedules", tourController.CreateSchedule)

	cartRouter := r.Group("/cart", authRequired)
	cartRouter.GET("", cartController.GetCart)
	cartRouter.POST("/add", cartController.AddItem)
	cartRouter.DELETE("/remove/:tourId", cartController.RemoveItem)

	return r, db
}

func perform(r *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performUpload(r *gin.Engine, path string, token string, filename string, fields map[string]string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, _ := writer.CreateFormFile("image", filename)
		part.Write([]byte("fake image bytes"))
	}
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, fullName string, email string, password string) *dto.LoginResponse {
	t.Helper()

	w := perform(r, http.MethodPost, "/register", "", gin.H{
		"full_name": fullName,
		"email":     email,
		"password":  password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return &response
}
