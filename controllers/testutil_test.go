package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/middlewares"
	"github.com/PamelaEduardaS/alimentador/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter wires the full route table against a fresh in-memory database.
// Each test gets its own named database so shared-cache connections within a
// test see the same data without leaking across tests.
func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	t.Setenv("ACTUATOR_URL", "")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	MigrateModels(db)
	assert.NoError(t, config.InitFeederSettings(db))

	r := gin.New()
	r.POST("/api/register", Register)
	r.POST("/api/login", Login)

	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/ws", HandleWebSocket)
	auth.GET("/profile", GetProfile)
	auth.GET("/food-level", GetFoodLevel)
	auth.POST("/food-level", RecordRefill)
	auth.POST("/feed", Feed)
	auth.GET("/history", GetHistory)
	auth.GET("/export-csv", ExportCSV)
	auth.POST("/schedules", CreateSchedule)
	auth.GET("/schedules", ListSchedules)
	auth.PUT("/schedules/:id", UpdateSchedule)
	auth.DELETE("/schedules/:id", DeleteSchedule)
	auth.GET("/feeder-config", GetFeederConfig)
	auth.PUT("/feeder-config", UpdateFeederConfig)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns a session token for it.
func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) string {
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	w := doJSON(t, r, "POST", "/api/register", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	body = fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	w = doJSON(t, r, "POST", "/api/login", body, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	return resp.Token
}

// seedLevel writes a reading directly so a test can start from a known level.
func seedLevel(t *testing.T, level int) {
	reading := models.FoodLevelReading{
		Level:      level,
		Source:     models.SourceSeed,
		RecordedAt: time.Now(),
	}
	assert.NoError(t, config.DB.Create(&reading).Error)
}
