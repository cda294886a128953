package financial_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ELIUD25/empire/internal/api/v1/admin/financial"
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	tables := []interface{}{&models.User{}, &models.Transaction{}, &models.DepositRequest{}}
	db.Migrator().DropTable(tables...)
	if err := db.AutoMigrate(tables...); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func newAdminRouter() *gin.Engine {
	r := gin.New()
	// Mock the admin middleware
	r.Use(func(c *gin.Context) {
		c.Set("user", models.User{ID: 1, Name: "Administrator", Role: "admin"})
		c.Next()
	})
	r.PUT("/admin/financial/deposits/:id/approve", financial.ApproveDeposit)
	r.PUT("/admin/financial/deposits/:id/reject", financial.RejectDeposit)
	return r
}

func TestApproveDepositEndpoint(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	member := models.User{
		Name: "Member", Email: "member@example.com", Password: "x",
		Role: "user", ReferralCode: "EM00AD01", ReferralLink: "link",
	}
	database.DB.Create(&member)
	deposit := models.DepositRequest{
		UserID: member.ID, UserName: member.Name,
		Amount: 250, MpesaMessage: "QJ999 Confirmed", Status: models.StatusPending,
	}
	database.DB.Create(&deposit)

	r := newAdminRouter()
	target := "/admin/financial/deposits/" + strconv.Itoa(int(deposit.ID)) + "/approve"

	req, _ := http.NewRequest(http.MethodPut, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var refreshed models.User
	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 250.0, refreshed.Balance)

	var entry models.Transaction
	database.DB.Last(&entry)
	assert.Equal(t, "Administrator", entry.Operator)
	assert.Equal(t, uint(1), entry.OperatorID)

	// A replayed approval is a client error, not a double credit
	req2, _ := http.NewRequest(http.MethodPut, target, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusBadRequest, w2.Code)
	assert.Contains(t, w2.Body.String(), "already been processed")

	database.DB.First(&refreshed, member.ID)
	assert.Equal(t, 250.0, refreshed.Balance)
}

func TestModerateDepositNotFound(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	r := newAdminRouter()

	req, _ := http.NewRequest(http.MethodPut, "/admin/financial/deposits/999/approve", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req, _ = http.NewRequest(http.MethodPut, "/admin/financial/deposits/abc/reject", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
