package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ELIUD25/empire/internal/api/v1/user"
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Transaction{})
	if err := db.AutoMigrate(&models.User{}, &models.Transaction{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func TestActivate(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	seed := func(balance float64, activated, banned bool) models.User {
		u := models.User{
			Name:         "Member",
			Email:        "member@example.com",
			Password:     "hashedpassword",
			Role:         "user",
			Balance:      balance,
			IsActivated:  activated,
			IsBanned:     banned,
			ReferralCode: "EM00H001",
			ReferralLink: "https://empire-eosin.vercel.app/register?ref=EM00H001",
		}
		database.DB.Create(&u)
		return u
	}

	tests := []struct {
		name           string
		balance        float64
		activated      bool
		banned         bool
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Success",
			balance:        500,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var resp struct {
					Code int               `json:"status"`
					Data user.UserResponse `json:"data"`
				}
				err := json.Unmarshal(body, &resp)
				assert.NoError(t, err)
				assert.Equal(t, 200, resp.Code)
				assert.True(t, resp.Data.IsActivated)
				assert.Equal(t, 0.0, resp.Data.Balance)
				assert.NotNil(t, resp.Data.ActivatedAt)
			},
		},
		{
			name:           "Insufficient Balance",
			balance:        499,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "insufficient balance")
			},
		},
		{
			name:           "Already Activated",
			balance:        1000,
			activated:      true,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "already activated")
			},
		},
		{
			name:           "Banned Account",
			balance:        1000,
			banned:         true,
			expectedStatus: http.StatusForbidden,
			checkResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "banned")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database.DB.Exec("DELETE FROM users")
			database.DB.Exec("DELETE FROM transactions")
			seeded := seed(tt.balance, tt.activated, tt.banned)

			r := gin.New()
			// Mock the auth middleware
			r.Use(func(c *gin.Context) {
				c.Set("user", seeded)
				c.Next()
			})
			r.PUT("/users/activate", user.Activate)

			req, _ := http.NewRequest(http.MethodPut, "/users/activate", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.checkResponse(t, w.Body.Bytes())
		})
	}
}
