package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tracklite/task-tracker-api/internal/auth"
	"github.com/tracklite/task-tracker-api/internal/constants"
	"github.com/tracklite/task-tracker-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Shared fixtures for the handler test suites.

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	gin.SetMode(gin.TestMode)
	return db
}

func closeTestDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Role: models.RoleAdmin, Email: "admin@example.com"}
}

func employeeClaims(employeeID uint64) *auth.Claims {
	return &auth.Claims{UserID: 2, Role: models.RoleEmployee, EmployeeID: &employeeID}
}

func testTokenIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

// newCallerContext builds a test context carrying the given verified
// claims, the way RequireAuth would after token verification.
func newCallerContext(method, url string, body []byte, claims *auth.Claims) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if claims != nil {
		c.Set(constants.ContextKeyCaller, claims)
	}

	return c, w
}
