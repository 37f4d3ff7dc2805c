package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagamentos/config"
	"pagamentos/database"
	"pagamentos/middleware"
	"pagamentos/repository"
	"pagamentos/service"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return gormDB, mock
}

func initTestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })
	return cfg
}

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextEmail, "tester@example.com")
		c.Next()
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newAuthRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	cfg := initTestConfig(t)
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(cfg, service.NewAuthService(repository.NewUserRepository(db)))

	router := gin.New()
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/profile", middleware.JWTAuth(), h.GetProfile)
	return router
}

func TestAuthHandler_RegisterLoginProfile(t *testing.T) {
	router := newAuthRouter(t, setupTestDB(t))

	w := postJSON(router, "/register", `{"name":"Ana","email":"ana@example.com","password":"S3nha!forte"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, "User registered successfully!", resp["message"])
	user := resp["data"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", user["email"])
	assert.NotContains(t, w.Body.String(), "S3nha!forte")
	assert.NotContains(t, w.Body.String(), "password")

	// wrong password
	w = postJSON(router, "/login", `{"email":"ana@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", decode(t, w)["message"])

	w = postJSON(router, "/login", `{"email":"ana@example.com","password":"S3nha!forte"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)

	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, token, session.Value)

	// profile via cookie
	req := httptest.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.Name, Value: session.Value})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Ana", decode(t, w)["data"].(map[string]interface{})["name"])

	// logout expires the cookie
	w = postJSON(router, "/logout", "")
	assert.Equal(t, 200, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
		}
	}
}

func TestAuthHandler_RegisterRejects(t *testing.T) {
	router := newAuthRouter(t, setupTestDB(t))

	w := postJSON(router, "/register", `{"name":"Ana","email":"ana@example.com","password":"weakpass"}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, service.MsgWeakPassword, decode(t, w)["message"])

	w = postJSON(router, "/register", `{"name":"Ana","email":"ana@example.com","password":"S3nha!forte"}`)
	require.Equal(t, 200, w.Code)

	w = postJSON(router, "/register", `{"name":"Outra","email":"ana@example.com","password":"Outr@S3nha"}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, service.MsgEmailTaken, decode(t, w)["message"])

	// form-encoded, missing name
	form := url.Values{"email": {"b@example.com"}, "password": {"S3nha!forte"}}
	req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "The Name field is required.", resp["message"])
	assert.Equal(t, []interface{}{"The Name field is required."}, resp["data"].(map[string]interface{})["errors"])
}

func TestAuthHandler_ProfileRequiresSession(t *testing.T) {
	router := newAuthRouter(t, setupTestDB(t))

	req := httptest.NewRequest("GET", "/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid token for an account that no longer exists
	token, err := middleware.GenerateToken(404, "gone@example.com", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_StorageFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newAuthRouter(t, db)

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnError(assert.AnError)

	w := postJSON(router, "/login", `{"email":"ana@example.com","password":"S3nha!forte"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCookieOptions(t *testing.T) {
	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()

	secure, sameSite := getCookieOptions()
	assert.False(t, secure)
	assert.Equal(t, http.SameSiteLaxMode, sameSite)

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	secure, sameSite = getCookieOptions()
	assert.True(t, secure)
	assert.Equal(t, http.SameSiteLaxMode, sameSite)
}
