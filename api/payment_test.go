package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pagamentos/export"
	"pagamentos/repository"
	"pagamentos/service"
)

func newPaymentRouter(t *testing.T, db *gorm.DB, userID uint, mailer ReceiptMailer) *gin.Engine {
	initTestConfig(t)
	gin.SetMode(gin.TestMode)

	payments := service.NewPaymentService(repository.NewPaymentRepository(db))
	h := NewPaymentHandler(payments)
	eh := NewExportHandler(payments, export.NewReceiptRenderer(export.ReceiptOptions{}), mailer)

	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	router.POST("/payments", h.Create)
	router.GET("/payments", h.List)
	router.GET("/payments/export/excel", eh.ExportExcel)
	router.GET("/payments/:id", h.Get)
	router.PUT("/payments/:id", h.Update)
	router.DELETE("/payments/:id", h.Delete)
	router.GET("/payments/:id/receipt", eh.Receipt)
	router.POST("/payments/:id/receipt/email", eh.EmailReceipt)
	return router
}

func doJSON(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

const validPayment = `{"club":"Águias","church":"Central","region":"Norte","category":"Mensalidade","total":"600","december":"50"}`

func createPayment(t *testing.T, router http.Handler, body string) uint {
	w := doJSON(router, "POST", "/payments", body)
	require.Equal(t, 200, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	return uint(data["id"].(float64))
}

func TestPaymentHandler_Create(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)

	w := doJSON(router, "POST", "/payments", validPayment)
	require.Equal(t, 200, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Payment created successfully!", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Águias", data["club"])
	assert.Equal(t, "50", data["december"])
	assert.Equal(t, "", data["january"])

	// numbers are accepted as text
	id := createPayment(t, router, `{"club":"B","church":"C","region":"D","category":"E","total":150.50}`)
	assert.Equal(t, uint(2), id)
	data = decode(t, get(router, "/payments/2"))["data"].(map[string]interface{})
	assert.Equal(t, "150.50", data["total"])
}

func TestPaymentHandler_CreateForm(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)

	form := url.Values{
		"club": {"Águias"}, "church": {"Central"}, "region": {"Norte"},
		"category": {"Mensalidade"}, "total": {"600"}, "march": {"25"},
	}
	req := httptest.NewRequest("POST", "/payments", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "25", data["march"])
	assert.Equal(t, "Norte", data["region"])
}

func TestPaymentHandler_CreateValidation(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)

	w := doJSON(router, "POST", "/payments", `{"club":"A","total":""}`)
	assert.Equal(t, 400, w.Code)
	resp := decode(t, w)
	errs := resp["data"].(map[string]interface{})["errors"].([]interface{})
	assert.Equal(t, []interface{}{
		"The Church field is required.",
		"The Region field is required.",
		"The Category field is required.",
		"The Total field is required.",
	}, errs)

	// nothing was stored
	list := decode(t, get(router, "/payments"))["data"]
	assert.Empty(t, list)

	w = doJSON(router, "POST", "/payments", `{"club":{"nested":true}}`)
	assert.Equal(t, 400, w.Code)
	w = doJSON(router, "POST", "/payments", `{not json`)
	assert.Equal(t, 400, w.Code)
}

func TestPaymentHandler_ListAndSearch(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)
	createPayment(t, router, validPayment)
	createPayment(t, router, `{"club":"Leões","church":"Vila Nova","region":"Sul","category":"Evento","total":"90"}`)

	list := decode(t, get(router, "/payments"))["data"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, float64(1), list[0].(map[string]interface{})["id"])
	assert.Equal(t, float64(2), list[1].(map[string]interface{})["id"])

	list = decode(t, get(router, "/payments?term=NOVA"))["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Leões", list[0].(map[string]interface{})["club"])

	list = decode(t, get(router, "/payments?busca=mensal"))["data"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Águias", list[0].(map[string]interface{})["club"])

	// values are searched, field names are not
	list = decode(t, get(router, "/payments?term=600"))["data"].([]interface{})
	require.Len(t, list, 1)
	list = decode(t, get(router, "/payments?term=december"))["data"].([]interface{})
	assert.Empty(t, list)
}

func TestPaymentHandler_GetNotFound(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)

	for _, path := range []string{"/payments/99", "/payments/abc", "/payments/0"} {
		w := get(router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, "Payment not found.", decode(t, w)["message"])
	}
}

func TestPaymentHandler_Update(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)
	id := createPayment(t, router, validPayment)
	path := fmt.Sprintf("/payments/%d", id)

	w := doJSON(router, "PUT", path, `{"club":"A2","church":"C2","region":"R2","category":"K2","total":"700","january":"10"}`)
	require.Equal(t, 200, w.Code, w.Body.String())
	assert.Equal(t, "Payment updated successfully!", decode(t, w)["message"])

	data := decode(t, get(router, path))["data"].(map[string]interface{})
	assert.Equal(t, "A2", data["club"])
	assert.Equal(t, "10", data["january"])
	// omitted fields are cleared
	assert.Equal(t, "", data["december"])

	// invalid update leaves the record untouched
	w = doJSON(router, "PUT", path, `{"club":"X"}`)
	assert.Equal(t, 400, w.Code)
	data = decode(t, get(router, path))["data"].(map[string]interface{})
	assert.Equal(t, "A2", data["club"])

	// unknown id wins over validation
	w = doJSON(router, "PUT", "/payments/999", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_Delete(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 1, nil)
	id := createPayment(t, router, validPayment)
	path := fmt.Sprintf("/payments/%d", id)

	req := httptest.NewRequest("DELETE", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "Payment deleted successfully!", decode(t, w)["message"])

	assert.Equal(t, http.StatusNotFound, get(router, path).Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_RequiresActor(t *testing.T) {
	router := newPaymentRouter(t, setupTestDB(t), 0, nil)

	assert.Equal(t, http.StatusUnauthorized, get(router, "/payments").Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(router, "POST", "/payments", validPayment).Code)
}

func TestPaymentHandler_ListStorageFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	router := newPaymentRouter(t, db, 1, nil)

	mock.ExpectQuery("SELECT .* FROM `payments`").WillReturnError(assert.AnError)

	w := get(router, "/payments")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
