package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"pagamentos/middleware"
	"pagamentos/models"
	"pagamentos/service"
)

const msgPaymentNotFound = "Payment not found."

// PaymentHandler payment CRUD and search
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler creates the payment handler
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// PaymentRequest payment fields. Every field is free text; an omitted field
// is stored empty.
type PaymentRequest struct {
	Club      string `json:"club" example:"Desbravadores Águias"`
	Church    string `json:"church" example:"Central"`
	Region    string `json:"region" example:"Norte"`
	Category  string `json:"category" example:"Mensalidade"`
	Total     string `json:"total" example:"600"`
	January   string `json:"january" example:"50"`
	February  string `json:"february"`
	March     string `json:"march"`
	April     string `json:"april"`
	May       string `json:"may"`
	June      string `json:"june"`
	July      string `json:"july"`
	August    string `json:"august"`
	September string `json:"september"`
	October   string `json:"october"`
	November  string `json:"november"`
	December  string `json:"december"`
}

// bindFields reads the field map from a JSON object or a urlencoded/multipart
// form. Unknown keys are dropped, JSON numbers are kept as their literal text
// and null becomes "".
func bindFields(c *gin.Context) (map[string]string, error) {
	fields := make(map[string]string)

	if c.ContentType() == binding.MIMEJSON {
		var raw map[string]interface{}
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		for key, v := range raw {
			if _, known := models.LookupField(key); !known {
				continue
			}
			switch val := v.(type) {
			case nil:
				fields[key] = ""
			case string:
				fields[key] = val
			case json.Number:
				fields[key] = val.String()
			default:
				return nil, fmt.Errorf("field %q must be a string", key)
			}
		}
		return fields, nil
	}

	for _, f := range models.PaymentFields {
		if v, ok := c.GetPostForm(f.Key); ok {
			fields[f.Key] = v
		}
	}
	return fields, nil
}

// paymentID parses the :id path segment; malformed ids are reported as absent.
func paymentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Create new payment
// @Summary Create payment
// @Description Creates a payment record. club, church, region, category and total are required.
// @Tags payments
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment fields"
// @Success 200 {object} Response{data=models.Payment} "Created"
// @Failure 400 {object} Response{data=ValidationErrors} "Validation failed"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	p, err := h.payments.Create(c.Request.Context(), middleware.CurrentActor(c), fields)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to create payment.")
		return
	}
	SuccessWithMessage(c, "Payment created successfully!", p)
}

// List payments, optionally filtered
// @Summary List or search payments
// @Description Lists every payment in ID order. With term (or busca) only records whose text fields contain it, case-insensitively.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param term query string false "Search term"
// @Param busca query string false "Search term (alias)"
// @Success 200 {object} Response{data=[]models.Payment} "Payments"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		term = c.Query("busca")
	}

	list, err := h.payments.Search(c.Request.Context(), middleware.CurrentActor(c), term)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to list payments.")
		return
	}
	Success(c, list)
}

// Get one payment
// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} Response{data=models.Payment} "Payment"
// @Failure 404 {object} Response "Not found"
// @Router /api/v1/payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		NotFound(c, msgPaymentNotFound)
		return
	}

	p, err := h.payments.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to load payment.")
		return
	}
	Success(c, p)
}

// Update overwrites a payment
// @Summary Update payment
// @Description Replaces every field of the payment. Omitted fields become empty.
// @Tags payments
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Payment fields"
// @Success 200 {object} Response{data=models.Payment} "Updated"
// @Failure 400 {object} Response{data=ValidationErrors} "Validation failed"
// @Failure 404 {object} Response "Not found"
// @Router /api/v1/payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		NotFound(c, msgPaymentNotFound)
		return
	}

	fields, err := bindFields(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	p, err := h.payments.Update(c.Request.Context(), middleware.CurrentActor(c), id, fields)
	if err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to update payment.")
		return
	}
	SuccessWithMessage(c, "Payment updated successfully!", p)
}

// Delete removes a payment
// @Summary Delete payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} Response "Not found"
// @Router /api/v1/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := paymentID(c)
	if !ok {
		NotFound(c, msgPaymentNotFound)
		return
	}

	if err := h.payments.Delete(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		respondError(c, err, msgPaymentNotFound, "Failed to delete payment.")
		return
	}
	SuccessWithMessage(c, "Payment deleted successfully!", nil)
}
