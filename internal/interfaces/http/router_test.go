package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gestao/internal/domain/customer"
	"gestao/internal/domain/plan"
	"gestao/internal/infrastructure/persistence/models"
	"gestao/internal/infrastructure/repository"
	"gestao/internal/shared/logger"
	"gestao/internal/shared/utils"
)

func setupTestRouter(t *testing.T) (*Router, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CustomerModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
	)
	require.NoError(t, err)

	log := logger.NewLogger()
	ctx := context.Background()

	c, err := customer.NewCustomer(1, "Ana Souza", "ana@example.com")
	require.NoError(t, err)
	require.NoError(t, repository.NewCustomerRepository(db, log).Save(ctx, c))

	p, err := plan.NewPlan(1, "Standard", 49.90, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "Most popular plan")
	require.NoError(t, err)
	require.NoError(t, repository.NewPlanRepository(db, log).Save(ctx, p))

	return NewRouter(db, "test"), db
}

func doJSON(t *testing.T, router *Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_ListCustomersAndPlans(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/gestao/clientes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	customers, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, customers, 1)

	rec = doJSON(t, router, http.MethodGet, "/gestao/planos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeResponse(t, rec)
	plans, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, plans, 1)
}

func TestRouter_CreateSubscription(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("valid request", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/gestao/assinaturas", map[string]interface{}{
			"customerCode": 1,
			"planCode":     1,
			"finalCost":    49.90,
			"description":  "Annual contract",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeResponse(t, rec)
		require.True(t, resp.Success)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), data["subscriptionCode"])
		assert.Equal(t, "ATIVO", data["status"])
	})

	t.Run("unknown customer", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/gestao/assinaturas", map[string]interface{}{
			"customerCode": 99,
			"planCode":     1,
			"finalCost":    49.90,
			"description":  "Annual contract",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/gestao/assinaturas", map[string]interface{}{
			"customerCode": 1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_ListSubscriptionsByType(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/gestao/assinaturas", map[string]interface{}{
		"customerCode": 1,
		"planCode":     1,
		"finalCost":    49.90,
		"description":  "Annual contract",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("ATIVOS lists the fresh subscription", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/gestao/assinaturas/ATIVOS", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		subs, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, subs, 1)
	})

	t.Run("CANCELADOS is empty", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/gestao/assinaturas/CANCELADOS", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		subs, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Empty(t, subs)
	})

	t.Run("invalid filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/gestao/assinaturas/EXPIRADOS", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("by customer and by plan", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/gestao/assinaturascliente/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		subs, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, subs, 1)

		rec = doJSON(t, router, http.MethodGet, "/gestao/assinaturasplano/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp = decodeResponse(t, rec)
		subs, ok = resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, subs, 1)
	})
}

func TestRouter_UpdatePlanCost(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("valid update", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/gestao/planos/1", map[string]interface{}{
			"monthlyCost": 39.90,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.InDelta(t, 39.90, data["monthlyCost"].(float64), 1e-9)
	})

	t.Run("unknown plan", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/gestao/planos/99", map[string]interface{}{
			"monthlyCost": 39.90,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid plan code parameter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/gestao/planos/abc", map[string]interface{}{
			"monthlyCost": 39.90,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_RegisterPayment(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/gestao/assinaturas", map[string]interface{}{
		"customerCode": 1,
		"planCode":     1,
		"finalCost":    49.90,
		"description":  "Annual contract",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid payment", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/gestao/pagamentos", map[string]interface{}{
			"subscriptionCode": 1,
			"amount":           49.90,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(1), data["paymentCode"])
		assert.Equal(t, "ATIVO", data["status"])
	})

	t.Run("unknown subscription", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/gestao/pagamentos", map[string]interface{}{
			"subscriptionCode": 99,
			"amount":           49.90,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
