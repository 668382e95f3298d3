package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rajabpour4097/businessmanagement/internal/config"
	transport "github.com/rajabpour4097/businessmanagement/internal/http"
	"github.com/rajabpour4097/businessmanagement/internal/http/middleware"
	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
	"github.com/rajabpour4097/businessmanagement/internal/services"
	"github.com/rajabpour4097/businessmanagement/internal/token"
)

// memUserStore backs the router tests so no database is needed.
type memUserStore struct {
	users map[string]*models.User
}

func (m *memUserStore) add(username, password, role string, active bool) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Role:         role,
		IsActive:     active,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.users[user.ID] = user
	return user
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUserStore) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserStore) Create(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, repo.ErrDuplicateUsername
		}
	}
	created := *user
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = time.Now()
	m.users[created.ID] = &created
	copied := created
	return &copied, nil
}

func (m *memUserStore) Update(_ context.Context, user *models.User) error {
	existing, ok := m.users[user.ID]
	if !ok {
		return repo.ErrNotFound
	}
	existing.Email = user.Email
	existing.FullName = user.FullName
	existing.PhoneNumber = user.PhoneNumber
	existing.Role = user.Role
	existing.IsActive = user.IsActive
	return nil
}

func (m *memUserStore) UpdateProfile(_ context.Context, id, email, fullName, phoneNumber string) error {
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Email = email
	u.FullName = fullName
	u.PhoneNumber = phoneNumber
	return nil
}

func (m *memUserStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// newRecordDB opens an in-memory sqlite database with the record tables
// created by hand, mirroring the column names the postgres migrations
// define.
func newRecordDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			account_number TEXT NOT NULL UNIQUE,
			balance REAL NOT NULL DEFAULT 0,
			is_active NUMERIC NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			description TEXT,
			unit_price REAL NOT NULL DEFAULT 0,
			quantity INTEGER NOT NULL DEFAULT 0,
			minimum_stock INTEGER NOT NULL DEFAULT 0,
			category TEXT,
			is_active NUMERIC NOT NULL DEFAULT 1,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			assigned_to_id TEXT NOT NULL,
			created_by_id TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'pending',
			due_date DATETIME NOT NULL,
			completed_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE overdue_accounts (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			overdue_amount REAL NOT NULL,
			due_date DATETIME NOT NULL,
			contact_info TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE discrepancies (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			amount REAL NOT NULL,
			account_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_by_id TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE follow_ups (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			customer_name TEXT NOT NULL,
			follow_up_date DATETIME NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_by_id TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE payable_checks (
			id TEXT PRIMARY KEY,
			check_number TEXT NOT NULL,
			amount REAL NOT NULL,
			payee TEXT NOT NULL,
			due_date DATETIME NOT NULL,
			bank_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'issued',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE receivable_checks (
			id TEXT PRIMARY KEY,
			check_number TEXT NOT NULL,
			amount REAL NOT NULL,
			payer TEXT NOT NULL,
			due_date DATETIME NOT NULL,
			bank_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'received',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE ongoing_debts (
			id TEXT PRIMARY KEY,
			creditor_name TEXT NOT NULL,
			amount REAL NOT NULL,
			description TEXT NOT NULL,
			due_date DATETIME NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE inventory_transactions (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			transaction_type TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL,
			description TEXT,
			reference_number TEXT,
			created_by_id TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

type testServer struct {
	router *gin.Engine
	store  *memUserStore
	admin  *models.User
	clerk  *models.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Env:            "dev",
		AllowedOrigins: []string{"http://localhost:5173"},
		PasswordMinLen: 4,
	}

	store := &memUserStore{users: make(map[string]*models.User)}
	admin := store.add("admin", "admin123", "management", true)
	clerk := store.add("accountant", "acc123", "accounting", true)

	db := newRecordDB(t)
	tokens := token.NewManager("test-secret", 15*time.Minute, 24*time.Hour, repo.NewRevocationRepo(client))
	authService := services.NewAuthService(store, tokens, cfg)
	userService := services.NewUserService(store, cfg)

	router := transport.NewRouter(transport.Dependencies{
		Config:           cfg,
		Tokens:           tokens,
		AuthService:      authService,
		UserService:      userService,
		AccountService:   services.NewAccountService(repo.NewAccountRepo(db)),
		ProductService:   services.NewProductService(repo.NewProductRepo(db)),
		TaskService:      services.NewTaskService(repo.NewTaskRepo(db)),
		FinanceService:   services.NewFinanceService(repo.NewFinanceRepo(db)),
		InventoryService: services.NewInventoryService(repo.NewInventoryTxRepo(db)),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		RateLimiter:      middleware.NewRateLimiter(1000),
	})

	return &testServer{router: router, store: store, admin: admin, clerk: clerk}
}

func (ts *testServer) do(t *testing.T, method, path, accessToken string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T, username, password string) services.LoginResponse {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp services.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginLogoutRefreshFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.login(t, "admin", "admin123")
	assert.Equal(t, "management", resp.User.Role)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)

	rec := ts.do(t, http.MethodGet, "/api/v1/profile", resp.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/logout", "", gin.H{"refresh": resp.Refresh})
	require.Equal(t, http.StatusOK, rec.Code)

	// Logging out again with the same token is still a success.
	rec = ts.do(t, http.MethodPost, "/api/v1/auth/logout", "", gin.H{"refresh": resp.Refresh})
	require.Equal(t, http.StatusOK, rec.Code)

	// The access token issued alongside stays valid until it expires.
	rec = ts.do(t, http.MethodGet, "/api/v1/profile", resp.Access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The revoked refresh token can no longer be exchanged.
	rec = ts.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh": resp.Refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_BLACKLISTED", errorCode(t, rec))
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
}

func TestRefresh_ValidToken(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.login(t, "admin", "admin123")

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh": resp.Refresh})
	require.Equal(t, http.StatusOK, rec.Code)

	var pair token.Pair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	rec = ts.do(t, http.MethodGet, "/api/v1/profile", pair.Access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	rec = ts.do(t, http.MethodGet, "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserRoster_RoleGates(t *testing.T) {
	ts := newTestServer(t)
	adminSession := ts.login(t, "admin", "admin123")
	clerkSession := ts.login(t, "accountant", "acc123")

	t.Run("management sees the full roster", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/users", adminSession.Access, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 2)
	})

	t.Run("accounting gets an empty roster, not an error", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/users", clerkSession.Access, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Data)
	})

	t.Run("accounting cannot see another user's detail", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/users/"+ts.admin.ID, clerkSession.Access, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("accounting cannot mutate the roster", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/users", clerkSession.Access, gin.H{
			"username": "intruder",
			"password": "secret1",
			"role":     "accounting",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

		rec = ts.do(t, http.MethodDelete, "/api/v1/users/"+ts.admin.ID, clerkSession.Access, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUserAdministration(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "admin", "admin123")

	rec := ts.do(t, http.MethodPost, "/api/v1/users", session.Access, gin.H{
		"username":  "newclerk",
		"password":  "secret1",
		"full_name": "New Clerk",
		"role":      "accounting",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		IsActive bool   `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "newclerk", created.Username)
	assert.True(t, created.IsActive)

	rec = ts.do(t, http.MethodPost, "/api/v1/users", session.Access, gin.H{
		"username": "newclerk",
		"password": "secret1",
		"role":     "accounting",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_USERNAME", errorCode(t, rec))

	rec = ts.do(t, http.MethodPut, "/api/v1/users/"+created.ID, session.Access, gin.H{
		"full_name": "Renamed Clerk",
		"role":      "accounting",
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodDelete, "/api/v1/users/"+created.ID, session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/users/"+created.ID, session.Access, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChangePasswordEndpoint(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "accountant", "acc123")

	rec := ts.do(t, http.MethodPost, "/api/v1/change-password", session.Access, gin.H{
		"old_password":     "wrong",
		"new_password":     "fresh123",
		"confirm_password": "fresh123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))

	rec = ts.do(t, http.MethodPost, "/api/v1/change-password", session.Access, gin.H{
		"old_password":     "acc123",
		"new_password":     "fresh123",
		"confirm_password": "fresh123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "accountant",
		"password": "acc123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.login(t, "accountant", "fresh123")
}

func TestRecordEndpoints_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/v1/accounts",
		"/api/v1/products",
		"/api/v1/tasks",
		"/api/v1/financial/summary",
		"/api/v1/inventory/transactions",
	} {
		rec := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	}
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "admin", "admin123")

	rec := ts.do(t, http.MethodPost, "/api/v1/accounts", session.Access, gin.H{
		"name":           "Petty Cash",
		"account_number": "1010",
		"balance":        250.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	rec = ts.do(t, http.MethodPost, "/api/v1/accounts", session.Access, gin.H{
		"name":           "Other Name",
		"account_number": "1010",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", errorCode(t, rec))

	rec = ts.do(t, http.MethodGet, "/api/v1/accounts", session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Data []models.Account `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.Meta.Total)
	require.Len(t, listing.Data, 1)

	rec = ts.do(t, http.MethodPut, "/api/v1/accounts/"+created.ID, session.Access, gin.H{
		"name":      "Renamed Cash",
		"balance":   75,
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/accounts/"+created.ID, session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Renamed Cash", got.Name)
	assert.False(t, got.IsActive)

	rec = ts.do(t, http.MethodDelete, "/api/v1/accounts/"+created.ID, session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/accounts/"+created.ID, session.Access, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

// The record surface is shared: accounting and management both get
// through the capability gate.
func TestRecordEndpoints_BothRolesPass(t *testing.T) {
	ts := newTestServer(t)
	adminSession := ts.login(t, "admin", "admin123")
	clerkSession := ts.login(t, "accountant", "acc123")

	rec := ts.do(t, http.MethodPost, "/api/v1/products", clerkSession.Access, gin.H{
		"name":       "Widget",
		"code":       "W-1",
		"unit_price": 10,
		"quantity":   20,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	for _, access := range []string{clerkSession.Access, adminSession.Access} {
		rec = ts.do(t, http.MethodGet, "/api/v1/products", access, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var listing struct {
			Data []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
		assert.Len(t, listing.Data, 1)
	}

	rec = ts.do(t, http.MethodGet, "/api/v1/accounts", adminSession.Access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInventoryMovementOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "accountant", "acc123")

	rec := ts.do(t, http.MethodPost, "/api/v1/products", session.Access, gin.H{
		"name":       "Widget",
		"code":       "W-1",
		"unit_price": 10,
		"quantity":   10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	rec = ts.do(t, http.MethodPost, "/api/v1/inventory/transactions", session.Access, gin.H{
		"product_id":       product.ID,
		"transaction_type": "in",
		"quantity":         5,
		"unit_price":       10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tx struct {
		ID          string  `json:"id"`
		CreatedByID string  `json:"created_by_id"`
		TotalAmount float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
	assert.Equal(t, ts.clerk.ID, tx.CreatedByID)
	assert.InDelta(t, 50, tx.TotalAmount, 0.001)

	rec = ts.do(t, http.MethodGet, "/api/v1/products/"+product.ID, session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var restocked models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restocked))
	assert.Equal(t, 15, restocked.Quantity)
}

func TestFinancialSummaryOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "accountant", "acc123")

	rec := ts.do(t, http.MethodPost, "/api/v1/accounts", session.Access, gin.H{
		"name":           "Petty Cash",
		"account_number": "1010",
		"balance":        500,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var account models.Account
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &account))

	rec = ts.do(t, http.MethodPost, "/api/v1/overdue-accounts", session.Access, gin.H{
		"account_id":     account.ID,
		"customer_name":  "Karimi Trading",
		"overdue_amount": 250,
		"due_date":       "2026-08-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/financial/summary", session.Access, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.FinancialSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.EqualValues(t, 1, summary.TotalAccounts)
	assert.InDelta(t, 500, summary.TotalBalance, 0.001)
	assert.EqualValues(t, 1, summary.OverdueAccountsCount)
	assert.InDelta(t, 250, summary.OverdueAmount, 0.001)
}

func TestProfileUpdate(t *testing.T) {
	ts := newTestServer(t)
	session := ts.login(t, "accountant", "acc123")

	rec := ts.do(t, http.MethodPut, "/api/v1/profile", session.Access, gin.H{
		"email":     "clerk@example.com",
		"full_name": "Updated Name",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload services.UserPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "clerk@example.com", payload.Email)
	assert.Equal(t, "Updated Name", payload.FullName)
	assert.Equal(t, "accountant", payload.Username)
}
