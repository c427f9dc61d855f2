package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/granjasoft/avicola-tracker/internal/dashboard"
	api "github.com/granjasoft/avicola-tracker/internal/http"
	handler "github.com/granjasoft/avicola-tracker/internal/http/handlers"
	"github.com/granjasoft/avicola-tracker/internal/models"
	"github.com/granjasoft/avicola-tracker/internal/repo"
)

var (
	token      string
	batchRepo  *repo.InMemoryBatchRepository
	recordRepo *repo.InMemoryRecordRepository
	userRepo   *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret1")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret1")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	batchRepo = repo.NewInMemoryBatchRepository()
	handler.SetBatchRepo(batchRepo)

	recordRepo = repo.NewInMemoryRecordRepository()
	handler.SetRecordRepo(recordRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	handler.SetRecordSchema(models.SchemaGraded)
	handler.SetDashboardService(dashboard.NewService(batchRepo, recordRepo, nil, dashboard.DefaultAggregatorConfig()))
}

func clearAllBatches() {
	batchRepo.Clear()
	recordRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createBatch(r http.Handler, b handler.BatchRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(b)
	req := httptest.NewRequest(http.MethodPost, "/batches", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createRecord(r http.Handler, rec handler.RecordRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(rec)
	req := httptest.NewRequest(http.MethodPost, "/records", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authorizedGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func todayAt(h int) time.Time   { return startOfToday().Add(time.Duration(h) * time.Hour) }
func daysAgo(n int) time.Time   { return startOfToday().AddDate(0, 0, -n) }
