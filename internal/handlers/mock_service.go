package handlers

import (
	"context"

	"users_api/internal/models"
	"users_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseUsername string
	parseErr      error

	genCalls        int
	parseCalls      int
	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.genCalls++
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.parseCalls++
	m.lastParseToken = token
	return m.parseUsername, m.parseErr
}

type mockUsers struct {
	listResp  []models.User
	listErr   error
	getResp   []models.User
	getErr    error
	createErr error
	deleteErr error

	listCalls   int
	getCalls    int
	createCalls int
	deleteCalls int

	lastGetID          int
	lastDeleteID       int
	lastCreateUsername string
	lastCreateEmail    string
	lastCreatePassword string
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	m.listCalls++
	return m.listResp, m.listErr
}

func (m *mockUsers) GetByID(ctx context.Context, id int) ([]models.User, error) {
	m.getCalls++
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockUsers) Create(ctx context.Context, username, email, password string) error {
	m.createCalls++
	m.lastCreateUsername = username
	m.lastCreateEmail = email
	m.lastCreatePassword = password
	return m.createErr
}

func (m *mockUsers) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, "8080")
	return h.InitRoutes()
}
