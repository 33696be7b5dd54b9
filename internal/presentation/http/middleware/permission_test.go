package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/motorline/dealerdesk-api/internal/application/service"
	"github.com/motorline/dealerdesk-api/internal/domain/entity"
)

type memPermissionRepo struct {
	rows map[string]entity.MenuPermission
}

func (r *memPermissionRepo) GetByRole(_ context.Context, role string) (*entity.MenuPermission, error) {
	row, ok := r.rows[role]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memPermissionRepo) List(_ context.Context) ([]entity.MenuPermission, error) {
	var out []entity.MenuPermission
	for _, row := range r.rows {
		out = append(out, row)
	}
	return out, nil
}

func (r *memPermissionRepo) Upsert(_ context.Context, p *entity.MenuPermission) error {
	r.rows[p.Role] = *p
	return nil
}

func permissionRouter(repo *memPermissionRepo, role, path string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	perms := service.NewPermissionService(repo)

	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		if role != "" {
			c.Set("user_role", role)
		}
		c.Next()
	}, RequirePermission(perms, path), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequirePermissionGrantsLeaf(t *testing.T) {
	repo := &memPermissionRepo{rows: map[string]entity.MenuPermission{
		"staff": {Role: "staff", Permissions: []byte(`{"collections":{"sales":true,"deleted":false}}`)},
	}}

	w := httptest.NewRecorder()
	permissionRouter(repo, "staff", "collections.sales").ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionDeniesFalseLeaf(t *testing.T) {
	repo := &memPermissionRepo{rows: map[string]entity.MenuPermission{
		"staff": {Role: "staff", Permissions: []byte(`{"collections":{"sales":true,"deleted":false}}`)},
	}}

	w := httptest.NewRecorder()
	permissionRouter(repo, "staff", "collections.deleted").ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionDeniesRoleWithoutTree(t *testing.T) {
	repo := &memPermissionRepo{rows: map[string]entity.MenuPermission{}}

	w := httptest.NewRecorder()
	permissionRouter(repo, "staff", "dashboard").ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAdminBypass(t *testing.T) {
	repo := &memPermissionRepo{rows: map[string]entity.MenuPermission{}}

	w := httptest.NewRecorder()
	permissionRouter(repo, "admin", "collections.deleted").ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionMissingRoleContext(t *testing.T) {
	repo := &memPermissionRepo{rows: map[string]entity.MenuPermission{}}

	w := httptest.NewRecorder()
	permissionRouter(repo, "", "dashboard").ServeHTTP(w, httptest.NewRequest("GET", "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
