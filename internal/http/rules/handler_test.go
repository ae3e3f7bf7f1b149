package rules_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarques/financo/internal/category"
	"github.com/dmarques/financo/internal/http/rules"
)

type stubStore struct {
	saveErr map[string]error
	saved   []string
	deleted []string
}

func (s *stubStore) SaveRule(_ context.Context, rule category.Rule) error {
	if err := s.saveErr[rule.ID]; err != nil {
		return err
	}

	s.saved = append(s.saved, rule.ID)

	return nil
}

func (s *stubStore) DeleteRule(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)

	return nil
}

func newRouter(t *testing.T, store *stubStore) (*category.Catalog, http.Handler) {
	t.Helper()

	catalog, err := category.NewCatalog()
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/rules", rules.NewHandler(catalog, store).Routes)

	return catalog, r
}

func TestHandler_Add(t *testing.T) {
	store := &stubStore{}
	catalog, router := newRouter(t, store)

	body := `{"id":"custom-pet","keywords":["petshop"],"category":"Pets","confidence":0.9,"priority":5}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rules", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"custom-pet"}, store.saved)
	require.Len(t, catalog.ExportRules(), 1)
}

func TestHandler_Add_StoreFailureRollsBackCatalog(t *testing.T) {
	store := &stubStore{saveErr: map[string]error{"custom-pet": errors.New("db down")}}
	catalog, router := newRouter(t, store)

	body := `{"id":"custom-pet","keywords":["petshop"],"category":"Pets"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rules", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// A rule that was never persisted must not keep matching until the
	// next restart.
	assert.Empty(t, catalog.ExportRules())
}

func TestHandler_Import_PartialFailureRollsBack(t *testing.T) {
	store := &stubStore{saveErr: map[string]error{"custom-b": errors.New("db down")}}
	catalog, router := newRouter(t, store)

	body := `[
		{"id":"custom-a","keywords":["padaria"],"category":"Alimentação"},
		{"id":"custom-b","keywords":["petshop"],"category":"Pets"}
	]`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rules/import", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, catalog.ExportRules())

	// The rule persisted before the failure is deleted again.
	assert.Equal(t, []string{"custom-a"}, store.saved)
	assert.Equal(t, []string{"custom-a"}, store.deleted)
}

func TestHandler_Remove_UnknownRule(t *testing.T) {
	store := &stubStore{}
	_, router := newRouter(t, store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/rules/custom-missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, store.deleted)
}
