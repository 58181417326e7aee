// AngelaMos | 2026
// handler_test.go

package contract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/gigbook/internal/authz"
	"github.com/angelamos/gigbook/internal/middleware"
)

type fakeEventRefs struct{}

func (fakeEventRefs) RefsByContract(
	_ context.Context,
	_ string,
) ([]string, error) {
	return nil, nil
}

func newTestRouter(svc *Service) chi.Router {
	handler := NewHandler(svc, fakeEventRefs{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r, func(next http.Handler) http.Handler {
		return next
	})

	return r
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, target, userID, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// A write against a disabled contract is a validation failure, not a
// conflict: 409 is reserved for uniqueness collisions like a taken
// username.
func TestUpdateDisabledContractReturnsValidationError(t *testing.T) {
	svc := newTestService()
	router := newTestRouter(svc)
	ctx := context.Background()
	manager := authz.Actor{UserID: "manager"}

	created, err := svc.Create(ctx, manager, createReq())
	require.NoError(t, err)

	_, err = svc.Disable(ctx, manager, created.ID, nil)
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPatch, "/contracts/"+created.ID,
		"manager", `{"name": "should not apply"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
}
