//go:build e2e

package e2e

import (
	"net/http"

	"ootd-commerce/internal/domain/user"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/tests/common/authtest"
	"ootd-commerce/tests/common/dbtest"
	"ootd-commerce/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Actor is a logged-in fixture user.
type Actor struct {
	ID    uuid.UUID
	Token string
}

func (s *SharedSuite) Login(email string, role user.Role) Actor {
	id, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, string(role))
	return Actor{ID: id, Token: token}
}

// Seller logs in a seller and opens a store for it.
func (s *SharedSuite) Seller(email string) (Actor, uuid.UUID) {
	seller := s.Login(email, user.RoleSeller)
	storeID := dbtest.CreateTestStore(s.T(), s.DB, seller.ID, "store of "+email)
	return seller, storeID
}

func (s *SharedSuite) CreateListing(seller Actor, storeID uuid.UUID, body map[string]any) resdto.ListingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/"+storeID.String()+"/products", body, seller.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res resdto.ListingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *SharedSuite) GetProduct(productID uuid.UUID, token string) resdto.ProductResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.ProductResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *SharedSuite) GetOrder(orderID uuid.UUID, token string) resdto.OrderResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+orderID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

// OrderBody builds a place-order request for one unit of each product.
func OrderBody(couponID *uuid.UUID, lines ...map[string]any) map[string]any {
	body := map[string]any{"lines": lines}
	if couponID != nil {
		body["couponId"] = couponID.String()
	}
	return body
}

func Line(productID uuid.UUID, quantity int) map[string]any {
	return map[string]any{"productId": productID.String(), "quantity": quantity}
}
