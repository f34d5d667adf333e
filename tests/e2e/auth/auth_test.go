//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"ootd-commerce/internal/domain/user"
	"ootd-commerce/internal/handler/dto/request"
	resdto "ootd-commerce/internal/handler/dto/response"
	"ootd-commerce/internal/pkg/cookie"
	"ootd-commerce/tests/common/authtest"
	"ootd-commerce/tests/common/dbtest"
	"ootd-commerce/tests/common/httptest"
	"ootd-commerce/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "buyer@example.com", string(user.RoleBuyer))
	dbtest.CreateTestUser(s.T(), s.DB, "seller@example.com", string(user.RoleSeller))
	inactiveID := dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleBuyer))

	// 非アクティブユーザーを作成
	dbtest.DeactivateUser(s.T(), s.DB, inactiveID)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		description    string
	}{
		{
			name:           "購入者として登録",
			body:           map[string]any{"email": "new@example.com", "password": "password123"},
			expectedStatus: http.StatusCreated,
			description:    "ロール省略時は購入者として登録されること",
		},
		{
			name:           "出品者として登録",
			body:           map[string]any{"email": "shop@example.com", "password": "password123", "role": "seller"},
			expectedStatus: http.StatusCreated,
			description:    "出品者ロールを選択できること",
		},
		{
			name:           "管理者ロールは選択不可",
			body:           map[string]any{"email": "root@example.com", "password": "password123", "role": "admin"},
			expectedStatus: http.StatusBadRequest,
			description:    "登録時に管理者ロールは選べないこと",
		},
		{
			name:           "登録済みのメールアドレス",
			body:           map[string]any{"email": "buyer@example.com", "password": "password123"},
			expectedStatus: http.StatusConflict,
			description:    "メールアドレスの重複は拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			body:           map[string]any{"email": "short@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.CreatedResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEqual(t, "", res.ID.String())

				// 登録したユーザーでログインできること
				authtest.LoginUser(t, s.Router, tt.body["email"].(string), tt.body["password"].(string))
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "buyer@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "buyer@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// 成功時のレスポンス形式チェック
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName), "リフレッシュトークンのCookieがない")

				// last_loginが更新されることを確認
				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Cookieのリフレッシュトークンで更新", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "buyer@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, cookie.RefreshTokenCookieName)
		require.NotNil(t, refreshCookie)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.TokenResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken, "新しいアクセストークンが空")
	})

	s.Run("無効なリフレッシュトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, "無効なリフレッシュトークンは拒否されること")
	})

	s.Run("アクセストークンはリフレッシュに使えない", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "buyer@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "トークン種別が違えば拒否されること")
	})

	s.Run("リフレッシュトークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, request.RefreshRequest{}, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, "空のリフレッシュトークンは拒否されること")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "buyer@example.com", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code, "トークンなしでログアウトできないこと")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "出品者ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				token := authtest.LoginUser(s.T(), s.Router, "seller@example.com", dbtest.DefaultPassword)
				return "seller@example.com", string(user.RoleSeller), token
			},
			expectedStatus: http.StatusOK,
			description:    "出品者ユーザーの情報が取得できること",
		},
		{
			name: "管理者ユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "admin@example.com"
				_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, string(user.RoleAdmin))
				return email, string(user.RoleAdmin), token
			},
			expectedStatus: http.StatusOK,
			description:    "管理者ユーザーの情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// レスポンス内容をチェック
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleBuyer))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleBuyer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestRoleHierarchy() {
	s.Run("購入者は出品できない", func() {
		t := s.T()
		buyer := s.Login("buyer2@example.com", user.RoleBuyer)
		storeID := dbtest.CreateTestStore(t, s.DB, buyer.ID, "not really a store")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/"+storeID.String()+"/products",
			map[string]any{"name": "x", "priceCents": 100, "stock": 1}, buyer.Token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("出品者は管理APIを使えない", func() {
		t := s.T()
		seller, _ := s.Seller("seller2@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/coupons", nil, seller.Token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("管理者は出品者の権限を含む", func() {
		t := s.T()
		admin := s.Login("admin2@example.com", user.RoleAdmin)
		storeID := dbtest.CreateTestStore(t, s.DB, admin.ID, "admin store")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/"+storeID.String()+"/products",
			map[string]any{"name": "x", "priceCents": 100, "stock": 1}, admin.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "buyer@example.com", dbtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, "buyer@example.com", dbtest.DefaultPassword)

		// 両方のトークンが有効であることを確認
		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
