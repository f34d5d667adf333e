//go:build unit

package user_test

import (
	"testing"

	"ootd-commerce/internal/domain/user"
	"ootd-commerce/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.IgnoreFields(user.User{}, "id", "createdAt"),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", user.RoleBuyer)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "前後の空白と大文字は正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Mixed@Example.COM ") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "buyer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("buyer") },
			},
			{
				name:   "seller ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsSeller() },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("状態検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) {},
			},
			{
				name:   "非アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})
	})

	t.Run("無効化", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		u.Deactivate()

		assert.False(t, u.IsActive())
	})
}

func TestRole(t *testing.T) {
	t.Run("権限の序列", func(t *testing.T) {
		testCases := []struct {
			have user.Role
			min  user.Role
			want bool
		}{
			{user.RoleBuyer, user.RoleBuyer, true},
			{user.RoleBuyer, user.RoleSeller, false},
			{user.RoleSeller, user.RoleBuyer, true},
			{user.RoleSeller, user.RoleAdmin, false},
			{user.RoleAdmin, user.RoleSeller, true},
			{user.Role("ghost"), user.RoleBuyer, false},
			{user.RoleAdmin, user.Role("ghost"), false},
		}
		for _, tc := range testCases {
			t.Run(tc.have.String()+">="+tc.min.String(), func(t *testing.T) {
				assert.Equal(t, tc.want, tc.have.AtLeast(tc.min))
			})
		}
	})

	t.Run("登録時のロール選択", func(t *testing.T) {
		role, err := user.NewSignupRole("")
		require.NoError(t, err)
		assert.Equal(t, user.RoleBuyer, role)

		role, err = user.NewSignupRole("seller")
		require.NoError(t, err)
		assert.Equal(t, user.RoleSeller, role)

		_, err = user.NewSignupRole("admin")
		assert.ErrorIs(t, err, user.ErrRoleNotSelectable)

		_, err = user.NewSignupRole("root")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("パスワード長", func(t *testing.T) {
		_, err := user.NewPassword("short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		p, err := user.NewPassword("longenough")
		require.NoError(t, err)
		assert.Equal(t, "longenough", p.Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
