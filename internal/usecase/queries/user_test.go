//go:build unit

package queries_test

import (
	"context"
	"testing"

	"ootd-commerce/internal/infra"
	"ootd-commerce/internal/pkg/errs"
	"ootd-commerce/internal/usecase/queries"
	queriesmock "ootd-commerce/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(rs *queriesmock.MockUserReadStore)
		expectedError error
		expectedKind  error
	}{
		{
			name: "success: active user",
			setupMock: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), userID).
					Return(&queries.AuthorizedUserView{ID: userID, Email: "a@example.com", Role: "buyer", IsActive: true}, nil)
			},
		},
		{
			name: "error: inactive user",
			setupMock: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), userID).
					Return(&queries.AuthorizedUserView{ID: userID, IsActive: false}, nil)
			},
			expectedError: queries.ErrUserInactive,
			expectedKind:  errs.ErrForbidden,
		},
		{
			name: "error: missing user",
			setupMock: func(rs *queriesmock.MockUserReadStore) {
				rs.EXPECT().FindByID(gomock.Any(), userID).
					Return(nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			expectedError: queries.ErrUserNotFound,
			expectedKind:  errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rs := queriesmock.NewMockUserReadStore(ctrl)
			tc.setupMock(rs)

			got, err := queries.NewUserQueries(rs).GetCurrentUser(ctx, userID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.True(t, errs.Is(err, tc.expectedKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got.ID)
		})
	}
}
