package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockdb "github.com/banachtech/fxsmile/db/mock"
	db "github.com/banachtech/fxsmile/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	var storedHash string

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"email": "trader@bank.com"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(ctx context.Context, arg db.CreateUserParams) (db.User, error) {
						require.Equal(t, "trader@bank.com", arg.EmailAddress)
						require.Len(t, arg.Prefix, 8)
						storedHash = arg.Token
						return db.User{
							EmailAddress: arg.EmailAddress,
							Prefix:       arg.Prefix,
							Token:        arg.Token,
							GeneratedAt:  arg.GeneratedAt,
							ExpiredAt:    arg.ExpiredAt,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var resp struct {
					Email   string `json:"email"`
					APIKey  string `json:"api_key"`
					Expires string `json:"expires"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				require.Equal(t, "trader@bank.com", resp.Email)
				require.NotEmpty(t, resp.Expires)

				parts := strings.Split(resp.APIKey, ".")
				require.Len(t, parts, 2)
				require.Len(t, parts[0], 8)
				require.Len(t, parts[1], 32)

				// stored hash must verify the key handed back to the caller
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(resp.APIKey)))
			},
		},
		{
			name: "MISSING_EMAIL",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ERROR_BINDING",
			body: gin.H{"email": 5},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "INTERNAL_SERVER_ERROR",
			body: gin.H{"email": "trader@bank.com"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(1).Return(db.User{}, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := NewServer(store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/register", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
