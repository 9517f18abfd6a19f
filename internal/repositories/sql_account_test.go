package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/config"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestAccountRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(accountRepoTestSuite))
}

type accountRepoTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    AccountRepository
}

func (suite *accountRepoTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetAccountRepository()
}

func (suite *accountRepoTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		`"id"`,
		`"userId"`,
		`"name"`,
		`"type"`,
		`"currency"`,
		`"status"`,
		`"createdAt"`,
		`"updatedAt"`,
	})
}

func (suite *accountRepoTestSuite) TestRepository_GetByID() {
	testCases := []struct {
		name    string
		id      int64
		wantErr error
		doMock  func()
	}{
		{
			name: "happy path",
			id:   1,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(int64(1)).
					WillReturnRows(accountRows().
						AddRow(1, 7, "Checking", models.AccountTypeAsset, "EUR", models.AccountStatusActive, time.Now(), time.Now()))
			},
		},
		{
			name:    "not found",
			id:      2,
			wantErr: common.ErrAccountNotFound,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(int64(2)).
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:    "error db",
			id:      3,
			wantErr: assert.AnError,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
					WithArgs(int64(3)).
					WillReturnError(assert.AnError)
			},
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			account, err := suite.repo.GetByID(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.id, account.ID)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *accountRepoTestSuite) TestRepository_GetByID_SecondLookupIsCached() {
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(queryAccountGetByID)).
		WithArgs(int64(1)).
		WillReturnRows(accountRows().
			AddRow(1, 7, "Checking", models.AccountTypeAsset, "EUR", models.AccountStatusActive, time.Now(), time.Now()))

	first, err := suite.repo.GetByID(context.Background(), 1)
	require.NoError(suite.t, err)

	// no second query expectation registered, the cache must answer
	second, err := suite.repo.GetByID(context.Background(), 1)
	require.NoError(suite.t, err)
	assert.Equal(suite.t, first.Name, second.Name)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func (suite *accountRepoTestSuite) TestRepository_GetListByUser() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "happy path",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountListByUser)).
					WithArgs(int64(7)).
					WillReturnRows(accountRows().
						AddRow(1, 7, "Checking", models.AccountTypeAsset, "EUR", models.AccountStatusActive, time.Now(), time.Now()).
						AddRow(2, 7, "Savings", models.AccountTypeAsset, "EUR", models.AccountStatusActive, time.Now(), time.Now()))
			},
			wantErr: false,
		},
		{
			name: "failed scan row",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountListByUser)).
					WillReturnRows(sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil))
			},
			wantErr: true,
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryAccountListByUser)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetListByUser(context.Background(), 7)
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
