package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRuleGroupRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(ruleGroupRepoTestSuite))
}

type ruleGroupRepoTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    RuleGroupRepository
}

func (suite *ruleGroupRepoTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetRuleGroupRepository()
}

func (suite *ruleGroupRepoTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func ruleGroupRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		`"id"`,
		`"userId"`,
		`"title"`,
		`"description"`,
		`"order"`,
		`"active"`,
		`"createdAt"`,
		`"updatedAt"`,
	})
}

func (suite *ruleGroupRepoTestSuite) TestRepository_GetByID() {
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
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupGetByID)).
					WithArgs(int64(1)).
					WillReturnRows(ruleGroupRows().
						AddRow(1, 7, "Cleanup", "", 1, true, time.Now(), time.Now()))
			},
		},
		{
			name:    "not found",
			id:      2,
			wantErr: common.ErrDataNotFound,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupGetByID)).
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
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupGetByID)).
					WithArgs(int64(3)).
					WillReturnError(assert.AnError)
			},
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			group, err := suite.repo.GetByID(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.id, group.ID)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *ruleGroupRepoTestSuite) TestRepository_GetListByUser() {
	testCases := []struct {
		name    string
		userID  int64
		wantErr bool
		doMock  func()
	}{
		{
			name:   "happy path",
			userID: 7,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupListByUser)).
					WithArgs(int64(7)).
					WillReturnRows(ruleGroupRows().
						AddRow(1, 7, "Cleanup", "", 1, true, time.Now(), time.Now()).
						AddRow(2, 7, "Budgeting", "", 2, true, time.Now(), time.Now()))
			},
			wantErr: false,
		},
		{
			name:   "failed scan row",
			userID: 7,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupListByUser)).
					WillReturnRows(sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil))
			},
			wantErr: true,
		},
		{
			name:   "failed from db",
			userID: 7,
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupListByUser)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetListByUser(context.Background(), tc.userID)
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *ruleGroupRepoTestSuite) TestRepository_CountAllByUser() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "success get count",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupCountByUser)).
					WillReturnRows(sqlmock.NewRows([]string{`"count"`}).AddRow(3))
			},
			wantErr: false,
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryRuleGroupCountByUser)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.CountAllByUser(context.Background(), 7)
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
