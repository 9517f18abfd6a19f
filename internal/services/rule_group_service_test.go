package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRuleGroup_GetListByUser(t *testing.T) {
	testCases := []struct {
		name      string
		doMock    func(helper testServiceHelper)
		wantTotal int
		wantErr   bool
	}{
		{
			name: "happy flow",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetListByUser(gomock.Any(), int64(7)).
					Return([]models.RuleGroup{{ID: 1, UserID: 7}, {ID: 2, UserID: 7}}, nil)
				helper.mockRuleGroupRepository.EXPECT().
					CountAllByUser(gomock.Any(), int64(7)).
					Return(2, nil)
			},
			wantTotal: 2,
		},
		{
			name: "failed get list",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetListByUser(gomock.Any(), int64(7)).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "failed count",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetListByUser(gomock.Any(), int64(7)).
					Return([]models.RuleGroup{{ID: 1, UserID: 7}}, nil)
				helper.mockRuleGroupRepository.EXPECT().
					CountAllByUser(gomock.Any(), int64(7)).
					Return(0, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)
			tc.doMock(helper)

			groups, total, err := helper.ruleGroupService.GetListByUser(context.Background(), 7)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, groups)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantTotal, total)
			assert.Len(t, groups, tc.wantTotal)
		})
	}
}

func TestRuleGroup_GetDetail(t *testing.T) {
	testCases := []struct {
		name    string
		doMock  func(helper testServiceHelper)
		wantErr error
	}{
		{
			name: "happy flow",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(&models.RuleGroup{ID: 1, UserID: 7, Title: "Imports"}, nil)
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return([]models.Rule{{ID: 3, RuleGroupID: 1}}, nil)
			},
		},
		{
			name: "rule group not found",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(nil, common.ErrDataNotFound)
			},
			wantErr: models.GetErrMap("RULE-404"),
		},
		{
			name: "rule group owned by someone else",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(&models.RuleGroup{ID: 1, UserID: 99}, nil)
			},
			wantErr: models.GetErrMap("RULE-404"),
		},
		{
			name: "failed load rules",
			doMock: func(helper testServiceHelper) {
				helper.mockRuleGroupRepository.EXPECT().
					GetByID(gomock.Any(), int64(1)).
					Return(&models.RuleGroup{ID: 1, UserID: 7}, nil)
				helper.mockRuleRepository.EXPECT().
					GetEligibleRules(gomock.Any(), int64(1)).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)
			tc.doMock(helper)

			group, rules, err := helper.ruleGroupService.GetDetail(context.Background(), 7, 1)

			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				assert.Nil(t, group)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(1), group.ID)
			assert.Len(t, rules, 1)
		})
	}
}

func TestRuleGroup_GetLastRunStatus(t *testing.T) {
	finishedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		doMock   func(helper testServiceHelper)
		wantRun  string
		wantErr  error
		wantFail bool
	}{
		{
			name: "answered from cache",
			doMock: func(helper testServiceHelper) {
				helper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), "rule-run:last:1").
					Return(`{"runId":"run-1","status":"success"}`, nil)
			},
			wantRun: "run-1",
		},
		{
			name: "cache miss falls back to newest run row",
			doMock: func(helper testServiceHelper) {
				helper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), "rule-run:last:1").
					Return("", common.ErrDataNotFound)
				helper.mockRuleRunRepository.EXPECT().
					GetListByRuleGroup(gomock.Any(), int64(1), 1).
					Return([]models.RuleRun{{ID: "run-2", Status: models.RuleRunStatusFailed, FinishedAt: &finishedAt}}, nil)
			},
			wantRun: "run-2",
		},
		{
			name: "corrupt cache entry falls back",
			doMock: func(helper testServiceHelper) {
				helper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), "rule-run:last:1").
					Return("not-json", nil)
				helper.mockRuleRunRepository.EXPECT().
					GetListByRuleGroup(gomock.Any(), int64(1), 1).
					Return([]models.RuleRun{{ID: "run-3", Status: models.RuleRunStatusSuccess}}, nil)
			},
			wantRun: "run-3",
		},
		{
			name: "no runs at all",
			doMock: func(helper testServiceHelper) {
				helper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), "rule-run:last:1").
					Return("", common.ErrDataNotFound)
				helper.mockRuleRunRepository.EXPECT().
					GetListByRuleGroup(gomock.Any(), int64(1), 1).
					Return(nil, nil)
			},
			wantErr:  models.GetErrMap("RUN-404"),
			wantFail: true,
		},
		{
			name: "cache backend down",
			doMock: func(helper testServiceHelper) {
				helper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), "rule-run:last:1").
					Return("", assert.AnError)
			},
			wantErr:  assert.AnError,
			wantFail: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)
			tc.doMock(helper)

			status, err := helper.ruleGroupService.GetLastRunStatus(context.Background(), 1)

			if tc.wantFail {
				assert.Equal(t, tc.wantErr, err)
				assert.Nil(t, status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRun, status.RunID)
		})
	}
}
