package rulegroup

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/mconway/firefly-iii/internal/common"
	"github.com/mconway/firefly-iii/internal/common/http"
	"github.com/mconway/firefly-iii/internal/common/validation"
	"github.com/mconway/firefly-iii/internal/models"
	"github.com/mconway/firefly-iii/internal/services"

	"github.com/labstack/echo/v4"
)

type ruleGroupHandler struct {
	ruleGroupSvc services.RuleGroupService
	ruleBatchSvc services.RuleBatchService
}

// New rule group handler will initialize the rule-groups/ and rule-runs/
// resources endpoint
func New(app *echo.Group, ruleGroupSvc services.RuleGroupService, ruleBatchSvc services.RuleBatchService) {
	handler := ruleGroupHandler{
		ruleGroupSvc: ruleGroupSvc,
		ruleBatchSvc: ruleBatchSvc,
	}
	api := app.Group("/rule-groups")
	api.GET("", handler.getListByUser)
	api.GET("/:ruleGroupId", handler.getDetail)
	api.GET("/:ruleGroupId/last-run", handler.getLastRunStatus)
	api.POST("/:ruleGroupId/execute", handler.executeRuleGroup)

	runs := app.Group("/rule-runs")
	runs.GET("/:runId", handler.getRun)
}

func (h *ruleGroupHandler) getListByUser(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("user_id must be a number"))
	}

	groups, total, err := h.ruleGroupSvc.GetListByUser(c.Request().Context(), userID)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
	}

	data := make([]models.RuleGroupOut, 0, len(groups))
	for i := range groups {
		data = append(data, *groups[i].ConvertToRuleGroupOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, total)
}

func (h *ruleGroupHandler) getDetail(c echo.Context) error {
	ruleGroupID, err := strconv.ParseInt(c.Param("ruleGroupId"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("ruleGroupId must be a number"))
	}
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("user_id must be a number"))
	}

	group, rules, err := h.ruleGroupSvc.GetDetail(c.Request().Context(), userID, ruleGroupID)
	if err != nil {
		return http.RestErrorResponse(c, ruleGroupErrStatus(err), err)
	}

	out := group.ConvertToRuleGroupOut()
	out.Rules = make([]models.RuleOut, 0, len(rules))
	for i := range rules {
		out.Rules = append(out.Rules, *rules[i].ConvertToRuleOut())
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, out)
}

func (h *ruleGroupHandler) getLastRunStatus(c echo.Context) error {
	ruleGroupID, err := strconv.ParseInt(c.Param("ruleGroupId"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("ruleGroupId must be a number"))
	}

	status, err := h.ruleGroupSvc.GetLastRunStatus(c.Request().Context(), ruleGroupID)
	if err != nil {
		statusCode := nethttp.StatusInternalServerError
		if errors.Is(models.GetErrMap("RUN-404"), err) {
			statusCode = nethttp.StatusNotFound
		}
		return http.RestErrorResponse(c, statusCode, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, status)
}

func (h *ruleGroupHandler) executeRuleGroup(c echo.Context) error {
	ruleGroupID, err := strconv.ParseInt(c.Param("ruleGroupId"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, errors.New("ruleGroupId must be a number"))
	}

	req := new(models.RuleRunRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}
	req.RuleGroupID = ruleGroupID

	if err := validation.ValidateStruct(*req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	run, err := h.ruleBatchSvc.EnqueueRun(c.Request().Context(), *req)
	if err != nil {
		return http.RestErrorResponse(c, ruleGroupErrStatus(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusAccepted, run.ConvertToRuleRunOut())
}

func (h *ruleGroupHandler) getRun(c echo.Context) error {
	run, err := h.ruleBatchSvc.GetRun(c.Request().Context(), c.Param("runId"))
	if err != nil {
		statusCode := nethttp.StatusInternalServerError
		if errors.Is(models.GetErrMap("RUN-404"), err) {
			statusCode = nethttp.StatusNotFound
		}
		return http.RestErrorResponse(c, statusCode, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, run.ConvertToRuleRunOut())
}

// ruleGroupErrStatus maps ownership and existence failures onto 404 so the
// API never confirms a group belonging to another user.
func ruleGroupErrStatus(err error) int {
	switch {
	case errors.Is(models.GetErrMap("RULE-404"), err),
		errors.Is(err, common.ErrRuleGroupNotFound),
		errors.Is(err, common.ErrRuleGroupNotOwned):
		return nethttp.StatusNotFound
	default:
		return nethttp.StatusInternalServerError
	}
}
