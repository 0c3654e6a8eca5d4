package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/display"
	"github.com/sgc-amambai/contracts/lifecycle"
	"github.com/sgc-amambai/contracts/middleware"
	"github.com/sgc-amambai/contracts/model"
)

type DashboardHandler struct {
	currency string
	today    func() date.Date
}

func NewDashboardHandler(currency string, today func() date.Date) *DashboardHandler {
	return &DashboardHandler{currency: currency, today: today}
}

// Summary returns the portfolio metrics of the session
func (h *DashboardHandler) Summary(c *gin.Context) {
	sess := middleware.GetSession(c)

	ref, err := referenceDate(c, h.today)
	if err != nil {
		respondError(c, err)
		return
	}

	_, summary, err := lifecycle.Summarize(sess.Contracts.Snapshot(), ref)
	if err != nil {
		respondError(c, err)
		return
	}

	byCategory := make(map[model.Category]string, len(summary.ValueByCategory))
	for category, v := range summary.ValueByCategory {
		byCategory[category] = display.FormatMoney(v, h.currency)
	}

	c.JSON(http.StatusOK, gin.H{
		"reference_date":            ref,
		"summary":                   summary,
		"total_value_display":       display.FormatMoney(summary.TotalValue, h.currency),
		"value_by_category_display": byCategory,
		// Expired contracts count as critical on the dashboard headline
		"needs_action": summary.TierCounts[model.TierCritical] + summary.TierCounts[model.TierExpired],
	})
}

// Classify returns the status of a single end date
func (h *DashboardHandler) Classify(c *gin.Context) {
	ref, err := referenceDate(c, h.today)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := lifecycle.ClassifyString(c.Query("end_date"), ref)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference_date": ref,
		"end_date":       c.Query("end_date"),
		"tier":           status.Tier,
		"days_remaining": status.DaysRemaining,
		"label":          display.Label(status),
		"highlight":      display.Highlight(status.Tier),
	})
}
