package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitcalc/internal/nutrition"
	"fitcalc/internal/tracker"
)

// trendWindow is how far back ?sync=tracker looks for weigh-ins.
const trendWindow = 28 * 24 * time.Hour

// computePlan runs the nutrition engine on a profile.
// POST /api/nutrition/plan. Body: the profile. With ?sync=tracker the latest
// logged weight replaces the body weight and the last four weeks of entries
// drive recalibration. Failures use the engine's {success:false,error} shape.
func (h *Handler) computePlan(c *gin.Context) {
	var p nutrition.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, nutrition.Result{Error: "invalid request body"})
		return
	}

	if c.Query("sync") == "tracker" {
		if err := h.syncFromTracker(c, &p); err != nil {
			failWith(c, "computePlan", err, "failed to read weight log")
			return
		}
	}

	result := nutrition.ComputePlan(p)
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// syncFromTracker fills weight and trend samples from the weight log. An
// empty log leaves the profile untouched.
func (h *Handler) syncFromTracker(c *gin.Context, p *nutrition.Profile) error {
	start := h.now().Add(-trendWindow).Format("2006-01-02")
	entries, err := h.store.List(c, start, "")
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	p.Weight = entries[len(entries)-1].WeightKG
	p.TrackerData = tracker.Samples(entries)
	return nil
}

// listPlans returns the full diet catalog in catalog order.
// GET /api/nutrition/plans.
func (h *Handler) listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.Catalog())
}

// getPlan returns a single catalog plan.
// GET /api/nutrition/plans/:id. 404 for unknown ids.
func (h *Handler) getPlan(c *gin.Context) {
	plan, ok := nutrition.PlanByID(c.Param("id"))
	if !ok {
		apiError(c, http.StatusNotFound, "plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// listTemplates returns the loss, maintain and gain templates.
// GET /api/nutrition/templates.
func (h *Handler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.GoalTemplates())
}

// getTemplate returns the meal template for one goal.
// GET /api/nutrition/templates/:goal. 404 for unknown goals.
func (h *Handler) getTemplate(c *gin.Context) {
	tmpl, ok := nutrition.TemplateFor(c.Param("goal"))
	if !ok {
		apiError(c, http.StatusNotFound, "template not found")
		return
	}
	c.JSON(http.StatusOK, tmpl)
}
