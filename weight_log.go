package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcalc/internal/tracker"
)

// getWeightLog returns weight entries within [start, end], oldest first.
// GET /api/weight-log?start=YYYY-MM-DD&end=YYYY-MM-DD. Either bound may be omitted.
// Returns an empty array (not null) if no entries exist in the range.
func (h *Handler) getWeightLog(c *gin.Context) {
	entries, err := h.store.List(c, c.Query("start"), c.Query("end"))
	if err != nil {
		failWith(c, "getWeightLog", err, "failed to fetch weight log")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// createWeightEntry logs the weight for a date.
// POST /api/weight-log. Body: { "date": "YYYY-MM-DD", "weight_kg": 80.5 }.
// A second entry for the same date is a 409 unless ?overwrite=true, which
// updates it in place.
func (h *Handler) createWeightEntry(c *gin.Context) {
	var body createWeightEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Date == "" {
		apiError(c, http.StatusBadRequest, "date is required")
		return
	}

	entry, err := h.store.Put(c, tracker.PutParams{
		Date:      body.Date,
		WeightKG:  body.WeightKG,
		Overwrite: c.Query("overwrite") == "true",
	})
	if err != nil {
		failWith(c, "createWeightEntry", err, "failed to save weight entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// updateWeightEntry partially updates an existing weight entry.
// PUT /api/weight-log/:id. Body: { "date"?, "weight_kg"? }. Omitted fields
// keep their current values.
func (h *Handler) updateWeightEntry(c *gin.Context) {
	var body tracker.UpdateParams
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.store.Update(c, c.Param("id"), body)
	if err != nil {
		failWith(c, "updateWeightEntry", err, "failed to update weight entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteWeightEntry removes a weight log entry by ID.
// DELETE /api/weight-log/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteWeightEntry(c *gin.Context) {
	if err := h.store.Delete(c, c.Param("id")); err != nil {
		failWith(c, "deleteWeightEntry", err, "failed to delete weight entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// clearWeightLog removes every entry.
// DELETE /api/weight-log. Returns { "deleted": n }.
func (h *Handler) clearWeightLog(c *gin.Context) {
	n, err := h.store.Clear(c)
	if err != nil {
		failWith(c, "clearWeightLog", err, "failed to clear weight log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
