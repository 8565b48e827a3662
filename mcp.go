package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/gin-gonic/gin"

	"fitcalc/internal/calc"
	"fitcalc/internal/nutrition"
	"fitcalc/internal/tracker"
)

// mcpTool handles one MCP tool call.
type mcpTool func(h *Handler, c *gin.Context, req *protocol.CallToolRequest) (any, error)

// mcpTools maps tool names to their handlers.
var mcpTools = map[string]mcpTool{
	"compute_plan":  toolComputePlan,
	"calculate_bmi": toolCalculateBMI,
	"log_weight":    toolLogWeight,
	"list_weights":  toolListWeights,
}

// handleMCP serves MCP tools/call requests over plain HTTP.
// POST /mcp. Body: { "name": "<tool>", "arguments": {...} }. The tool result
// is returned as JSON text content.
func (h *Handler) handleMCP(c *gin.Context) {
	var req protocol.CallToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, ok := mcpTools[req.Name]
	if !ok {
		apiError(c, http.StatusNotFound, fmt.Sprintf("unknown tool: %s", req.Name))
		return
	}

	data, err := tool(h, c, &req)
	if err != nil {
		failWith(c, "handleMCP", err, "tool call failed")
		return
	}

	b, err := json.Marshal(data)
	if err != nil {
		failWith(c, "handleMCP", err, "tool call failed")
		return
	}
	c.JSON(http.StatusOK, &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{Type: "text", Text: string(b)},
		},
	})
}

// extractParams decodes the request arguments into target.
func extractParams(req *protocol.CallToolRequest, target any) error {
	b, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("marshal arguments: %w", err)
	}
	if err := json.Unmarshal(b, target); err != nil {
		return fmt.Errorf("%w: %v", calc.ErrInvalidInput, err)
	}
	return nil
}

/* ─── Tools ───────────────────────────────────────────────────────────── */

// toolComputePlan returns the engine result. Validation failures are part of
// the result, not a tool error.
func toolComputePlan(_ *Handler, _ *gin.Context, req *protocol.CallToolRequest) (any, error) {
	var p nutrition.Profile
	if err := extractParams(req, &p); err != nil {
		return nil, err
	}
	return nutrition.ComputePlan(p), nil
}

func toolCalculateBMI(_ *Handler, _ *gin.Context, req *protocol.CallToolRequest) (any, error) {
	var params struct {
		WeightKG float64 `json:"weight_kg"`
		HeightCM float64 `json:"height_cm"`
	}
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return calc.BMI(params.HeightCM, params.WeightKG)
}

func toolLogWeight(h *Handler, c *gin.Context, req *protocol.CallToolRequest) (any, error) {
	var params struct {
		Date      string  `json:"date"`
		WeightKG  float64 `json:"weight_kg"`
		Overwrite bool    `json:"overwrite"`
	}
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.Date == "" {
		params.Date = h.now().Format("2006-01-02")
	}
	return h.store.Put(c, tracker.PutParams{Date: params.Date, WeightKG: params.WeightKG, Overwrite: params.Overwrite})
}

func toolListWeights(h *Handler, c *gin.Context, req *protocol.CallToolRequest) (any, error) {
	var params struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	return h.store.List(c, params.StartDate, params.EndDate)
}
