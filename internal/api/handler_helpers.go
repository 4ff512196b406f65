package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/response"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg + ": " + err.Error())
	case 500:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, resp)
}

// HandleRejection reports a business-rule rejection: a specific, actionable
// message with the reason in the meta, distinct from faults.
func HandleRejection(c *gin.Context, logger internal.Logger, rej *internal.Rejection) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] rejected: %s", requestID, rej.Reason)
	resp := response.Conflict(rej.Message)
	resp.Meta = map[string]any{"reason": string(rej.Reason)}
	c.JSON(http.StatusConflict, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}
