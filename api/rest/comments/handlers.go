package comments

import (
	"net/http"

	"codeberg.org/commentgen/server/internal/errors"
	"codeberg.org/commentgen/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	missingFieldsMessage = "request body must contain 'language' and 'code'"
	commentFailedMessage = "an internal error occurred while processing the code."
)

// creates a handler that adds comments to the submitted code
func Handler(commenter Commenter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, missingFieldsMessage, nil)
			return
		}

		result, err := commenter.Comment(c.Request.Context(), *req.Language, *req.Code)
		if err != nil {
			errors.InternalError(c, commentFailedMessage, err)
			return
		}

		logger.Debug("comments generated",
			"language", *req.Language,
			"model", result.Model,
			"input_tokens", result.Usage.InputTokens,
			"output_tokens", result.Usage.OutputTokens,
		)

		c.JSON(http.StatusOK, Response{
			CommentedCode: result.CommentedCode,
		})
	}
}
