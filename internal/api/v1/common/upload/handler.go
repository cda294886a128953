package upload

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ELIUD25/empire/internal/services"
	"github.com/ELIUD25/empire/internal/utils"
	"github.com/ELIUD25/empire/pkg/logger"
)

// GetOSSToken godoc
// @Summary      Issue short-lived OSS credentials for direct uploads
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /upload/oss-token [get]
func GetOSSToken(c *gin.Context) {
	creds, err := services.GetOSSTSToken()
	if err != nil {
		logger.Log.Error("failed to issue OSS STS token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to issue upload credentials"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Upload credentials issued", creds))
}

// UploadFile godoc
// @Summary      Upload a file attachment
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Security     BearerAuth
// @Success      200 {object} utils.Response
// @Router       /upload [post]
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No file provided"))
		return
	}

	url, err := services.UploadAttachment(fileHeader)
	if err != nil {
		logger.Log.Error("attachment upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to upload file"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("File uploaded successfully", gin.H{"url": url}))
}
