package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"psteg/api"
	"psteg/internal/logging"
	pstegImage "psteg/pkg/image"
	"psteg/pkg/imagefile"
)

// DecodeImageHandler godoc
//
// @Summary Decode a message from an image
// @Description This endpoint recovers the text message previously hidden in the supplied image. Lossy (JPEG) images are rejected
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		abortWithError(ctx, logger, "Error decoding request body", requestBodyError(err))
		return
	}

	imageToDecode, err := imagefile.LoadForDecoding(bytes.NewReader(requestBody.ImageToDecode))
	if err != nil {
		abortWithError(ctx, logger, "Error decoding request image", carrierError(err))
		return
	}

	imageDecoder, err := pstegImage.NewImageDecoder(imageToDecode)
	if err != nil {
		abortWithError(ctx, logger, "Error setting up decoder", codecError(err, errDecode))
		return
	}

	message, err := imageDecoder.DecodeMessage()
	if err != nil {
		abortWithError(ctx, logger, "Error decoding message from image", codecError(err, errDecode))
		return
	}

	logger.With("stats", toHumanizedDecodeStats(imageDecoder.Stats())).Info("Image decoding was successful")

	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: message})
}
