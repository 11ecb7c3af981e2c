package server

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"psteg/api"
	"psteg/api/psteg/EncodeImage"
	"psteg/internal/logging"
	"psteg/pkg/config"
	pstegImage "psteg/pkg/image"
	"psteg/pkg/imagefile"
	"psteg/pkg/model"
)

const flatbuffersContentType = "application/octet-stream"

// EncodeImageHandler godoc
//
// @Summary Encode a message into the supplied image
// @Description This endpoint hides the supplied message in the image, and returns the encoded image as png. Requests sent as application/octet-stream are read as an ImageEncodeRequest flatbuffer and answered with an ImageEncodeResponse flatbuffer, all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeImageRequest true "Body with image to encode and the message to hide within the image, as well as the png compression of the output"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if ctx.ContentType() == flatbuffersContentType {
		encodeImageFlatbuffers(ctx, logger)
		return
	}

	var requestBody api.EncodeImageRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		abortWithError(ctx, logger, "Error decoding request body", requestBodyError(err))
		return
	}

	compression := png.BestCompression // to reduce bandwidth costs since lower compression results in huge images
	if requestBody.PngCompression != "" {
		level, err := config.ParsePngCompression(requestBody.PngCompression)
		if err != nil {
			abortWithError(ctx, logger, "Unknown png compression requested",
				&requestError{status: http.StatusBadRequest, response: errInvalidCompression, err: err})
			return
		}
		compression = level
	}

	encodedImage, stats, err := encodeImage(logger, requestBody.ImageToEncode, []byte(requestBody.Message), compression)
	if err != nil {
		abortWithError(ctx, logger, "Error encoding message into image", err)
		return
	}

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{
		EncodedImage:  encodedImage,
		MessageBytes:  stats.MessageBytes,
		CapacityBytes: stats.CapacityBytes,
	})
}

func encodeImageFlatbuffers(ctx *gin.Context, logger *logging.Logger) {
	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		abortWithError(ctx, logger, "Error reading request body", requestBodyError(err))
		return
	}

	encodeImageRequest, err := parseImageEncodeRequest(requestBody)
	if err != nil {
		abortWithError(ctx, logger, "Error decoding flatbuffers request body", requestBodyError(err))
		return
	}

	encodedImage, stats, err := encodeImage(logger, encodeImageRequest.ImageToEncodeBytes(),
		encodeImageRequest.MessageBytes(), png.CompressionLevel(encodeImageRequest.PngCompression()))
	if err != nil {
		abortWithError(ctx, logger, "Error encoding message into image", err)
		return
	}

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	offset := fbResponseBuilder.CreateByteVector(encodedImage)
	EncodeImage.ImageEncodeResponseStart(fbResponseBuilder)
	EncodeImage.ImageEncodeResponseAddEncodedImage(fbResponseBuilder, offset)
	EncodeImage.ImageEncodeResponseAddCapacityBytes(fbResponseBuilder, uint64(stats.CapacityBytes))
	response := EncodeImage.ImageEncodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, flatbuffersContentType, fbResponseBuilder.FinishedBytes())
}

// parseImageEncodeRequest reads every field of the request up front, so offsets pointing outside the buffer surface
// as an error instead of a panic further down
func parseImageEncodeRequest(body []byte) (request *EncodeImage.ImageEncodeRequest, err error) {
	if len(body) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: body is only %d bytes", errMalformedFlatbuffer, len(body))
	}

	defer func() {
		if r := recover(); r != nil {
			request = nil
			err = fmt.Errorf("%w: %v", errMalformedFlatbuffer, r)
		}
	}()

	request = EncodeImage.GetRootAsImageEncodeRequest(body, 0)
	request.ImageToEncodeBytes()
	request.MessageBytes()
	request.PngCompression()
	return request, nil
}

func encodeImage(logger *logging.Logger, rawImage, message []byte, compression png.CompressionLevel) ([]byte, model.EncodeStats, error) {
	imageToEncode, format, err := imagefile.Load(bytes.NewReader(rawImage))
	if err != nil {
		return nil, model.EncodeStats{}, carrierError(err)
	}
	if imagefile.IsLossy(format) {
		logger.Warn("Encoding into a lossy carrier, the result is returned as png", "format", format)
	}

	imageEncoder, err := pstegImage.NewImageEncoder(imageToEncode, config.ImageEncodeConfig{
		PngCompressionLevel: compression,
	})
	if err != nil {
		return nil, model.EncodeStats{}, codecError(err, errEncode)
	}

	if err = imageEncoder.EncodeMessage(message); err != nil {
		return nil, imageEncoder.Stats(), codecError(err, errEncode)
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(rawImage))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncoded(encodedImageBuffer); err != nil {
		return nil, imageEncoder.Stats(), codecError(err, errEncode)
	}

	logger.With("stats", toHumanizedEncodeStats(imageEncoder.Stats())).Info("Image encoding was successful")
	return encodedImageBuffer.Bytes(), imageEncoder.Stats(), nil
}
