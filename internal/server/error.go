package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"psteg/api"
	"psteg/internal/logging"
	pstegImage "psteg/pkg/image"
	"psteg/pkg/imagefile"
)

var (
	errRequestBodyDecode  = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errRequestTooLarge    = api.Error{Code: "request_too_large", Error: "Request body exceeds the configured size limit"}
	errInvalidImage       = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errLossyImage         = api.Error{Code: "invalid_image", Error: "Supplied image is stored in a lossy format and cannot carry a message"}
	errInvalidCompression = api.Error{Code: "invalid_png_compression", Error: "Unknown png compression, options are default, none, fast, best"}
	errImageTooSmall      = api.Error{Code: "image_too_small", Error: "Supplied image is not big enough to contain the message"}
	errInvalidText        = api.Error{Code: "invalid_text", Error: "Decoded message is not valid UTF-8, the image was likely not encoded by psteg"}
	errEncode             = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errDecode             = api.Error{Code: "decode_error", Error: "An error occurred while decoding the image"}
	errInternal           = api.Error{Error: "Internal server error"}

	errMalformedFlatbuffer = errors.New("malformed flatbuffer")
)

// requestError carries the status and body a handler answers with when err stops it
type requestError struct {
	status   int
	response api.Error
	err      error
}

func (e *requestError) Error() string {
	return e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func requestBodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &requestError{status: http.StatusRequestEntityTooLarge, response: errRequestTooLarge, err: err}
	}
	return &requestError{status: http.StatusBadRequest, response: errRequestBodyDecode, err: err}
}

func carrierError(err error) error {
	if errors.Is(err, imagefile.ErrLossyCarrier) {
		return &requestError{status: http.StatusBadRequest, response: errLossyImage, err: err}
	}
	return &requestError{status: http.StatusBadRequest, response: errInvalidImage, err: err}
}

func codecError(err error, fallback api.Error) error {
	switch {
	case errors.Is(err, pstegImage.ErrImageNotBigEnough):
		return &requestError{status: http.StatusBadRequest, response: errImageTooSmall, err: err}
	case errors.Is(err, pstegImage.ErrInvalidText):
		return &requestError{status: http.StatusUnprocessableEntity, response: errInvalidText, err: err}
	default:
		return &requestError{status: http.StatusInternalServerError, response: fallback, err: err}
	}
}

// abortWithError logs err and answers with the response attached to it. Client errors are logged as warnings
func abortWithError(ctx *gin.Context, logger *logging.Logger, msg string, err error) {
	var reqErr *requestError
	if !errors.As(err, &reqErr) {
		reqErr = &requestError{status: http.StatusInternalServerError, response: errInternal, err: err}
	}

	if reqErr.status >= http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Warn(msg, "status", reqErr.status)
	}
	ctx.AbortWithStatusJSON(reqErr.status, reqErr.response)
}
