package api

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode" binding:"required"`
}

type DecodeImageResponse struct {
	Message string `json:"message"`
}
