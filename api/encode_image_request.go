package api

type EncodeImageRequest struct {
	ImageToEncode  []byte `json:"image_to_encode" binding:"required"`
	Message        string `json:"message"`
	PngCompression string `json:"png_compression" example:"best"`
}

type EncodeImageResponse struct {
	EncodedImage  []byte `json:"encoded_image"`
	MessageBytes  int    `json:"message_bytes"`
	CapacityBytes int    `json:"capacity_bytes"`
}
