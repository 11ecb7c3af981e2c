package model

import (
	"time"
)

type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	MessageBytes        int           `json:"message_bytes"`
	CapacityBytes       int           `json:"capacity_bytes"`
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
	MessageBytes int           `json:"message_bytes"`
}
