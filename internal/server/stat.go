package server

import (
	"github.com/dustin/go-humanize"
	"psteg/pkg/model"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman               string `json:"setup_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	MessageHuman             string `json:"message_human"`
	CapacityHuman            string `json:"capacity_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	MessageHuman      string `json:"message_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		SetupHuman:               encodeStats.Setup.String(),
		DataEncodingHuman:        encodeStats.DataEncoding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
		MessageHuman:             humanize.Bytes(uint64(encodeStats.MessageBytes)),
		CapacityHuman:            humanize.Bytes(uint64(encodeStats.CapacityBytes)),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		MessageHuman:      humanize.Bytes(uint64(decodeStats.MessageBytes)),
	}
}
