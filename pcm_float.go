package pcmwav

import "math"

const (
	maxPCMInt8Unsigned = 255
	floatPCM8Center    = 127.5
	floatPCM8Scale     = 127.5
	scalePCMInt16      = 32768.0
	scalePCMInt24      = 8388608.0
	scalePCMInt32      = 2147483648.0
	scalePCMInt48      = 140737488355328.0
	scalePCMInt64      = 9223372036854775808.0
	maxPCMInt16        = 32767
	maxPCMInt24        = 8388607
	maxPCMInt32        = 2147483647
)

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func normalizePCMInt(sample int64, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - floatPCM8Center) / floatPCM8Scale)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 24:
		return float32(float64(sample) / scalePCMInt24)
	case 32:
		return float32(float64(sample) / scalePCMInt32)
	case 48:
		return float32(float64(sample) / scalePCMInt48)
	case 64:
		return float32(float64(sample) / scalePCMInt64)
	default:
		return 0
	}
}

func float32ToPCMUint8(value float32) uint8 {
	value = clampFloat32(value, -1, 1)

	scaled := int(math.Round(float64((value + 1.0) * floatPCM8Scale)))
	if scaled < 0 {
		return 0
	}

	if scaled > maxPCMInt8Unsigned {
		return maxPCMInt8Unsigned
	}

	return uint8(scaled)
}

func float32ToPCMInt32(value float32, bitDepth int) int32 {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 16:
		return clampScaledPCM(value, scalePCMInt16, maxPCMInt16)
	case 24:
		return clampScaledPCM(value, scalePCMInt24, maxPCMInt24)
	case 32:
		return clampScaledPCM(value, scalePCMInt32, maxPCMInt32)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int32 {
	sample := min(int64(math.Round(float64(value)*scale)), max)

	low := int64(-scale)
	if sample < low {
		sample = low
	}

	return int32(sample)
}
