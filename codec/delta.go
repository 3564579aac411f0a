package codec

// EncodeTimes delta-encodes a trip's time row: the first value is
// stored absolute, each subsequent value as its difference from the
// previous. DecodeTimes is its exact inverse (spec §4.4). Partial trips
// (containing a missing-position sentinel) must be filtered out by the
// caller before encoding — a sentinel value would corrupt the delta
// stream, since a huge absolute value would poison every following
// delta (spec §9).
func EncodeTimes(times []int32) []int32 {
	if len(times) == 0 {
		return nil
	}

	encoded := make([]int32, len(times))
	encoded[0] = times[0]
	for i := 1; i < len(times); i++ {
		encoded[i] = times[i] - times[i-1]
	}
	return encoded
}

// DecodeTimes reverses EncodeTimes via prefix sum.
func DecodeTimes(encoded []int32) []int32 {
	if len(encoded) == 0 {
		return nil
	}

	decoded := make([]int32, len(encoded))
	decoded[0] = encoded[0]
	for i := 1; i < len(encoded); i++ {
		decoded[i] = decoded[i-1] + encoded[i]
	}
	return decoded
}
