package utils

// Argmax returns the index of the largest value, first occurrence on ties.
func Argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// SumInt sums a float slice and truncates to int. Paragraph lengths
// arrive as floats from the dense output tensors.
func SumInt(values []float64) int {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return int(sum)
}

// Mean averages a list of equally sized vectors into one.
func Mean(vectors [][]float64, dim int) []float64 {
	mean := make([]float64, dim)
	if len(vectors) == 0 {
		return mean
	}
	for _, vec := range vectors {
		for j, v := range vec {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(vectors))
	}
	return mean
}
