// Package block computes per-block statistics of single-precision sample
// blocks. Nothing here persists between blocks; every function is a pure
// pass over its input.
//
// Accumulation stays in float32 to match the arithmetic of the embedded
// targets this front end models.
package block

import "math"

// Mean returns the arithmetic mean of the block. Returns 0 for an empty block.
func Mean(block []float32) float32 {
	if len(block) == 0 {
		return 0
	}

	var sum float32
	for _, x := range block {
		sum += x
	}

	return sum / float32(len(block))
}

// MeanStdDev returns the mean and the population standard deviation of the
// block in one two-pass sweep: variance is the mean of squared deviations
// from the mean. Returns (0, 0) for an empty block.
func MeanStdDev(block []float32) (mean, std float32) {
	if len(block) == 0 {
		return 0, 0
	}

	mean = Mean(block)

	var sumSq float32
	for _, x := range block {
		d := x - mean
		sumSq += d * d
	}

	variance := sumSq / float32(len(block))

	return mean, float32(math.Sqrt(float64(variance)))
}

// RMS returns the root-mean-square of the block. Returns 0 for an empty block.
func RMS(block []float32) float32 {
	if len(block) == 0 {
		return 0
	}

	var sumSq float32
	for _, x := range block {
		sumSq += x * x
	}

	return float32(math.Sqrt(float64(sumSq / float32(len(block)))))
}

// Peak returns the peak absolute amplitude of the block.
func Peak(block []float32) float32 {
	if len(block) == 0 {
		return 0
	}

	peak := abs32(block[0])
	for _, x := range block[1:] {
		if a := abs32(x); a > peak {
			peak = a
		}
	}

	return peak
}

// MinMax returns the minimum and maximum values of the block.
// Returns (0, 0) for an empty block.
func MinMax(block []float32) (minVal, maxVal float32) {
	if len(block) == 0 {
		return 0, 0
	}

	minVal, maxVal = block[0], block[0]
	for _, x := range block[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}

	return minVal, maxVal
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}
