package matching

import "math"

// CosineSimilarity computes the cosine of the angle between two
// temperament vectors, on [-1,1]. Empty or length-mismatched vectors
// yield 0: absent or inconsistent data is "no signal", not an error.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

//Personal.AI order the ending
