package nn

import "github.com/born-ml/micrograd/internal/random"

// InitResolution is the number of steps per unit used when drawing initial
// weights from an Initializer: values are RandomInt(-r, r) / r, i.e.
// uniform on [-1, 1] in increments of 1/r.
const InitResolution = 1000

// Initializer supplies the random integers used to initialize weights and
// biases. *random.Random implements it.
type Initializer interface {
	// RandomInt returns an integer in the inclusive range [minVal, maxVal].
	RandomInt(minVal, maxVal int) int
}

// Uniform draws one initial parameter value in [-1, 1].
func Uniform(init Initializer) float64 {
	return float64(init.RandomInt(-InitResolution, InitResolution)) / InitResolution
}

// defaultInitializer is used when no WithInitializer option is given.
// A fixed seed keeps default-constructed networks reproducible.
func defaultInitializer() Initializer {
	return random.New(random.DefaultSeed)
}
