package nn

// Option configures Neuron, Layer and MultilayerPerceptron construction.
type Option func(*options)

type options struct {
	init         Initializer
	activation   Activation
	nonLinear    bool
	linearOutput bool
}

// resolveOptions applies opts over the defaults: tanh activation,
// non-linear neurons and a seeded default initializer. The initializer is
// created once per constructor call so every neuron of a module draws from
// the same sequence.
func resolveOptions(opts []Option) options {
	o := options{
		activation: Tanh,
		nonLinear:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.init == nil {
		o.init = defaultInitializer()
	}
	return o
}

// WithInitializer sets the source of initial weights and biases.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		o.init = init
	}
}

// WithActivation selects the non-linearity applied by non-linear neurons.
func WithActivation(act Activation) Option {
	return func(o *options) {
		o.activation = act
	}
}

// WithNonLinear sets whether neurons apply their activation (default true).
func WithNonLinear(nonLinear bool) Option {
	return func(o *options) {
		o.nonLinear = nonLinear
	}
}

// WithLinearOutput makes the last layer of a MultilayerPerceptron linear.
// Ignored by Neuron and Layer.
func WithLinearOutput() Option {
	return func(o *options) {
		o.linearOutput = true
	}
}
