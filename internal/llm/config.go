package llm

// DefaultModel is the Gemini model used for grading when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature is kept low so grading output stays consistent and
// rubric-literal across runs.
const DefaultTemperature = 0.2

// Config holds the model configuration for a grading run.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default grading configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// WithModel returns a copy of the config using the given model name.
// An empty name leaves the config unchanged.
func (c *Config) WithModel(model string) *Config {
	next := *c
	if model != "" {
		next.Model = model
	}
	return &next
}
