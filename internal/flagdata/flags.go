package flagdata

// Layout describes how a flag's colours are arranged when drawn.
type Layout string

const (
	// LayoutHorizontal stacks the colours as horizontal stripes, top to bottom.
	LayoutHorizontal Layout = "horizontal"
	// LayoutVertical places the colours as vertical stripes, left to right.
	LayoutVertical Layout = "vertical"
	// LayoutCross draws a bordered cross: background, outer cross, inner cross.
	LayoutCross Layout = "cross"
	// LayoutCanton alternates the first two colours as stripes with the third
	// colour filling the top-left corner.
	LayoutCanton Layout = "canton"
)

// Flag defines one country's flag loaded from flags.json.
type Flag struct {
	ID      string   `json:"id"`                // Country identifier (e.g., "France")
	Name    string   `json:"name"`              // Name shown in the prompt
	Label   string   `json:"label"`             // Accessibility description of the flag
	Layout  Layout   `json:"layout"`            // Stripe arrangement
	Colors  []string `json:"colors"`            // Hex colours in layout order
	Weights []int    `json:"weights,omitempty"` // Relative stripe sizes, equal when empty
}

// StripeWeights returns the relative size of each colour band.
func (f *Flag) StripeWeights() []int {
	if len(f.Weights) == len(f.Colors) {
		return f.Weights
	}
	weights := make([]int, len(f.Colors))
	for i := range weights {
		weights[i] = 1
	}
	return weights
}

// FlagsFile represents the structure of flags.json.
type FlagsFile struct {
	Flags []Flag `json:"flags"`
}

// LoadFlags loads flag definitions from the embedded flags.json file.
func LoadFlags() ([]Flag, error) {
	file, err := decode[FlagsFile]("flags.json")
	if err != nil {
		return nil, err
	}
	return file.Flags, nil
}
