// Package cubeiso maps cube file isosurface thresholds to enclosed charge
// fractions and back.
package cubeiso

// Sign selects which grid values participate in a density integration.
type Sign string

const (
	// SignPositive integrates over strictly positive grid values.
	SignPositive Sign = "pos"
	// SignNegative integrates over strictly negative grid values.
	SignNegative Sign = "neg"
)

// Options configures one analysis run. Exactly one of Percent or Isovalue
// must be set.
type Options struct {
	// Percent requests the isovalue enclosing this percentage of the total
	// integrated quantity.
	Percent *float64
	// Isovalue requests the percentage enclosed by this native-unit
	// threshold.
	Isovalue *float64
	// Sign selects the integration sign for density data. Empty defaults to
	// positive. For orbital data the sign may be substituted automatically
	// when the requested sign has no contribution.
	Sign Sign
}

// DefaultOptions returns options with the positive sign preselected.
func DefaultOptions() Options {
	return Options{Sign: SignPositive}
}

// Positive reports whether the positive branch is requested.
func (o Options) Positive() bool {
	return o.Sign != SignNegative
}

// Validate checks that the options describe exactly one request with a
// recognized sign.
func (o Options) Validate() error {
	if o.Sign != "" && o.Sign != SignPositive && o.Sign != SignNegative {
		return &InvalidSignError{Sign: string(o.Sign)}
	}
	if (o.Percent == nil) == (o.Isovalue == nil) {
		return ErrAmbiguousRequest
	}
	return nil
}
