package collision

// Empirically tuned thresholds. Movement feel depends on the exact values,
// so they are kept as named constants rather than derived.
const (
	// DefaultCornerInset is the fraction of the cross-axis size by which the
	// two corner samples are pulled in from the box edges.
	DefaultCornerInset = 0.25

	// DefaultPerpendicularTolerance is the fraction of an obstacle's
	// cross-axis size within which a mover's center counts as aimed at it.
	DefaultPerpendicularTolerance = 0.5

	// DefaultObstacleMargin is the inset applied to every side of an
	// obstacle box before testing.
	DefaultObstacleMargin = 2.0

	// DefaultMinStep is the smallest distance a non-final resolver
	// iteration may move, and the look-ahead used for probing.
	DefaultMinStep = 1.0
)

// Tuning holds the resolver and detector thresholds
type Tuning struct {
	CornerInset            float64 `json:"corner_inset"`
	PerpendicularTolerance float64 `json:"perpendicular_tolerance"`
	ObstacleMargin         float64 `json:"obstacle_margin"`
	MinStep                float64 `json:"min_step"`
}

// DefaultTuning returns the shipped thresholds
func DefaultTuning() Tuning {
	return Tuning{
		CornerInset:            DefaultCornerInset,
		PerpendicularTolerance: DefaultPerpendicularTolerance,
		ObstacleMargin:         DefaultObstacleMargin,
		MinStep:                DefaultMinStep,
	}
}

// normalized replaces values that would break termination or sampling
// with the defaults.
func (t Tuning) normalized() Tuning {
	d := DefaultTuning()
	if !(t.MinStep > 0) {
		t.MinStep = d.MinStep
	}
	if !(t.CornerInset >= 0 && t.CornerInset <= 0.5) {
		t.CornerInset = d.CornerInset
	}
	if !(t.PerpendicularTolerance >= 0) {
		t.PerpendicularTolerance = d.PerpendicularTolerance
	}
	if !(t.ObstacleMargin >= 0) {
		t.ObstacleMargin = d.ObstacleMargin
	}
	return t
}
