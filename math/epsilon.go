package math

// Thresholds for the degenerate-value fallbacks documented on each call
// site. Singular inputs get a fixed substitute value instead of an error so
// the per-pixel paths stay branch-light and allocation-free.
const (
	// ClipWEpsilon guards the perspective divide: clip positions with
	// |w| below it collapse to the NDC origin.
	ClipWEpsilon float32 = 1e-4

	// AreaEpsilon classifies a triangle as degenerate: signed doubled
	// areas with magnitude below it yield all-zero barycentric weights.
	AreaEpsilon float32 = 1e-4

	// BasisEpsilon (on squared length) detects collapsed camera basis
	// vectors in Mat4LookAt.
	BasisEpsilon float32 = 1e-6
)

// degenerateFallbacks counts how often a fallback substitute was produced
// anywhere in the pipeline. Production code never reads it; tests use it to
// assert that a fallback path was (or was not) taken. The render loop is
// single-threaded, so a plain counter suffices.
var degenerateFallbacks uint64

// NoteDegenerate records that a degenerate-input fallback fired.
func NoteDegenerate() {
	degenerateFallbacks++
}

// DegenerateFallbacks returns the number of fallbacks recorded since the
// last reset.
func DegenerateFallbacks() uint64 {
	return degenerateFallbacks
}

func ResetDegenerateFallbacks() {
	degenerateFallbacks = 0
}
