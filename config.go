package beryl

// Engine-wide defaults, collected in one place.

// WorldSpaceUp is +Z; the camera orbit math assumes it is not the X axis.
var WorldSpaceUp = Vector{0, 0, 1}

const (
	// Near and far planes for the pass-based renderer.
	NearPlane = 0.01
	FarPlane  = 100.0

	// DefaultFieldOfView is in degrees.
	DefaultFieldOfView = 75.0

	// Ray march tuning for the geometry pass.
	MarchMaxSteps   = 128
	MarchHitEpsilon = 1e-4

	// NormalEpsilon is the central-difference step for SDF normals.
	NormalEpsilon = 1e-4
)

// BackgroundColor is what the lighting pass writes where no surface was hit.
var BackgroundColor = Color{0.12, 0.12, 0.16, 1}
