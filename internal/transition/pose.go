package transition

// Pose is the animated state of the stage element.
//
// OffsetY is measured in terminal rows; positive moves the element down.
// Scale multiplies the element width around its centre.
type Pose struct {
	Opacity float64
	OffsetY float64
	Scale   float64
}

var (
	// Rest is the settled pose of the visible stage element.
	Rest = Pose{Opacity: 1, OffsetY: 0, Scale: 1}
	// ExitPose is where the outgoing element ends: faded, lifted, shrunk.
	ExitPose = Pose{Opacity: 0, OffsetY: -1, Scale: 0.98}
	// EnterPose is where the incoming element starts: faded, lowered, shrunk.
	EnterPose = Pose{Opacity: 0, OffsetY: 1, Scale: 0.98}
)

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp interpolates between two poses.
func (p Pose) Lerp(to Pose, t float64) Pose {
	return Pose{
		Opacity: lerp(p.Opacity, to.Opacity, t),
		OffsetY: lerp(p.OffsetY, to.OffsetY, t),
		Scale:   lerp(p.Scale, to.Scale, t),
	}
}
