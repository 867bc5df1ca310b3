package window

import "github.com/ushitora-anqou/sdltour/subsystem"

// Feature is a set of optional libraries a scene relies on.
type Feature uint8

const (
	FeatureImages Feature = 1 << iota
	FeatureFonts
	FeatureAudio
)

// Has reports whether f contains every feature of want. Every set has the
// empty one.
func (f Feature) Has(want Feature) bool {
	return f&want == want
}

type featured struct {
	need Feature
	sub  subsystem.Subsystem
}

// selectSubsystems keeps, in order, the entries whose need is covered by
// features.
func selectSubsystems(features Feature, all []featured) *subsystem.Stack {
	subs := []subsystem.Subsystem{}
	for _, entry := range all {
		if features.Has(entry.need) {
			subs = append(subs, entry.sub)
		}
	}
	return subsystem.NewStack(subs...)
}
