package entities

// ResourceExposurePolicy makes bundled assets fetchable by page contexts.
// Exposure is all-or-nothing per matching page: any page whose URL matches
// the scope may fetch any resource matching the globs.
type ResourceExposurePolicy struct {
	Resources []string `json:"resources" yaml:"resources" validate:"min=1,dive,required"`
	Matches   []string `json:"matches" yaml:"matches" validate:"min=1,dive,required"`
}
