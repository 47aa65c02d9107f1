package validator

// MetadataPolicy names how ContentBlock's Other variant and unknown _meta
// keys are to be treated. Run does not read it: it produces no findings
// for Other content blocks or _meta keys under any policy.
type MetadataPolicy int

const (
	MetadataDisallow MetadataPolicy = iota
	MetadataAllowOpaque
	MetadataAllowKinds
)

// RuntimeProfile is the strictness knob set.
type RuntimeProfile struct {
	Metadata MetadataPolicy
	// AllowedKinds holds the content-block "type" strings permitted as
	// Other under MetadataAllowKinds; like Metadata, Run does not read it.
	AllowedKinds map[string]bool

	MaxMessageBytes *uint64

	ToolSurfaceEnabled bool

	// StrictSchema is carried on the profile but Run does not read it: the
	// validator emits no findings for unknown fields on known payloads,
	// whether it is true or false.
	StrictSchema bool
}

// DefaultProfile mirrors the lane defaults most runtimes want: Protocol,
// Session, and Transport lanes gate; ToolSurface is opt-in; Implementation
// is on but advisory.
func DefaultProfile() RuntimeProfile {
	return RuntimeProfile{
		Metadata:           MetadataAllowOpaque,
		ToolSurfaceEnabled: false,
		StrictSchema:       false,
	}
}
