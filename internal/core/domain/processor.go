package domain

// ProcessorID identifies one of the two upstream payment processors.
type ProcessorID string

const (
	// ProcessorDefault is the preferred processor with the lower fee.
	ProcessorDefault ProcessorID = "default"
	// ProcessorFallback is the secondary processor with the higher fee.
	ProcessorFallback ProcessorID = "fallback"
)

// Processors lists both upstream identities in preference order.
func Processors() []ProcessorID {
	return []ProcessorID{ProcessorDefault, ProcessorFallback}
}

// Other returns the opposite processor identity.
func (p ProcessorID) Other() ProcessorID {
	if p == ProcessorDefault {
		return ProcessorFallback
	}
	return ProcessorDefault
}

// Valid reports whether p is one of the two known processors.
func (p ProcessorID) Valid() bool {
	return p == ProcessorDefault || p == ProcessorFallback
}

func (p ProcessorID) String() string {
	return string(p)
}
