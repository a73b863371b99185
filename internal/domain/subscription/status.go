package subscription

// Status is the derived activity state of a subscription. It is computed from
// the stored dates on every read and never persisted.
type Status string

const (
	StatusActive    Status = "ATIVO"
	StatusCancelled Status = "CANCELADO"
)

func (s Status) String() string {
	return string(s)
}
