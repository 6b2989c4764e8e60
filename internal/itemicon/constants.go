package itemicon

// Error messages
const (
	ErrMsgNilCatalogue = "catalogue provider is nil"
)
