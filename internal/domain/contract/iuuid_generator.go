package contract

type IUUIDGenerator interface {
	NewUUID() string
	// IsValid reports whether s is a well-formed identifier. Used to reject
	// malformed sub-document ids before any store read.
	IsValid(s string) bool
}
