package contract

type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
	// GenerateActivationCode returns a 4-digit numeric code as a string.
	GenerateActivationCode() (string, error)
}
