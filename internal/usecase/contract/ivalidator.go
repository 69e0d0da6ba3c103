package usecasecontract

// IValidator validates user-supplied credentials.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
