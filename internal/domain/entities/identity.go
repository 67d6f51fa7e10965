package entities

// Identity is the authenticated caller as asserted by the identity provider.
// TokenIdentifier is stable per provider account and links to a Talent.
type Identity struct {
	Subject         string `json:"id"`
	Issuer          string `json:"-"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	TokenIdentifier string `json:"tokenIdentifier"`
}

// TokenIdentifierFor builds the identifier for a provider subject.
func TokenIdentifierFor(issuer, subject string) string {
	return issuer + "|" + subject
}
