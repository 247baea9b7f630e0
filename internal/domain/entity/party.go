package entity

// Party is implemented by records linking a requester to a provider
// (Request, Inquiry).
type Party interface {
	Requester() string
	ProviderEmail() string
}

// Counterparty returns the side of p that is not viewer.
func Counterparty(p Party, viewer string) string {
	if p.Requester() == viewer {
		return p.ProviderEmail()
	}

	return p.Requester()
}
