package user

// Identity is the authenticated user returned by an auth provider.
// Values are immutable once built.
type Identity struct {
	id          string
	displayName string
}

func NewIdentity(id, displayName string) Identity {
	return Identity{
		id:          id,
		displayName: displayName,
	}
}

func (i Identity) ID() string          { return i.id }
func (i Identity) DisplayName() string { return i.displayName }

func (i Identity) IsZero() bool {
	return i == Identity{}
}
