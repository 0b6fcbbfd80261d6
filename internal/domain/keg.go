package domain

// Keg is an installable unit of either kind. The variant set is
// closed: exactly Formula and Cask implement it. Consumers
// discriminate with a type switch.
type Keg interface {
	// Key is the unit's catalog identity: name for formulae, token
	// for casks.
	Key() string

	keg()
}

func (f Formula) Key() string { return f.Name }
func (f Formula) keg()        {}

func (c Cask) Key() string { return c.Token }
func (c Cask) keg()        {}
