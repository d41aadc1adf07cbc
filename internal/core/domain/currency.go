package domain

// Unit describes one of the display units of a currency, e.g. ARK vs
// arktoshi. Magnitude is the power of ten between the unit and the chain's
// base unit.
type Unit struct {
	Name      string
	Code      string
	Magnitude int
}

// Currency is the immutable descriptor of a supported crypto currency. It is
// shared configuration data and must never be mutated.
type Currency struct {
	ID     string
	Family string
	Name   string
	Ticker string
	Units  []Unit
	// DerivationModes is the catalog of HD derivation rules applicable to
	// this currency, default mode first.
	DerivationModes []DerivationMode
}

// DefaultUnit returns the preferred display unit of the currency.
func (c Currency) DefaultUnit() Unit {
	if len(c.Units) <= 0 {
		return Unit{}
	}
	return c.Units[0]
}
