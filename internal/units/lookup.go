package units

// Lookup resolves a predefined unit by its symbol, for rehydrating stored
// maps. Derived units built with Mul/Div/Pow are not registered.
func Lookup(symbol string) (Unit, bool) {
	for _, u := range []Unit{
		Dimensionless, Metre, Centimetre, Parsec,
		Gauss, Microgauss, PerCm3, PerM3,
		Rad, RadPerM2, Arb,
	} {
		if u.symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}
