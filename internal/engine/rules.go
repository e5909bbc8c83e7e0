package engine

// Rules holds the combat tunables. Formula constants are configuration,
// not balance decisions baked into code.
type Rules struct {
	// DefenseConstant is the K in defenseFactor = def / (def + K).
	DefenseConstant float64
	// PassiveStatCap limits passive stat growth to base * (1 + cap/100).
	// Zero disables the cap and keeps unbounded stacking.
	PassiveStatCap float64
}

// DefaultRules returns the tunables used when the config omits them.
func DefaultRules() Rules {
	return Rules{DefenseConstant: 300}
}
