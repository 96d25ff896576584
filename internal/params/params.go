package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// HashBytes is the size of a full digest: twice the security
	// parameter, so that digests can be reduced modulo a 256 bit group
	// order without measurable bias.
	HashBytes = 2 * SecBytes
)
