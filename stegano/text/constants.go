package text

/*
 * placement modes for the unprintable rune carrier.
 */
const (
	PrefixMode = uint8(0)
	SuffixMode = uint8(1)
	EmbedMode = uint8(2)

	// sentence level granularity for the case carrier
	GreedyMode = uint8(8)
	StraightMode = uint8(4)
	InverseMode = uint8(2)
)
