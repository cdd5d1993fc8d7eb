package match

// Source is anything that can perform an in-place Fisher–Yates shuffle.
// *rand.Rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle returns a uniformly random permutation of the keys 0..n-1.
// The identity permutation is a legal outcome.
func Shuffle(src Source, n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = Key(i)
	}
	src.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

// fixedOrder is a Source that ignores randomness and yields a preset order.
// Used by tests and scripted scenarios that need a known board.
type fixedOrder []Key

// FixedOrder returns a Source whose Shuffle rearranges 0..n-1 into order.
// order must itself be a permutation of 0..n-1 with n == len(order).
func FixedOrder(order ...Key) Source {
	return fixedOrder(order)
}

func (f fixedOrder) Shuffle(n int, swap func(i, j int)) {
	// Selection sort toward the target layout, swaps only.
	pos := make([]Key, n)
	for i := range pos {
		pos[i] = Key(i)
	}
	for i := 0; i < n && i < len(f); i++ {
		want := f[i]
		for j := i; j < n; j++ {
			if pos[j] == want {
				if j != i {
					swap(i, j)
					pos[i], pos[j] = pos[j], pos[i]
				}
				break
			}
		}
	}
}
