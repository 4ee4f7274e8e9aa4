package arithmetic

import "math/big"

// Sequence ユークリッドの互除法で得られる剰余列を返す
//
// [a, b, a%b, b%(a%b), ...] の順に並び、末尾の0は含まない。
// つまり最後の要素が最大公約数になる(切り捨て剰余なので負数もありうる)。
//
//	Sequence(30, 18) // [30 18 12 6]
//	Sequence(7, 0)   // [7]
func Sequence(a, b *big.Int) []*big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)

	seq := []*big.Int{x}
	for y.Sign() != 0 {
		seq = append(seq, y)
		x, y = y, new(big.Int).Rem(x, y)
	}
	return seq
}
