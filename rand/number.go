package rand

import (
	"crypto/rand"
	"math/big"
)

var one = big.NewInt(1)

// BigIntBetweenInclusive 特定範囲からランダムな多倍長整数を取得
func BigIntBetweenInclusive(min, max *big.Int, isMinInclusive bool, isMaxInclusive bool) *big.Int {
	if min.Cmp(max) > 0 {
		panic("min must be <= max")
	}

	lo := new(big.Int).Set(min)
	hi := new(big.Int).Set(max)

	// 含まない端は1つ内側へ寄せる
	if !isMinInclusive {
		lo.Add(lo, one)
	}
	if !isMaxInclusive {
		hi.Sub(hi, one)
	}
	if lo.Cmp(hi) > 0 {
		switch {
		case isMinInclusive:
			panic("need min < max for [min, max)")
		case isMaxInclusive:
			panic("need min < max for (min, max]")
		default:
			panic("need max-min >= 2 for (min, max)")
		}
	}

	// [0, hi-lo+1) から引いて lo をずらす
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, one)

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(err)
	}
	return n.Add(n, lo)
}

// NonZeroBigInt [-limit, limit] から0以外の値を取得
func NonZeroBigInt(limit int64) *big.Int {
	if limit < 1 {
		panic("limit must be >= 1")
	}
	for {
		n := BigIntBetweenInclusive(big.NewInt(-limit), big.NewInt(limit), true, true)
		if n.Sign() != 0 {
			return n
		}
	}
}
