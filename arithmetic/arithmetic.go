package arithmetic

import (
	"math/big"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"app":       "congruence",
	"component": "arithmetic",
})

// Gcd 最大公約数を求める(常に0以上)
func Gcd(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	// 剰余は被除数の符号に従うので負数になりうる
	return x.Abs(x)
}

// Mod 剰余の代表元を [0, |m|) の範囲で求める
// m が 0 の場合は panic する(big.Int.Mod と同じ)
func Mod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, new(big.Int).Abs(m))
}

// Rem 切り捨て除算の剰余(符号は被除数に従う)
func Rem(x, y *big.Int) *big.Int {
	return new(big.Int).Rem(x, y)
}

// Quo 0方向への切り捨て除算
func Quo(x, y *big.Int) *big.Int {
	return new(big.Int).Quo(x, y)
}
