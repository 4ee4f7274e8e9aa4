package congruence

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"congruence-pkg/arithmetic"
)

var logger = logrus.WithFields(logrus.Fields{
	"app":       "congruence",
	"component": "resolver",
})

// ErrInvalidModulus 法が0の場合のエラー
var ErrInvalidModulus = errors.New("modulus cannot be zero")

// Kind 解の種類
type Kind int

const (
	// Unique 剰余類として一意に定まる
	Unique Kind = iota + 1
	// NoSolution B が最大公約数の倍数でないため解なし
	NoSolution
	// AlwaysTrue 法が1なので任意の整数が解
	AlwaysTrue
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case NoSolution:
		return "no_solution"
	case AlwaysTrue:
		return "always_true"
	default:
		return "unknown"
	}
}

// NoticeKind 計算前の正規化の種類
type NoticeKind int

const (
	// NoticeReduced B が [0, C) の範囲外だったので C で割った余りに置き換えた
	NoticeReduced NoticeKind = iota + 1
)

// Notice エラーではないが利用者に伝えるべき正規化
type Notice struct {
	Kind     NoticeKind
	Original *big.Int
	Reduced  *big.Int
}

// Result Resolve の結果
type Result struct {
	Kind Kind

	// A, B, C は計算に使った値(B は正規化後)
	A *big.Int
	B *big.Int
	C *big.Int

	// Residue は [0, Modulus) の代表元、Modulus は |C|
	Residue *big.Int
	Modulus *big.Int
	// Period 真の解集合の周期 |C|/gcd
	Period *big.Int
	Gcd    *big.Int

	Bezout  *arithmetic.Equation
	Notices []Notice
}

// Resolve 合同式 a*x ≡ b (mod c) を解く
func Resolve(a, b, c *big.Int) (*Result, error) {
	if c.Sign() == 0 {
		return nil, errors.Wrapf(ErrInvalidModulus, "%s*x ≡ %s (mod %s)", a, b, c)
	}

	modulus := new(big.Int).Abs(c)
	res := &Result{
		A:       new(big.Int).Set(a),
		B:       new(big.Int).Set(b),
		C:       new(big.Int).Set(c),
		Modulus: modulus,
	}

	if modulus.Cmp(big.NewInt(1)) == 0 {
		res.Kind = AlwaysTrue
		logger.WithField("c", c.String()).Info("congruence holds for every integer")
		return res, nil
	}

	if b.Sign() < 0 || b.CmpAbs(modulus) >= 0 {
		reduced := arithmetic.Rem(b, c)
		res.Notices = append(res.Notices, Notice{
			Kind:     NoticeReduced,
			Original: new(big.Int).Set(b),
			Reduced:  reduced,
		})
		res.B = reduced

		logger.WithFields(logrus.Fields{
			"original": b.String(),
			"reduced":  reduced.String(),
			"c":        c.String(),
		}).Warn("remainder outside [0, C), reduced before solving")
	}

	bezout, err := arithmetic.ExtendedGCD(res.A, res.C)
	if err != nil {
		return nil, errors.Wrapf(err, "bezout identity of %s and %s", a, c)
	}
	res.Bezout = &bezout
	res.Gcd = new(big.Int).Abs(bezout.R)

	fields := logrus.Fields{
		"a":   res.A.String(),
		"b":   res.B.String(),
		"c":   res.C.String(),
		"gcd": res.Gcd.String(),
	}

	if arithmetic.Rem(res.B, bezout.R).Sign() != 0 {
		res.Kind = NoSolution
		logger.WithFields(fields).Info("no solution")
		return res, nil
	}

	// a*n + c*m = r より a*(n*(b/r)) ≡ b (mod c)
	x := arithmetic.Quo(res.B, bezout.R)
	x.Mul(x, bezout.N)

	res.Kind = Unique
	res.Residue = arithmetic.Mod(x, modulus)
	res.Period = arithmetic.Quo(modulus, res.Gcd)

	fields["residue"] = res.Residue.String()
	logger.WithFields(fields).Info("solved")

	return res, nil
}

// Solutions [0, |C|) に含まれる解を小さい順に最大 limit 個返す(limit <= 0 なら全て)
// 解がない場合と任意の整数が解になる場合は空
func (r *Result) Solutions(limit int) []*big.Int {
	if r == nil || r.Kind != Unique {
		return nil
	}

	// 最小の解は Residue を周期で割った余り
	var out []*big.Int
	x := arithmetic.Mod(r.Residue, r.Period)
	for x.Cmp(r.Modulus) < 0 {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, new(big.Int).Set(x))
		x.Add(x, r.Period)
	}
	return out
}

// Equal 結果が同一か(冪等性の確認用)
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Kind != o.Kind || len(r.Notices) != len(o.Notices) {
		return false
	}
	for i := range r.Notices {
		if r.Notices[i].Kind != o.Notices[i].Kind ||
			!sameInt(r.Notices[i].Original, o.Notices[i].Original) ||
			!sameInt(r.Notices[i].Reduced, o.Notices[i].Reduced) {
			return false
		}
	}
	if (r.Bezout == nil) != (o.Bezout == nil) || (r.Bezout != nil && !r.Bezout.Equal(*o.Bezout)) {
		return false
	}
	return sameInt(r.A, o.A) && sameInt(r.B, o.B) && sameInt(r.C, o.C) &&
		sameInt(r.Residue, o.Residue) && sameInt(r.Modulus, o.Modulus) &&
		sameInt(r.Period, o.Period) && sameInt(r.Gcd, o.Gcd)
}

func sameInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// Satisfies a*x ≡ b (mod c) が成り立つか
func Satisfies(a, b, c, x *big.Int) bool {
	if c.Sign() == 0 {
		return false
	}
	ax := new(big.Int).Mul(a, x)
	return arithmetic.Mod(ax, c).Cmp(arithmetic.Mod(b, c)) == 0
}
