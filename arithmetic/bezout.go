package arithmetic

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// ErrDegenerateChain 剰余列からベズーの等式を組み立てられなかった場合のエラー
var ErrDegenerateChain = errors.New("degenerate euclidean chain")

// ErrSubstitution 代入先の式と代入元の式がつながっていない場合のエラー
var ErrSubstitution = errors.New("substitution precondition violated")

// minSequenceLen ベズーの等式を作るのに必要な剰余列の長さ
const minSequenceLen = 3

// Equation R = N*X + M*Q の形の一次式
// 生成後は変更しない。代入は新しい Equation を返す。
type Equation struct {
	R *big.Int
	X *big.Int
	Q *big.Int
	N *big.Int
	M *big.Int
}

// Holds R = N*X + M*Q が厳密に成り立つか
func (e Equation) Holds() bool {
	if e.R == nil || e.X == nil || e.Q == nil || e.N == nil || e.M == nil {
		return false
	}
	nx := new(big.Int).Mul(e.N, e.X)
	mq := new(big.Int).Mul(e.M, e.Q)
	return nx.Add(nx, mq).Cmp(e.R) == 0
}

// Equal 全ての項が等しいか
func (e Equation) Equal(o Equation) bool {
	return cmpNil(e.R, o.R) && cmpNil(e.X, o.X) && cmpNil(e.Q, o.Q) &&
		cmpNil(e.N, o.N) && cmpNil(e.M, o.M)
}

func cmpNil(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// step 1回の割り算 x = (x/q)*q + r を r = 1*x - (x/q)*q として表す
func step(r, x, q *big.Int) (Equation, error) {
	if q.Sign() == 0 {
		return Equation{}, errors.Wrapf(ErrDegenerateChain, "zero divisor while expressing %s", r)
	}
	m := new(big.Int).Quo(x, q)
	e := Equation{
		R: new(big.Int).Set(r),
		X: new(big.Int).Set(x),
		Q: new(big.Int).Set(q),
		N: big.NewInt(1),
		M: m.Neg(m),
	}
	if !e.Holds() {
		return Equation{}, errors.Wrapf(ErrDegenerateChain, "%s is not the remainder of %s / %s", r, x, q)
	}
	return e, nil
}

// Substitute e1 の Q 項に e2 (1段上流の式) を代入した式を返す
//
//	e1: R1 = N1*X1 + M1*Q1
//	e2: Q1 = N2*X2 + M2*Q2
//	=>  R1 = (M1*N2)*X2 + (N1 + M1*M2)*Q2
func Substitute(e2, e1 Equation) (Equation, error) {
	if e2.R.Cmp(e1.Q) != 0 {
		return Equation{}, errors.Wrapf(ErrSubstitution, "upstream remainder %s does not match %s", e2.R, e1.Q)
	}

	n := new(big.Int).Mul(e1.M, e2.N)
	m := new(big.Int).Mul(e1.M, e2.M)
	m.Add(m, e1.N)

	return Equation{
		R: new(big.Int).Set(e1.R),
		X: new(big.Int).Set(e2.X),
		Q: new(big.Int).Set(e2.Q),
		N: n,
		M: m,
	}, nil
}

// Solve 剰余列を末尾から畳み込み、最大公約数を先頭2項の一次結合で表す
// seq は Sequence の戻り値を想定しており、呼び出し元のスライスは変更しない。
func Solve(seq []*big.Int) (Equation, error) {
	if len(seq) < minSequenceLen {
		return Equation{}, errors.Wrapf(ErrDegenerateChain, "sequence too short: %d elements", len(seq))
	}

	// 末尾からスタックとして取り出す
	i := len(seq) - 1
	hcf := seq[i]
	q := seq[i-1]
	x := seq[i-2]
	i -= 3

	e1, err := step(hcf, x, q)
	if err != nil {
		return Equation{}, err
	}

	for ; i >= 0; i-- {
		x2 := seq[i]

		// x2 = (x2/x)*x + q なので q = x2 - (x2/x)*x
		e2, err := step(q, x2, x)
		if err != nil {
			return Equation{}, err
		}

		q, x = x, x2

		e1, err = Substitute(e2, e1)
		if err != nil {
			return Equation{}, errors.Mark(err, ErrDegenerateChain)
		}

		logger.WithFields(logrus.Fields{
			"r": e1.R.String(),
			"n": e1.N.String(),
			"x": e1.X.String(),
			"m": e1.M.String(),
			"q": e1.Q.String(),
		}).Debug("substituted")
	}

	return e1, nil
}

// ExtendedGCD Sequence と Solve をまとめて実行する
func ExtendedGCD(a, b *big.Int) (Equation, error) {
	return Solve(Sequence(a, b))
}
