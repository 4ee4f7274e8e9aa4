package report

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"

	"congruence-pkg/arithmetic"
	"congruence-pkg/congruence"
	"congruence-pkg/parser"
)

// Banner 起動時の案内
const Banner = "I am going to solve a congruence of the form Ax ≡ B (mod C)"

// Options 出力の設定
type Options struct {
	// MaxListed 解を列挙する最大個数(0以下なら列挙しない)
	MaxListed int
}

// FormatEquation R = N·X ± M·Q の形に整形する
// M が負の場合は符号を外に出して "- |M|" と表示する
func FormatEquation(e arithmetic.Equation) string {
	if e.M.Sign() >= 0 {
		return fmt.Sprintf("%s = %s·%s + %s·%s", e.R, e.N, e.X, e.M, e.Q)
	}
	return fmt.Sprintf("%s = %s·%s - %s·%s", e.R, e.N, e.X, new(big.Int).Neg(e.M), e.Q)
}

// FormatCongruence Ax ≡ B (mod C)
func FormatCongruence(a, b, c *big.Int) string {
	return fmt.Sprintf("%sx ≡ %s (mod %s)", a, b, c)
}

// Text 結果を人が読める形で書き出す
func Text(w io.Writer, res *congruence.Result, opts Options) error {
	var sb strings.Builder

	for _, n := range res.Notices {
		if n.Kind != congruence.NoticeReduced {
			continue
		}
		fmt.Fprintf(&sb, "The remainder %s is outside [0, %s). This equation can never have solutions as p %% q lies in [0, q) for every p.\n", n.Original, res.Modulus)
		fmt.Fprintf(&sb, "I will instead attempt to solve the congruence %s\n", FormatCongruence(res.A, n.Reduced, res.C))
	}

	switch res.Kind {
	case congruence.AlwaysTrue:
		sb.WriteString("The congruence holds for all x ∈ ℤ\n")

	case congruence.NoSolution:
		fmt.Fprintf(&sb, "\nIn Bezout's identity form: %s\n\n", FormatEquation(*res.Bezout))
		fmt.Fprintf(&sb, "There are no solutions because %s is not a multiple of the HCF, which is %s\n", res.B, res.Gcd)

	case congruence.Unique:
		fmt.Fprintf(&sb, "\nIn Bezout's identity form: %s\n\n", FormatEquation(*res.Bezout))
		fmt.Fprintf(&sb, "The solution is x ≡ %s (mod %s)\n", res.Residue, res.Modulus)

		if opts.MaxListed > 0 && res.Gcd.Cmp(big.NewInt(1)) > 0 {
			fmt.Fprintf(&sb, "Equivalently x ≡ %s (mod %s): %s\n",
				arithmetic.Mod(res.Residue, res.Period), res.Period, listSolutions(res, opts.MaxListed))
		}

	default:
		return errors.Newf("unknown result kind %d", res.Kind)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

func listSolutions(res *congruence.Result, limit int) string {
	xs := res.Solutions(limit)
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}

	out := strings.Join(parts, ", ")
	if big.NewInt(int64(len(xs))).Cmp(res.Gcd) < 0 {
		out += ", ..."
	}
	return out
}

// Equation ベズーの等式の JSON 表現
type Equation struct {
	R string `json:"r"`
	N string `json:"n"`
	X string `json:"x"`
	M string `json:"m"`
	Q string `json:"q"`
}

// Notice 正規化の JSON 表現
type Notice struct {
	Kind     string `json:"kind"`
	Original string `json:"original"`
	Reduced  string `json:"reduced"`
}

// Document 結果の JSON 表現
// 多倍長整数は精度を落とさないよう文字列で持つ
type Document struct {
	RunID     string    `json:"run_id,omitempty"`
	Kind      string    `json:"kind"`
	A         string    `json:"a"`
	B         string    `json:"b"`
	C         string    `json:"c"`
	Residue   string    `json:"residue,omitempty"`
	Modulus   string    `json:"modulus"`
	Period    string    `json:"period,omitempty"`
	Gcd       string    `json:"gcd,omitempty"`
	Bezout    *Equation `json:"bezout,omitempty"`
	Notices   []Notice  `json:"notices,omitempty"`
	Solutions []string  `json:"solutions,omitempty"`
}

// NewDocument Result から Document を組み立てる
func NewDocument(runID string, res *congruence.Result, opts Options) Document {
	doc := Document{
		RunID:   runID,
		Kind:    res.Kind.String(),
		A:       res.A.String(),
		B:       res.B.String(),
		C:       res.C.String(),
		Modulus: res.Modulus.String(),
		Residue: str(res.Residue),
		Period:  str(res.Period),
		Gcd:     str(res.Gcd),
	}

	if res.Bezout != nil {
		doc.Bezout = &Equation{
			R: res.Bezout.R.String(),
			N: res.Bezout.N.String(),
			X: res.Bezout.X.String(),
			M: res.Bezout.M.String(),
			Q: res.Bezout.Q.String(),
		}
	}

	for _, n := range res.Notices {
		doc.Notices = append(doc.Notices, Notice{
			Kind:     "reduced",
			Original: n.Original.String(),
			Reduced:  n.Reduced.String(),
		})
	}

	if opts.MaxListed > 0 {
		for _, x := range res.Solutions(opts.MaxListed) {
			doc.Solutions = append(doc.Solutions, x.String())
		}
	}

	return doc
}

func str(x *big.Int) string {
	if x == nil {
		return ""
	}
	return x.String()
}

// JSON Document を p で変換して書き出す
func JSON(w io.Writer, p parser.Parser, doc Document) error {
	b, err := p.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
