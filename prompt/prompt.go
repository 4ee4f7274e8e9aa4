package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"congruence-pkg/backoff"
)

var logger = logrus.WithFields(logrus.Fields{
	"app":       "congruence",
	"component": "prompt",
})

// ErrInvalidInput 整数として読み取れない入力
var ErrInvalidInput = errors.New("invalid integer input")

// Reader 対話的に整数を読み込む
type Reader struct {
	in       *bufio.Reader
	out      io.Writer
	maxTries uint
}

// NewReader maxTries は1項目あたりの入力回数の上限(0なら無制限)
func NewReader(in io.Reader, out io.Writer, maxTries uint) *Reader {
	return &Reader{
		in:       bufio.NewReader(in),
		out:      out,
		maxTries: maxTries,
	}
}

// Int "Enter <label>: " を表示して10進整数を1行読み込む
// 不正な入力は再入力を求め、入力終端に達した場合はすぐに失敗する。
func (r *Reader) Int(ctx context.Context, label string) (*big.Int, error) {
	bw := backoff.NewBackoff[*big.Int](ctx, 0, 0, 1, r.maxTries)
	bw.SetDoOperation(func() (*big.Int, error) {
		return r.readInt(label)
	})
	bw.SetNotify(func(err error, _ time.Duration) {
		fmt.Fprintf(r.out, "%v, please try again\n", err)
		logger.WithError(err).WithField("label", label).Warn("rejected input")
	})

	v, err := bw.Exec()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", label)
	}
	return v, nil
}

func (r *Reader) readInt(label string) (*big.Int, error) {
	fmt.Fprintf(r.out, "Enter %s: ", label)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, backoff.Permanent(errors.Wrap(err, "read input"))
		}
		// 改行なしで終わった最終行は読み取る
		if strings.TrimSpace(line) == "" {
			return nil, backoff.Permanent(errors.Wrap(ErrInvalidInput, "unexpected end of input"))
		}
	}

	s := strings.TrimSpace(line)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "%q is not an integer", s)
	}
	return v, nil
}
