package backoff

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"app":       "congruence",
	"component": "backoff",
})

type BackoffWrapper[T any] struct {
	ctx       context.Context
	operation backoff.Operation[T]
	options   []backoff.RetryOption
}

func NewBackoff[T any](ctx context.Context, initialInterval time.Duration, randomizationFactor float64, multiplier float64, maxTries uint) *BackoffWrapper[T] {
	exponentialBackOff := backoff.NewExponentialBackOff()

	// リトライの初期間隔
	exponentialBackOff.InitialInterval = initialInterval
	// リトライ間隔を決めるランダム値
	exponentialBackOff.RandomizationFactor = randomizationFactor
	// リトライ間隔を決める乗数
	exponentialBackOff.Multiplier = multiplier

	options := []backoff.RetryOption{backoff.WithBackOff(exponentialBackOff), backoff.WithMaxTries(maxTries)}

	return &BackoffWrapper[T]{
		ctx:     ctx,
		options: options,
	}
}

func (b *BackoffWrapper[T]) SetDoOperation(o backoff.Operation[T]) {
	b.operation = o
}

func (b *BackoffWrapper[T]) SetNotify(n backoff.Notify) {
	b.options = append(b.options, backoff.WithNotify(n))
}

// Exec 成功するか最大回数に達するまで実行する
func (b *BackoffWrapper[T]) Exec() (T, error) {
	v, err := backoff.Retry(b.ctx, b.operation, b.options...)
	if err != nil {
		logger.WithError(err).Debug("処理失敗")
		return v, err
	}
	logger.Debug("処理成功")
	return v, nil
}

// Permanent リトライせずに即座に終了させるエラーで包む
func Permanent(err error) error {
	return backoff.Permanent(err)
}
