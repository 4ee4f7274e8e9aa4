package backoff

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

// 成功パターンのテスト
func TestBackoffWrapper_Success(t *testing.T) {
	ctx := context.Background()
	counter := int32(0)

	op := func() (string, error) {
		if atomic.AddInt32(&counter, 1) < 3 {
			return "", errors.New("一時エラー")
		}
		return "ok", nil
	}

	bw := NewBackoff[string](ctx, 0, 0, 1, 5)
	bw.SetDoOperation(op)

	called := int32(0)
	bw.SetNotify(func(err error, duration time.Duration) {
		atomic.AddInt32(&called, 1)
	})

	got, err := bw.Exec()

	assert.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), counter)
	assert.Equal(t, int32(2), called)
}

// 失敗パターンのテスト
func TestBackoffWrapper_Failure(t *testing.T) {
	ctx := context.Background()
	counter := int32(0)

	op := func() (int, error) {
		atomic.AddInt32(&counter, 1)
		return 0, errors.New("常にエラー")
	}

	bw := NewBackoff[int](ctx, 0, 0, 1, 3)
	bw.SetDoOperation(op)

	var lastErr error
	bw.SetNotify(func(err error, duration time.Duration) {
		lastErr = err
	})

	_, err := bw.Exec()

	assert.Error(t, err)
	assert.LessOrEqual(t, counter, int32(3))
	assert.Greater(t, counter, int32(1))
	if assert.Error(t, lastErr) {
		assert.Equal(t, "常にエラー", lastErr.Error())
	}
}

// Permanent で包んだエラーはリトライしない
func TestBackoffWrapper_Permanent(t *testing.T) {
	ctx := context.Background()
	counter := int32(0)
	sentinel := errors.New("入力終了")

	bw := NewBackoff[int](ctx, 0, 0, 1, 5)
	bw.SetDoOperation(func() (int, error) {
		atomic.AddInt32(&counter, 1)
		return 0, Permanent(sentinel)
	})

	_, err := bw.Exec()

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, int32(1), counter)
}
