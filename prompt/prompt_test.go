package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Int(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxTries uint
		want     string
		wantErr  bool
		wantOut  string
	}{
		{
			name:     "正常系: 整数を読み込む",
			input:    "42\n",
			maxTries: 3,
			want:     "42",
			wantOut:  "Enter A: ",
		},
		{
			name:     "正常系: 前後の空白と負数",
			input:    "  -17 \r\n",
			maxTries: 3,
			want:     "-17",
			wantOut:  "Enter A: ",
		},
		{
			name:     "正常系: 128bitを超える整数",
			input:    "340282366920938463463374607431768211457\n",
			maxTries: 3,
			want:     "340282366920938463463374607431768211457",
			wantOut:  "Enter A: ",
		},
		{
			name:     "正常系: 改行なしの最終行",
			input:    "7",
			maxTries: 3,
			want:     "7",
			wantOut:  "Enter A: ",
		},
		{
			name:     "正常系: 不正な入力の後に再入力",
			input:    "abc\n5\n",
			maxTries: 3,
			want:     "5",
			wantOut:  "Enter A: \"abc\" is not an integer: invalid integer input, please try again\nEnter A: ",
		},
		{
			name:     "異常系: 入力が空",
			input:    "",
			maxTries: 3,
			wantErr:  true,
		},
		{
			name:     "異常系: 回数の上限",
			input:    "x\ny\nz\nw\n",
			maxTries: 2,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := NewReader(strings.NewReader(tt.input), &out, tt.maxTries)

			got, err := r.Int(context.Background(), "A")

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput), "err = %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestReader_Sequential(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("3\n4\n5\n"), &out, 3)
	ctx := context.Background()

	var got []string
	for _, label := range []string{"A", "B", "C"} {
		v, err := r.Int(ctx, label)
		require.NoError(t, err)
		got = append(got, v.String())
	}

	assert.Equal(t, []string{"3", "4", "5"}, got)
	assert.Equal(t, "Enter A: Enter B: Enter C: ", out.String())
}
