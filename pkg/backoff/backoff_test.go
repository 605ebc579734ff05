package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ms(values ...int64) []time.Duration {
	out := make([]time.Duration, len(values))
	for i, v := range values {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

func TestFixed(t *testing.T) {
	assert.Equal(t, ms(100, 100, 100), Collect(NewFixed(100*time.Millisecond), 3))
}

func TestExponential(t *testing.T) {
	tests := []struct {
		name string
		s    Strategy
		want []time.Duration
	}{
		{
			name: "base only",
			s:    NewExponential(10),
			want: ms(10, 100, 1000),
		},
		{
			name: "with factor",
			s:    NewExponential(2).WithFactor(1000),
			want: ms(2000, 4000, 8000, 16000),
		},
		{
			name: "with max delay",
			s:    NewExponential(10).WithMaxDelay(500 * time.Millisecond),
			want: ms(10, 100, 500, 500, 500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collect(tt.s, len(tt.want)))
		})
	}
}

func TestExponential_Saturates(t *testing.T) {
	s := NewExponential(math.MaxUint64)
	for _, d := range Collect(s, 4) {
		assert.Equal(t, time.Duration(math.MaxInt64), d)
	}
}

func TestExponential_MonotoneUntilCap(t *testing.T) {
	maxDelay := 90 * time.Second
	s := NewExponential(3).WithFactor(7).WithMaxDelay(maxDelay)

	values := Collect(s, 64)
	require.Len(t, values, 64)

	capped := false
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], values[i-1])
		if values[i] == maxDelay {
			capped = true
		}
		if capped {
			assert.Equal(t, maxDelay, values[i])
		}
	}
	assert.True(t, capped)
}

func TestFibonacci(t *testing.T) {
	assert.Equal(t, ms(10, 10, 20, 30, 50, 80, 130), Collect(NewFibonacci(10), 7))
}

func TestFibonacci_MaxDelay(t *testing.T) {
	s := NewFibonacci(10).WithMaxDelay(50 * time.Millisecond)
	assert.Equal(t, ms(10, 10, 20, 30, 50, 50, 50), Collect(s, 7))
}

func TestFibonacci_Factor(t *testing.T) {
	assert.Equal(t, ms(20, 20, 40, 60), Collect(NewFibonacci(10).WithFactor(2), 4))
}

func TestFibonacci_Saturates(t *testing.T) {
	s := NewFibonacci(math.MaxUint64 / 2)
	values := Collect(s, 6)
	for i := 1; i < len(values); i++ {
		assert.GreaterOrEqual(t, values[i], values[i-1])
	}
	assert.Equal(t, time.Duration(math.MaxInt64), values[len(values)-1])
}

func TestTake(t *testing.T) {
	s := Take(NewFixed(time.Second), 2)

	_, ok := s.Next()
	assert.True(t, ok)
	_, ok = s.Next()
	assert.True(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestJitter(t *testing.T) {
	for range 100 {
		d := Jitter(time.Second)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, time.Second)
	}
}

func TestJitterRange(t *testing.T) {
	fn := JitterRange(0.5, 1.5)
	for range 100 {
		d := fn(time.Second)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.Less(t, d, 1500*time.Millisecond)
	}
}

func TestWithJitter_PreservesExhaustion(t *testing.T) {
	s := WithJitter(Take(NewFixed(time.Second), 1), Jitter)
	_, ok := s.Next()
	assert.True(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestOptions_Build(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    []time.Duration
		wantErr bool
	}{
		{
			name: "default kind is fibonacci",
			opts: Options{Base: 10 * time.Millisecond, Retries: 4},
			want: ms(10, 10, 20, 30),
		},
		{
			name: "fixed",
			opts: Options{Kind: KindFixed, Base: time.Second, Retries: 2},
			want: []time.Duration{time.Second, time.Second},
		},
		{
			name: "exponential with cap",
			opts: Options{Kind: "Exponential", Base: 10 * time.Millisecond, MaxDelay: 200 * time.Millisecond, Retries: 4},
			want: ms(10, 100, 200, 200),
		},
		{
			name: "zero retries",
			opts: Options{Kind: KindFixed, Base: time.Second},
			want: []time.Duration{},
		},
		{
			name:    "unknown kind",
			opts:    Options{Kind: "linear"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.opts.Build()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, Collect(s, 10))
		})
	}
}

func TestOptions_BuildReturnsFreshState(t *testing.T) {
	opts := Options{Kind: KindFibonacci, Base: 10 * time.Millisecond, Retries: 3}

	first, err := opts.Build()
	require.NoError(t, err)
	Collect(first, 3)

	second, err := opts.Build()
	require.NoError(t, err)
	assert.Equal(t, ms(10, 10, 20), Collect(second, 3))
}
