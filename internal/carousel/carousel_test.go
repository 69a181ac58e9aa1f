package carousel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestCarousel(t *testing.T, interval time.Duration) *Carousel {
	t.Helper()
	c, err := New(DefaultSlides(), interval)
	require.NoError(t, err)
	return c
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, time.Second)
	assert.ErrorIs(t, err, ErrNoSlides)

	_, err = New(DefaultSlides(), 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestDefaults(t *testing.T) {
	c := newTestCarousel(t, DefaultInterval)
	assert.Len(t, c.Slides(), 3)
	assert.Equal(t, 3*time.Second, c.Interval())
}

func TestNext_WrapsAfterLastSlide(t *testing.T) {
	c := newTestCarousel(t, DefaultInterval)

	assert.Equal(t, 1, c.Next(0))
	assert.Equal(t, 2, c.Next(1))
	assert.Equal(t, 0, c.Next(2))
	assert.Equal(t, 0, c.Next(-1))
}

func TestIndexAt(t *testing.T) {
	c := newTestCarousel(t, DefaultInterval)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{-time.Second, 0},
		{0, 0},
		{2999 * time.Millisecond, 0},
		{3 * time.Second, 1},
		{6 * time.Second, 2},
		{9 * time.Second, 0},
		{10 * time.Minute, 200 % 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IndexAt(tt.elapsed), "elapsed %s", tt.elapsed)
	}
}

func TestSlidesReturnsCopy(t *testing.T) {
	c := newTestCarousel(t, DefaultInterval)
	slides := c.Slides()
	slides[0].Title = "changed"
	assert.NotEqual(t, "changed", c.Slides()[0].Title)
}

var errEnough = errors.New("enough")

func TestRun_CyclesIndefinitely(t *testing.T) {
	c := newTestCarousel(t, 2*time.Millisecond)

	var seen []int
	err := c.Run(context.Background(), 0, func(index int) error {
		seen = append(seen, index)
		if len(seen) == 7 {
			return errEnough
		}
		return nil
	})

	assert.ErrorIs(t, err, errEnough)
	assert.Equal(t, []int{1, 2, 0, 1, 2, 0, 1}, seen)
}

func TestRun_StopsOnCancel(t *testing.T) {
	c := newTestCarousel(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, 1, func(int) error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
