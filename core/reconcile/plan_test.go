package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPurger struct {
	batches [][]string
	failOn  int
}

func (p *recordingPurger) Purge(ctx context.Context, keys []string) error {
	if p.failOn > 0 && len(p.batches)+1 == p.failOn {
		return errors.New("delete failed")
	}
	p.batches = append(p.batches, append([]string(nil), keys...))
	return nil
}

func orphanPlan(n int) *Plan[row] {
	records := make([]row, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, row{ID: fmt.Sprintf("k%03d", i)})
	}
	return Build(records, rowKey, knownSet())
}

func TestApply_SafetyChecks(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"NotConfirmed", Options{Confirmed: false}},
		{"DryRun", Options{Confirmed: true, DryRun: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purger := &recordingPurger{}
			executed, err := Apply(context.Background(), orphanPlan(3), purger, tt.opts)
			assert.NoError(t, err)
			assert.Equal(t, 0, executed)
			assert.Empty(t, purger.batches)
		})
	}
}

func TestApply_Batches(t *testing.T) {
	purger := &recordingPurger{}
	executed, err := Apply(context.Background(), orphanPlan(5), purger, Options{Confirmed: true, BatchSize: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, executed)
	assert.Equal(t, [][]string{{"k000", "k001"}, {"k002", "k003"}, {"k004"}}, purger.batches)
}

func TestApply_PartialFailure(t *testing.T) {
	purger := &recordingPurger{failOn: 2}
	executed, err := Apply(context.Background(), orphanPlan(5), purger, Options{Confirmed: true, BatchSize: 2})

	assert.Error(t, err)
	assert.Equal(t, 2, executed)
}

func TestApply_PurgerFunc(t *testing.T) {
	var got []string
	purger := PurgerFunc(func(ctx context.Context, keys []string) error {
		got = append(got, keys...)
		return nil
	})

	executed, err := Apply(context.Background(), orphanPlan(2), purger, Options{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Equal(t, []string{"k000", "k001"}, got)
}

func TestApply_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	executed, err := Apply(ctx, orphanPlan(2), &recordingPurger{}, Options{Confirmed: true})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, executed)
}
