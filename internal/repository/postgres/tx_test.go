package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit() error   { f.commits++; return f.commitErr }
func (f *fakeTx) Rollback() error { f.rollbacks++; return nil }

func TestFinishTx_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	require.NoError(t, finishTx(tx, func() error { return nil }))
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestFinishTx_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	want := errors.New("insert failed")
	err := finishTx(tx, func() error { return want })
	assert.ErrorIs(t, err, want)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestFinishTx_RollsBackAndRepanicsOnPanic(t *testing.T) {
	tx := &fakeTx{}
	assert.PanicsWithValue(t, "boom", func() {
		_ = finishTx(tx, func() error { panic("boom") })
	})
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestFinishTx_WrapsCommitError(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("conn reset")}
	err := finishTx(tx, func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit")
	assert.Equal(t, 0, tx.rollbacks)
}
