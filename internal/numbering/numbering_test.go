package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "INV-2025-00001", Format("INV", 2025, 1))
	assert.Equal(t, "PO-2024-00420", Format("PO", 2024, 420))
	assert.Equal(t, "INV-2025-123456", Format("INV", 2025, 123456))
	assert.Equal(t, "JOB-000017", FormatJob(17))
}

func TestParse(t *testing.T) {
	p, y, s, ok := Parse("INV-2025-00042")
	require.True(t, ok)
	assert.Equal(t, "INV", p)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 42, s)

	for _, bad := range []string{"", "INV", "INV-2025", "INV-2025-00A1", "INV-X-00001", "A-B-C-D", "-2025-00001"} {
		_, _, _, ok := Parse(bad)
		assert.False(t, ok, "Parse(%q)", bad)
	}
}

func TestNext_FirstUse(t *testing.T) {
	n, err := Next("", "INV", 2025, PolicyReset)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-00001", n)
}

func TestNext_Monotonic(t *testing.T) {
	last := ""
	for i := 1; i <= 25; i++ {
		n, err := Next(last, "PO", 2025, PolicyStrict)
		require.NoError(t, err)
		_, _, seq, ok := Parse(n)
		require.True(t, ok)
		assert.Equal(t, i, seq)
		last = n
	}
	assert.Equal(t, "PO-2025-00025", last)
}

func TestNext_MalformedPolicy(t *testing.T) {
	n, err := Next("garbage", "INV", 2025, PolicyReset)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-00001", n)

	_, err = Next("garbage", "INV", 2025, PolicyStrict)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNext_NewYearStartsOver(t *testing.T) {
	n, err := Next("INV-2024-00310", "INV", 2025, PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-00001", n)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyReset, p)

	_, err = ParsePolicy("loose")
	assert.Error(t, err)
}

func TestLastJobSequence(t *testing.T) {
	seq, err := LastJobSequence("JOB-000041", PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, 41, seq)
	assert.Equal(t, "JOB-000042", FormatJob(seq+1))

	seq, err = LastJobSequence("", PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, 0, seq)

	seq, err = LastJobSequence("J-17", PolicyReset)
	require.NoError(t, err)
	assert.Equal(t, 0, seq)

	_, err = LastJobSequence("J-17", PolicyStrict)
	assert.ErrorIs(t, err, domain.ErrMalformedDocumentNumber)
}
