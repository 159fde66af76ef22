package export

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbogalheiro/npi-calculator/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()
	created := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)

	calculations := []domain.Calculation{
		{ID: id1, Expression: "3 4 +", Result: 7, CreatedAt: created},
		{ID: id2, Expression: "10 2 / 3 +", Result: 8, CreatedAt: created.Add(time.Minute)},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, calculations))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "id,expression,result,created_at", lines[0])
	assert.Equal(t, id1.String()+",3 4 +,7,2026-02-14T10:30:00Z", lines[1])
	assert.Equal(t, id2.String()+",10 2 / 3 +,8,2026-02-14T10:31:00Z", lines[2])
}

func TestWriteCSV_EmptyHistory(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))

	assert.Equal(t, "id,expression,result,created_at\n", sb.String())
}

func TestWriteCSV_FractionalResult(t *testing.T) {
	calculations := []domain.Calculation{
		{ID: uuid.New(), Expression: "1 3 /", Result: 1.0 / 3.0, CreatedAt: time.Now()},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, calculations))

	assert.Contains(t, sb.String(), "0.3333333333333333")
}
