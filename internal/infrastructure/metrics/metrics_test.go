package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fiyatvizyon-api/internal/infrastructure/metrics"
)

func TestPrometheus_Counters(t *testing.T) {
	m := metrics.New()

	m.ObserveMutation("product.create", nil, 3*time.Millisecond)
	m.ObserveMutation("product.create", nil, time.Millisecond)
	m.ObserveMutation("rates.update", errors.New("tasa inválida"), time.Millisecond)
	m.SetDocumentSize(4, 7, 2, 3)
	m.ObserveSuggestion("ok")

	n, err := testutil.GatherAndCount(m.Registry(), "fiyatvizyon_document_mutations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por (op, result)")

	n, err = testutil.GatherAndCount(m.Registry(), "fiyatvizyon_margin_suggestions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPrometheus_Handler(t *testing.T) {
	m := metrics.New()
	m.SetDocumentSize(1, 2, 3, 4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), `fiyatvizyon_document_entities{kind="ingredients"} 2`)
}
