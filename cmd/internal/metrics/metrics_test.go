package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCalculation(t *testing.T) {
	before := testutil.ToFloat64(CalculationsTotal.WithLabelValues("PIPE", "error"))
	ObserveCalculation("PIPE", time.Now(), errors.New("boom"))
	after := testutil.ToFloat64(CalculationsTotal.WithLabelValues("PIPE", "error"))
	assert.Equal(t, before+1, after)
}

func TestObserveCandidates(t *testing.T) {
	before := testutil.ToFloat64(CandidatesTotal.WithLabelValues("dn1", "ok"))
	ObserveCandidates("dn1", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(CandidatesTotal.WithLabelValues("dn1", "ok")))
}
