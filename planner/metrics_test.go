package planner

import (
	"context"
	"testing"
	"time"
)

func TestRecordPlan(t *testing.T) {
	ctx := context.Background()
	s := Stats{Cuts: 4, Rollbacks: 4, Candidates: 9}

	t.Run("records success", func(t *testing.T) {
		SetMetricsEnabled(true)
		// Should not panic
		recordPlan(ctx, s, 2, time.Millisecond, false)
	})

	t.Run("records failure", func(t *testing.T) {
		SetMetricsEnabled(true)
		// Should not panic
		recordPlan(ctx, s, 1, time.Millisecond, true)
	})

	t.Run("skips when disabled", func(t *testing.T) {
		SetMetricsEnabled(false)
		// Should not panic
		recordPlan(ctx, s, 2, time.Millisecond, false)
		SetMetricsEnabled(true) // Restore
	})
}

func TestInitMetrics(t *testing.T) {
	if err := initMetrics(); err != nil {
		t.Fatalf("initMetrics: %v", err)
	}
	if plansTotal == nil || planDuration == nil {
		t.Fatal("instruments not created")
	}
}
