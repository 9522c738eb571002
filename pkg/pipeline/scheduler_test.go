package pipeline

import (
	"context"
	"testing"
	"time"

	"questionbank/qbexport/pkg/telemetry/logging"
)

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{expr: "0 * * * *"},
		{expr: "*/5 * * * *"},
		{expr: "@hourly"},
		{expr: "0 3 * * 1-5"},
		{expr: "", wantErr: true},
		{expr: "not a schedule", wantErr: true},
		{expr: "0 0 * * * *", wantErr: true},
		{expr: "61 * * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := ValidateSchedule(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchedule(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	if _, err := NewScheduler("every minute", logging.Discard()); err == nil {
		t.Error("NewScheduler() should reject an invalid expression")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler("0 * * * *", logging.Discard())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	if s.IsRunning() {
		t.Error("scheduler should not be running before Start")
	}
	if s.NextRun() != nil {
		t.Error("NextRun() should be nil before Start")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !s.IsRunning() {
		t.Error("scheduler should be running after Start")
	}
	if err := s.Start(ctx, func(context.Context) {}); err == nil {
		t.Error("second Start() should fail")
	}

	deadline := time.Now().Add(time.Second)
	for {
		next := s.NextRun()
		if next != nil && !next.IsZero() {
			if next.Minute() != 0 {
				t.Errorf("NextRun() = %v, want top of the hour", next)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("NextRun() was never populated")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Stop()
	if s.IsRunning() {
		t.Error("scheduler should stop")
	}
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	s, err := NewScheduler("@every 1h", logging.Discard())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := s.Start(ctx, func(context.Context) {}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	cancel()

	deadline := time.Now().Add(time.Second)
	for s.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("scheduler still running after context cancel")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestScheduler_RunsJob(t *testing.T) {
	s, err := NewScheduler("@every 1s", logging.Discard())
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)
	if err := s.Start(ctx, func(context.Context) {
		select {
		case ran <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}
