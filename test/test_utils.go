// Package test holds timing helpers shared by package tests.
package test

import (
	"fmt"
	"testing"
	"time"
)

// TestTimer measures how long a test step takes
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{
		start: time.Now(),
		name:  name,
	}
}

// Stop prints and returns the elapsed time
func (t *TestTimer) Stop() time.Duration {
	duration := time.Since(t.start)
	fmt.Printf("⏱️  %s took %v\n", t.name, duration)
	return duration
}

// PerformanceAssertion fails the test when duration is above maxDuration
func PerformanceAssertion(t *testing.T, testName string, duration time.Duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s took %v, expected less than %v", testName, duration, maxDuration)
	}
}

// TestResult is one timed sub test
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult collects timed sub tests of one suite
type TestSuiteResult struct {
	SuiteName   string
	TotalTests  int
	PassedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{
		SuiteName: suiteName,
		Results:   make([]TestResult, 0),
	}
}

// Track times a sub test and records whether it passed
func (tsr *TestSuiteResult) Track(t *testing.T, name string, maxDuration time.Duration) {
	t.Helper()
	timer := NewTestTimer(name)
	t.Cleanup(func() {
		duration := timer.Stop()
		tsr.AddResult(TestResult{Name: name, Duration: duration, Passed: !t.Failed()})
		PerformanceAssertion(t, name, duration, maxDuration)
	})
}

func (tsr *TestSuiteResult) AddResult(result TestResult) {
	tsr.Results = append(tsr.Results, result)
	tsr.TotalTests++
	tsr.TotalTime += result.Duration
	if result.Passed {
		tsr.PassedTests++
	}
}

// PrintSummary prints a summary of the suite
func (tsr *TestSuiteResult) PrintSummary() {
	if tsr.TotalTests == 0 {
		return
	}
	fmt.Printf("\n📊 Test Suite Summary: %s\n", tsr.SuiteName)
	fmt.Printf("   Passed: %d/%d ✅\n", tsr.PassedTests, tsr.TotalTests)
	fmt.Printf("   Total Time: %v\n", tsr.TotalTime)
	for _, result := range tsr.Results {
		status := "✅"
		if !result.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, result.Name, result.Duration)
	}
	fmt.Println()
}
