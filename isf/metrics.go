// Copyright 2025 Edgeo SCADA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package isf

import (
	"sync/atomic"
	"time"
)

// Counter is a thread-safe counter
type Counter struct {
	value int64
}

// Add adds a delta to the counter
func (c *Counter) Add(delta int64) {
	atomic.AddInt64(&c.value, delta)
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	c.Add(1)
}

// Value returns the current counter value
func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset resets the counter to 0
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}

// Metrics accumulates decode statistics across a batch of files.
type Metrics struct {
	FilesDecoded   Counter
	DecodeFailures Counter
	SamplesDecoded Counter
	BytesRead      Counter

	startTime time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordDecode records a successful decode.
func (m *Metrics) RecordDecode(w *Waveform, fileBytes int64) {
	m.FilesDecoded.Inc()
	m.SamplesDecoded.Add(int64(w.Header.NumPoints))
	m.BytesRead.Add(fileBytes)
}

// RecordFailure records a failed decode.
func (m *Metrics) RecordFailure() {
	m.DecodeFailures.Inc()
}

// Elapsed returns the time since metrics started
func (m *Metrics) Elapsed() time.Duration {
	return time.Since(m.startTime)
}

// Reset resets all metrics
func (m *Metrics) Reset() {
	m.FilesDecoded.Reset()
	m.DecodeFailures.Reset()
	m.SamplesDecoded.Reset()
	m.BytesRead.Reset()
	m.startTime = time.Now()
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Elapsed:        m.Elapsed(),
		FilesDecoded:   m.FilesDecoded.Value(),
		DecodeFailures: m.DecodeFailures.Value(),
		SamplesDecoded: m.SamplesDecoded.Value(),
		BytesRead:      m.BytesRead.Value(),
	}
}

// MetricsSnapshot is a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Elapsed        time.Duration
	FilesDecoded   int64
	DecodeFailures int64
	SamplesDecoded int64
	BytesRead      int64
}
