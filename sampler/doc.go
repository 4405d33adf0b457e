// SPDX-License-Identifier: MIT

// Package sampler walks a valuerange.Range in fixed steps and yields the
// members it lands on, in strictly increasing order.
//
// 🚀 What does it do?
//
//	A Sampler is a cursor. Each Next call advances by one quantum (1 for
//	Discrete ranges, 0.25 for Continuous ones unless overridden) and skips
//	candidates that the range does not contain. Enumeration ends past Max,
//	at an open Max, or when an optional sample cap is reached.
//
// Sentinel bounds:
//
//	Infinite bounds cannot be walked, so New replaces -Inf/+Inf on the
//	target range with -math.MaxFloat64/+math.MaxFloat64, in place. Walking
//	the whole float line is still impractical; use WithMaxSamples or a
//	bounded range when the input may be unbounded.
//
// States:
//
//	NotStarted ──Next()──▶ Positioned ──Next()──▶ … ──▶ Exhausted
//	     ▲                                                   │
//	     └──────────────────────── Reset() ◀─────────────────┘
//
// Concurrency:
//
//	A Sampler holds cursor state and must not be advanced from several
//	goroutines without external locking. Use one Sampler per traversal.
package sampler
