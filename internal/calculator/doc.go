// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package calculator computes fitness metrics from biometric measurements:
// body-mass index, U.S. Navy body-fat percentage and Mifflin-St Jeor daily
// calorie targets.
//
// Every function is pure and safe for concurrent use. Invalid input never
// yields NaN or a partial result; it yields an error wrapping
// [ErrInsufficientInput] that names the offending field.
package calculator
