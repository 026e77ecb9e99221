// Copyright (c) 2026 NitikBatik. All rights reserved.

package fetch

import "sync/atomic"

// Sequence issues monotonic request numbers.
//
// A response is applied only while its number is still the latest issued;
// anything older was superseded by a later request.
type Sequence struct {
	n atomic.Uint64
}

// Next issues a new number.
func (s *Sequence) Next() uint64 { return s.n.Add(1) }

// Latest reports whether seq is the most recently issued number.
func (s *Sequence) Latest(seq uint64) bool { return s.n.Load() == seq }
