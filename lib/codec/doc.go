// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// frameclock artefacts such as end-of-run reports.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same report always produces identical bytes, so two runs of a
// simulated scenario can be compared byte for byte.
//
// Types implementing encoding.TextMarshaler (timer handles, for
// example) encode as CBOR text strings.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
package codec
