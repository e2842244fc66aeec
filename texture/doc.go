// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture loads surface imagery into textures for the globe
// renderer.
//
// The file loader decodes PNG or JPEG imagery, resamples it to the
// fixed tile texture size, builds a box-filter mipmap chain, and
// uploads the result through the bound GPU device. Without a device the
// loader produces CPU-backed textures, which keeps headless tools and
// tests working.
//
// Loads for the same path issued concurrently are collapsed into a
// single decode, and completed textures are kept in a small LRU so
// imagery that is removed and re-registered does not hit the disk
// again.
package texture
