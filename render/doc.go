// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render is the GPU-facing layer of the globe renderer.
//
// It defines the narrow device and queue interfaces the renderer needs
// (satisfied by wgpu HAL types), texture creation and upload helpers,
// the device-reset notification protocol, and the off-screen render
// target used for surface-image compositing.
//
// Key principle: the globe renderer RECEIVES its GPU device from the
// host application, it does NOT create one. Hosts hand over either a
// gpucontext.DeviceProvider or the HAL device and queue directly.
package render
