// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., a gogpu.App) implements DeviceHandle and passes it to
// the globe renderer, allowing the renderer to share the host's GPU
// device instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving this
// package a local name for the interface while staying fully compatible
// with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDevice is the subset of hal.Device the globe renderer uses.
// Accepting the narrow interface keeps callers free to pass a full
// hal.Device or a test double.
type TextureDevice interface {
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)
	CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error)
	DestroyTexture(texture hal.Texture)
	DestroyTextureView(view hal.TextureView)
}

// UploadQueue is the subset of hal.Queue used for texture upload.
type UploadQueue interface {
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error
}

// A full HAL device and queue satisfy the narrow interfaces.
var (
	_ TextureDevice = (hal.Device)(nil)
	_ UploadQueue   = (hal.Queue)(nil)
)

// Device handle errors.
var (
	// ErrNoHALAccess is returned when a provider does not expose HAL types.
	ErrNoHALAccess = errors.New("render: device provider does not expose HAL types")

	// ErrNilDevice is returned when an operation requires a device and none
	// has been bound.
	ErrNilDevice = errors.New("render: no GPU device bound")
)

// HALFromProvider extracts the HAL device and queue from a DeviceHandle.
//
// Providers that support direct HAL access implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue (the gpucontext
// HalProvider convention). Returns ErrNoHALAccess if the provider does
// not expose them.
func HALFromProvider(provider DeviceHandle) (TextureDevice, UploadQueue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, ErrNoHALAccess
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, ErrNoHALAccess
	}
	return device, queue, nil
}
