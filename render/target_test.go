// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// mockDevice is a test double for the TextureDevice interface.
type mockDevice struct {
	createTextureFunc func(*hal.TextureDescriptor) (hal.Texture, error)

	texturesCreated   atomic.Int32
	viewsCreated      atomic.Int32
	texturesDestroyed atomic.Int32
	viewsDestroyed    atomic.Int32
}

func (d *mockDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	d.texturesCreated.Add(1)
	if d.createTextureFunc != nil {
		return d.createTextureFunc(desc)
	}
	return &mockTexture{desc: *desc}, nil
}

func (d *mockDevice) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	d.viewsCreated.Add(1)
	return &mockTextureView{texture: texture, label: desc.Label}, nil
}

func (d *mockDevice) DestroyTexture(hal.Texture) {
	d.texturesDestroyed.Add(1)
}

func (d *mockDevice) DestroyTextureView(hal.TextureView) {
	d.viewsDestroyed.Add(1)
}

// mockTexture is a test double for hal.Texture.
type mockTexture struct {
	desc hal.TextureDescriptor
}

func (t *mockTexture) Destroy()              {}
func (t *mockTexture) NativeHandle() uintptr { return 0 }

func (t *mockTexture) CurrentUsage() gputypes.TextureUsage { return t.desc.Usage }
func (t *mockTexture) AddPendingRef()                      {}
func (t *mockTexture) DecPendingRef()                      {}

var _ hal.Texture = (*mockTexture)(nil)

// mockTextureView is a test double for hal.TextureView.
type mockTextureView struct {
	texture hal.Texture
	label   string
}

func (v *mockTextureView) Destroy()              {}
func (v *mockTextureView) NativeHandle() uintptr { return 0 }

// TestTargetManagerBind tests that binding allocates the surface once.
func TestTargetManagerBind(t *testing.T) {
	device := &mockDevice{}
	signal := NewResetSignal()
	m := NewTargetManager()

	if m.Bound() {
		t.Fatal("new manager should be unbound")
	}

	if err := m.Bind(device, signal); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if !m.Bound() {
		t.Error("manager should be bound after Bind")
	}
	if got := device.texturesCreated.Load(); got != 2 {
		t.Errorf("textures created = %d, want 2 (color + depth)", got)
	}
	if m.ColorView() == nil {
		t.Error("ColorView should be non-nil after Bind")
	}
	if m.DepthView() == nil {
		t.Error("DepthView should be non-nil after Bind")
	}
	if signal.SubscriberCount() != 1 {
		t.Errorf("subscribers = %d, want 1", signal.SubscriberCount())
	}

	// Binding again is a no-op.
	if err := m.Bind(device, signal); err != nil {
		t.Fatalf("second Bind failed: %v", err)
	}
	if got := device.texturesCreated.Load(); got != 2 {
		t.Errorf("textures created after double Bind = %d, want 2", got)
	}
}

// TestTargetManagerBindNilDevice tests the nil-device guard.
func TestTargetManagerBindNilDevice(t *testing.T) {
	m := NewTargetManager()
	if err := m.Bind(nil, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("Bind(nil) = %v, want ErrNilDevice", err)
	}
}

// TestTargetManagerSurfaceShape tests the fixed descriptor constants.
func TestTargetManagerSurfaceShape(t *testing.T) {
	var color *hal.TextureDescriptor
	device := &mockDevice{
		createTextureFunc: func(desc *hal.TextureDescriptor) (hal.Texture, error) {
			if color == nil {
				color = desc
			}
			return &mockTexture{desc: *desc}, nil
		},
	}

	m := NewTargetManager()
	if err := m.Bind(device, nil); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	if color.Size.Width != SurfaceSize || color.Size.Height != SurfaceSize {
		t.Errorf("surface size = %dx%d, want %dx%d",
			color.Size.Width, color.Size.Height, SurfaceSize, SurfaceSize)
	}
	if color.Format != targetColorFormat {
		t.Errorf("color format = %v, want %v", color.Format, targetColorFormat)
	}
	if color.MipLevelCount != 11 {
		t.Errorf("mip levels = %d, want 11 for a 1024 surface", color.MipLevelCount)
	}
}

// TestTargetManagerPollRebuild tests reset-driven reallocation.
func TestTargetManagerPollRebuild(t *testing.T) {
	device := &mockDevice{}
	signal := NewResetSignal()
	m := NewTargetManager()

	if err := m.Bind(device, signal); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	// No signal pending: Poll must not touch the surface.
	if err := m.Poll(); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if got := device.texturesCreated.Load(); got != 2 {
		t.Errorf("textures created after idle Poll = %d, want 2", got)
	}

	signal.Notify()
	if err := m.Poll(); err != nil {
		t.Fatalf("Poll after reset failed: %v", err)
	}
	if got := device.texturesCreated.Load(); got != 4 {
		t.Errorf("textures created after reset = %d, want 4", got)
	}
	if got := device.texturesDestroyed.Load(); got != 2 {
		t.Errorf("textures destroyed after reset = %d, want 2 (old surface)", got)
	}

	// Multiple notifications before a Poll collapse to one rebuild.
	signal.Notify()
	signal.Notify()
	if err := m.Poll(); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if err := m.Poll(); err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if got := device.texturesCreated.Load(); got != 6 {
		t.Errorf("textures created = %d, want 6 (one rebuild per drain)", got)
	}
}

// TestTargetManagerRelease tests teardown and double-release safety.
func TestTargetManagerRelease(t *testing.T) {
	device := &mockDevice{}
	signal := NewResetSignal()
	m := NewTargetManager()

	if err := m.Bind(device, signal); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	m.Release()

	if m.Bound() {
		t.Error("manager should be unbound after Release")
	}
	if signal.SubscriberCount() != 0 {
		t.Errorf("subscribers after Release = %d, want 0", signal.SubscriberCount())
	}
	if got := device.texturesDestroyed.Load(); got != 2 {
		t.Errorf("textures destroyed = %d, want 2", got)
	}
	if m.ColorView() != nil {
		t.Error("ColorView should be nil after Release")
	}

	// Double release must be harmless.
	m.Release()
	if got := device.texturesDestroyed.Load(); got != 2 {
		t.Errorf("textures destroyed after double Release = %d, want 2", got)
	}
}

// TestTargetManagerBindFailure tests cleanup when allocation fails.
func TestTargetManagerBindFailure(t *testing.T) {
	wantErr := errors.New("out of memory")
	calls := 0
	device := &mockDevice{
		createTextureFunc: func(desc *hal.TextureDescriptor) (hal.Texture, error) {
			calls++
			if calls == 2 { // depth texture
				return nil, wantErr
			}
			return &mockTexture{desc: *desc}, nil
		},
	}
	signal := NewResetSignal()

	m := NewTargetManager()
	err := m.Bind(device, signal)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Bind = %v, want wrapped %v", err, wantErr)
	}
	if m.Bound() {
		t.Error("manager should stay unbound after a failed Bind")
	}
	if signal.SubscriberCount() != 0 {
		t.Errorf("failed Bind left %d subscriptions", signal.SubscriberCount())
	}
	if got := device.texturesDestroyed.Load(); got != 1 {
		t.Errorf("partially built surface not destroyed: destroyed = %d, want 1", got)
	}
}

// TestMipLevelCount tests the full-chain computation.
func TestMipLevelCount(t *testing.T) {
	tests := []struct {
		size uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{256, 9},
		{1024, 11},
	}
	for _, tt := range tests {
		if got := mipLevelCount(tt.size); got != tt.want {
			t.Errorf("mipLevelCount(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
