package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	d := NoopDrawHooks{}
	d.OnRenderStart(ctx, "finite_state_machine", "png")
	d.OnRenderComplete(ctx, "finite_state_machine", "png", 1024, time.Second, nil)
	d.OnWrite(ctx, "fsm.png", 1024, nil)
	d.OnViewerOpen(ctx, "fsm.png", errors.New("no viewer"))

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Draw().(NoopDrawHooks); !ok {
		t.Error("Draw() should return NoopDrawHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customDraw := &testDrawHooks{}
	SetDrawHooks(customDraw)
	if Draw() != customDraw {
		t.Error("SetDrawHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Draw().(NoopDrawHooks); !ok {
		t.Error("Reset() should restore NoopDrawHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testDrawHooks{}
	SetDrawHooks(custom)
	SetDrawHooks(nil)

	if Draw() != custom {
		t.Error("SetDrawHooks(nil) should be ignored")
	}
}

type testDrawHooks struct{ NoopDrawHooks }
type testCacheHooks struct{ NoopCacheHooks }
