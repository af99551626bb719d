package env

import (
	"testing"

	"github.com/idl-tools/semcore/internal/value"
)

func TestGet_WalksOuterChain(t *testing.T) {
	root := New()
	root.Set("balance", value.NewInt(10))
	child := NewEnclosed(root)

	got, ok := child.Get("balance")
	if !ok || !value.Equal(got, value.NewInt(10)) {
		t.Fatalf("expected child to see root's binding, got %v ok=%v", got, ok)
	}
}

func TestGet_ChildShadowsOuter(t *testing.T) {
	root := New()
	root.Set("balance", value.NewInt(10))
	child := NewEnclosed(root)
	child.Set("balance", value.NewInt(20))

	got, _ := child.Get("balance")
	if !value.Equal(got, value.NewInt(20)) {
		t.Errorf("expected the child's own binding to shadow root's, got %v", got)
	}
	rootGot, _ := root.Get("balance")
	if !value.Equal(rootGot, value.NewInt(10)) {
		t.Errorf("expected root's binding unaffected by the child's shadowing, got %v", rootGot)
	}
}

func TestOldAndResultAndInput_AreRootScoped(t *testing.T) {
	root := New()
	child := NewEnclosed(root)

	child.SetOld("balance", value.NewInt(5))
	child.SetResult(value.Bool(true))
	child.SetInput(value.Struct{Name: "In", Fields: []value.StructField{{Name: "x", Value: value.NewInt(1)}}})

	if v, ok := root.GetOld("balance"); !ok || !value.Equal(v, value.NewInt(5)) {
		t.Errorf("expected old binding set from a child to be visible at the root, got %v ok=%v", v, ok)
	}
	if v, ok := child.Result(); !ok || v != value.Bool(true) {
		t.Errorf("expected result set from a child readable from the child, got %v ok=%v", v, ok)
	}
	if v, ok := root.Result(); !ok || v != value.Bool(true) {
		t.Errorf("expected result set from a child also visible at the root, got %v ok=%v", v, ok)
	}
	if _, ok := child.Input(); !ok {
		t.Error("expected an input record set from a child to be visible from the child")
	}
}

func TestOldView_ResolvesAgainstSnapshotOnly(t *testing.T) {
	root := New()
	root.Set("balance", value.NewInt(100))
	root.SetOld("balance", value.NewInt(50))

	view := root.OldView()
	got, ok := view.Get("balance")
	if !ok || !value.Equal(got, value.NewInt(50)) {
		t.Fatalf("expected OldView to resolve the snapshot value, got %v ok=%v", got, ok)
	}
	if _, ok := view.Get("nonexistent"); ok {
		t.Error("expected OldView to have no outer chain beyond the snapshot map")
	}
}

func TestGetOld_UnsetReturnsFalse(t *testing.T) {
	root := New()
	if _, ok := root.GetOld("anything"); ok {
		t.Error("expected GetOld to report false when nothing was snapshotted")
	}
}
