package vdom

import "testing"

func TestDiffBothNil(t *testing.T) {
	patches := Diff(nil, nil)
	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffNodeRemoved(t *testing.T) {
	prev := Div(nil)
	prev.HID = "h1"

	patches := Diff(prev, nil)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveNode {
		t.Errorf("Op = %v, want PatchRemoveNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %v, want h1", patches[0].HID)
	}
}

func TestDiffTextChange(t *testing.T) {
	prev := Div(nil, Text("Hello"))
	prev.HID = "h1"
	next := Div(nil, Text("World"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText {
		t.Errorf("Op = %v, want PatchSetText", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %v, want h1 (parent element)", patches[0].HID)
	}
	if patches[0].Value != "World" {
		t.Errorf("Value = %v, want World", patches[0].Value)
	}
}

func TestDiffTextUnchanged(t *testing.T) {
	prev := Div(nil, Text("Hello"))
	prev.HID = "h1"
	next := Div(nil, Text("Hello"))

	patches := Diff(prev, next)

	if len(patches) != 0 {
		t.Errorf("Expected 0 patches for unchanged text, got %d", len(patches))
	}
}

func TestDiffTagChangeReplaces(t *testing.T) {
	prev := Div(nil)
	prev.HID = "h1"
	next := Span(nil)

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want PatchReplaceNode", patches[0].Op)
	}
}

func TestDiffAttrChanges(t *testing.T) {
	prev := Div(Props{"class": "old", "id": "x"})
	prev.HID = "h1"
	next := Div(Props{"class": "new"})

	patches := Diff(prev, next)

	var set, removed int
	for _, p := range patches {
		switch p.Op {
		case PatchSetAttr:
			set++
			if p.Key != "class" || p.Value != "new" {
				t.Errorf("SetAttr %s=%v, want class=new", p.Key, p.Value)
			}
		case PatchRemoveAttr:
			removed++
			if p.Key != "id" {
				t.Errorf("RemoveAttr key = %s, want id", p.Key)
			}
		}
	}
	if set != 1 || removed != 1 {
		t.Errorf("set=%d removed=%d, want 1 and 1", set, removed)
	}
}

func TestDiffChildAdded(t *testing.T) {
	prev := Div(nil, Span(nil))
	prev.HID = "h1"
	prev.Children[0].HID = "h2"
	next := Div(nil, Span(nil), Span(nil))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchInsertNode {
		t.Errorf("Op = %v, want PatchInsertNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %v, want parent h1", patches[0].HID)
	}
}

func TestDiffCarriesHIDsForward(t *testing.T) {
	prev := Div(Props{"class": "a"})
	prev.HID = "h1"
	next := Div(Props{"class": "a"})

	Diff(prev, next)

	if next.HID != "h1" {
		t.Errorf("next HID = %q, want h1 carried over", next.HID)
	}
}

func TestDiffKeyedChildren(t *testing.T) {
	mk := func(key, text string) *VNode {
		n := Div(nil, Text(text))
		n.Key = key
		return n
	}

	prev := Div(nil, mk("a", "A"), mk("b", "B"))
	prev.HID = "h0"
	prev.Children[0].HID = "h1"
	prev.Children[1].HID = "h2"

	next := Div(nil, mk("b", "B"), mk("c", "C"))

	patches := Diff(prev, next)

	var removed, inserted int
	for _, p := range patches {
		switch p.Op {
		case PatchRemoveNode:
			removed++
			if p.HID != "h1" {
				t.Errorf("removed HID = %q, want h1", p.HID)
			}
		case PatchInsertNode:
			inserted++
		}
	}
	if removed != 1 || inserted != 1 {
		t.Errorf("removed=%d inserted=%d, want 1 and 1", removed, inserted)
	}
}
