package vdom

import "reflect"

// Diff compares two VNode trees and returns the patches needed to transform
// prev into next. HIDs are carried over from prev so the client can address
// surviving elements.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, "", &patches)
	return patches
}

// diff recursively compares nodes and appends patches.
// parentHID is the HID of the enclosing element, used for text patches that
// don't carry their own HID.
func diff(prev, next *VNode, parentHID string, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Node added (emitted by the parent as an insert)
	if prev == nil {
		*patches = append(*patches, Patch{
			Op:   PatchInsertNode,
			HID:  parentHID,
			Node: next,
		})
		return
	}

	// Node removed
	if next == nil {
		*patches = append(*patches, Patch{
			Op:  PatchRemoveNode,
			HID: prev.HID,
		})
		return
	}

	// Different types - replace
	if prev.Kind != next.Kind {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		diffText(prev, next, parentHID, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.HID = prev.HID
		diffChildren(prev, next, parentHID, patches)
	}
}

// diffText compares text nodes. Text nodes don't have HIDs of their own, so
// the parent element's HID is the patch target.
func diffText(prev, next *VNode, parentHID string, patches *[]Patch) {
	next.HID = prev.HID

	if prev.Text != next.Text {
		targetHID := prev.HID
		if targetHID == "" {
			targetHID = parentHID
		}
		if targetHID != "" {
			*patches = append(*patches, Patch{
				Op:    PatchSetText,
				HID:   targetHID,
				Value: next.Text,
			})
		}
	}
}

// diffElement compares element nodes.
func diffElement(prev, next *VNode, patches *[]Patch) {
	// Different tag - replace entire node
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			HID:  prev.HID,
			Node: next,
		})
		return
	}

	next.HID = prev.HID

	diffProps(prev, next, patches)
	diffChildren(prev, next, prev.HID, patches)
}

// diffProps compares element attributes.
func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, nextVal := range next.Props {
		prevVal, existed := prev.Props[key]
		if !existed || !reflect.DeepEqual(prevVal, nextVal) {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				HID:   prev.HID,
				Key:   key,
				Value: nextVal,
			})
		}
	}

	for key := range prev.Props {
		if _, kept := next.Props[key]; !kept {
			*patches = append(*patches, Patch{
				Op:  PatchRemoveAttr,
				HID: prev.HID,
				Key: key,
			})
		}
	}
}

// diffChildren compares child lists positionally, honoring reconciliation
// keys when both sides carry them.
func diffChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	if keyed(prev.Children) && keyed(next.Children) {
		diffKeyedChildren(prev, next, parentHID, patches)
		return
	}

	max := len(prev.Children)
	if len(next.Children) > max {
		max = len(next.Children)
	}

	for i := 0; i < max; i++ {
		var p, n *VNode
		if i < len(prev.Children) {
			p = prev.Children[i]
		}
		if i < len(next.Children) {
			n = next.Children[i]
		}
		diff(p, n, parentHID, patches)
	}
}

// diffKeyedChildren matches children by Key instead of position.
func diffKeyedChildren(prev, next *VNode, parentHID string, patches *[]Patch) {
	prevByKey := make(map[string]*VNode, len(prev.Children))
	for _, child := range prev.Children {
		prevByKey[child.Key] = child
	}

	matched := make(map[string]bool, len(next.Children))
	for _, child := range next.Children {
		if p, ok := prevByKey[child.Key]; ok {
			matched[child.Key] = true
			diff(p, child, parentHID, patches)
		} else {
			diff(nil, child, parentHID, patches)
		}
	}

	for _, child := range prev.Children {
		if !matched[child.Key] {
			diff(child, nil, parentHID, patches)
		}
	}
}

// keyed reports whether every child in the list carries a reconciliation key.
func keyed(children []*VNode) bool {
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if c == nil || c.Key == "" {
			return false
		}
	}
	return true
}
