package vdom

import "fmt"

// El creates an element node with the given tag, props, and children.
func El(tag string, props Props, children ...*VNode) *VNode {
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: children,
	}
}

// Div creates a <div> element.
func Div(props Props, children ...*VNode) *VNode {
	return El("div", props, children...)
}

// Span creates a <span> element.
func Span(props Props, children ...*VNode) *VNode {
	return El("span", props, children...)
}

// Text creates a text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	return &VNode{Kind: KindFragment, Children: children}
}

// AssignHIDs walks the tree and assigns hydration IDs to elements that don't
// already carry one. Returns the next free sequence number.
func AssignHIDs(node *VNode, seq int) int {
	if node == nil {
		return seq
	}
	if node.Kind == KindElement && node.HID == "" {
		node.HID = fmt.Sprintf("h%d", seq)
		seq++
	}
	for _, child := range node.Children {
		seq = AssignHIDs(child, seq)
	}
	return seq
}
