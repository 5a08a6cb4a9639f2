package vdom

// PatchOp identifies the kind of mutation a patch applies.
type PatchOp uint8

const (
	PatchSetText PatchOp = iota
	PatchSetAttr
	PatchRemoveAttr
	PatchReplaceNode
	PatchRemoveNode
	PatchInsertNode
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchInsertNode:
		return "InsertNode"
	default:
		return "Unknown"
	}
}

// Patch is a single mutation to apply to the client tree.
type Patch struct {
	Op    PatchOp `json:"op"`
	HID   string  `json:"hid"`             // Target element
	Key   string  `json:"key,omitempty"`   // Attribute name for attr ops
	Value any     `json:"value,omitempty"` // Text or attribute value
	Node  *VNode  `json:"node,omitempty"`  // Replacement/inserted subtree
}
