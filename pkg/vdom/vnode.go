package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    `json:"kind"`               // Node type
	Tag      string   `json:"tag,omitempty"`      // Element tag name (e.g., "div")
	Props    Props    `json:"props,omitempty"`    // Attributes
	Children []*VNode `json:"children,omitempty"` // Child nodes
	Key      string   `json:"key,omitempty"`      // Reconciliation key
	Text     string   `json:"text,omitempty"`     // For KindText
	HID      string   `json:"hid,omitempty"`      // Hydration ID (assigned during render)
}

// Props holds named values: attributes on elements, inputs on components.
type Props map[string]any

// Merge returns a new Props containing every entry of base overlaid with
// every entry of p. On key collision p wins. Neither input is mutated.
func (p Props) Merge(base Props) Props {
	merged := make(Props, len(base)+len(p))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range p {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	c := make(Props, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// Named is an optional extension for components that carry a debug name.
// The binder uses it to derive wrapper display names for tooling.
type Named interface {
	Name() string
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
	name   string
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Name implements Named. Returns "Func" when no name was given.
func (f *FuncComponent) Name() string {
	if f.name == "" {
		return "Func"
	}
	return f.name
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// NamedFunc creates a component from a render function with a debug name.
func NamedFunc(name string, render func() *VNode) Component {
	return &FuncComponent{render: render, name: name}
}

// PropsComponent renders from externally supplied props. Components wrapped
// by the binder implement this to receive the merged derived+own props.
type PropsComponent interface {
	RenderProps(props Props) *VNode
}

// PropsFuncComponent wraps a props-taking render function.
type PropsFuncComponent struct {
	render func(Props) *VNode
	name   string
}

// RenderProps implements PropsComponent.
func (f *PropsFuncComponent) RenderProps(props Props) *VNode {
	return f.render(props)
}

// Name implements Named. Returns "Func" when no name was given.
func (f *PropsFuncComponent) Name() string {
	if f.name == "" {
		return "Func"
	}
	return f.name
}

// PropsFunc creates a props-taking component from a render function.
func PropsFunc(render func(Props) *VNode) PropsComponent {
	return &PropsFuncComponent{render: render}
}

// NamedPropsFunc creates a props-taking component with a debug name.
func NamedPropsFunc(name string, render func(Props) *VNode) PropsComponent {
	return &PropsFuncComponent{render: render, name: name}
}
