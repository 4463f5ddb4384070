package domain

import "strings"

// MenuItem is one node of a navigation menu. Stored trees may nest deeper,
// but the editor addresses at most two levels (see MenuPath).
type MenuItem struct {
	Label    string     `json:"label"`
	Link     string     `json:"link"`
	Children []MenuItem `json:"children,omitempty"`
}

// MenuPath addresses a node. Parent == nil selects top-level item Index;
// otherwise it selects child Index of top-level item *Parent.
type MenuPath struct {
	Index  int  `json:"index"`
	Parent *int `json:"parent_index"`
}

// MenuItemPatch carries the fields to overwrite; nil keeps the current value.
type MenuItemPatch struct {
	Label *string `json:"label"`
	Link  *string `json:"link"`
}

// Menu operations accepted by ApplyMenuOp.
const (
	MenuOpAdd      = "add"
	MenuOpAddChild = "add_child"
	MenuOpUpdate   = "update"
	MenuOpDelete   = "delete"
	MenuOpMoveUp   = "move_up"
	MenuOpMoveDown = "move_down"
)

// MenuOp is a single editor action.
type MenuOp struct {
	Op          string        `json:"op" binding:"required"`
	Index       int           `json:"index"`
	ParentIndex *int          `json:"parent_index"`
	Item        *MenuItem     `json:"item"`
	Patch       MenuItemPatch `json:"patch"`
}

// CloneMenu deep-copies a tree.
func CloneMenu(items []MenuItem) []MenuItem {
	if items == nil {
		return nil
	}
	out := make([]MenuItem, len(items))
	for i, it := range items {
		out[i] = MenuItem{Label: it.Label, Link: it.Link, Children: CloneMenu(it.Children)}
	}
	return out
}

// siblings returns the array that holds the node addressed by path.
// For top-level paths the pointer refers to a copy of the slice header,
// so callers that shrink the array must return *sib. The index is not checked.
func siblings(items []MenuItem, path MenuPath) (*[]MenuItem, error) {
	if path.Parent == nil {
		return &items, nil
	}
	p := *path.Parent
	if p < 0 || p >= len(items) {
		return nil, ValidationError{Field: "parent_index", Msg: "out of range"}
	}
	return &items[p].Children, nil
}

func locate(items []MenuItem, path MenuPath) (*[]MenuItem, error) {
	sib, err := siblings(items, path)
	if err != nil {
		return nil, err
	}
	if path.Index < 0 || path.Index >= len(*sib) {
		return nil, ValidationError{Field: "index", Msg: "out of range"}
	}
	return sib, nil
}

// UpdateMenuItem overwrites label/link of the addressed node.
func UpdateMenuItem(items []MenuItem, path MenuPath, patch MenuItemPatch) ([]MenuItem, error) {
	out := CloneMenu(items)
	sib, err := locate(out, path)
	if err != nil {
		return nil, err
	}
	node := &(*sib)[path.Index]
	if patch.Label != nil {
		node.Label = strings.TrimSpace(*patch.Label)
	}
	if patch.Link != nil {
		node.Link = strings.TrimSpace(*patch.Link)
	}
	return out, nil
}

// DeleteMenuItem removes the addressed node together with its children.
func DeleteMenuItem(items []MenuItem, path MenuPath) ([]MenuItem, error) {
	out := CloneMenu(items)
	sib, err := locate(out, path)
	if err != nil {
		return nil, err
	}
	s := *sib
	*sib = append(s[:path.Index:path.Index], s[path.Index+1:]...)
	if path.Parent == nil {
		return *sib, nil
	}
	return out, nil
}

// MoveMenuItem swaps the node with its neighbour delta positions away
// (-1 up, +1 down). Moving past either end of the array is a no-op.
func MoveMenuItem(items []MenuItem, path MenuPath, delta int) ([]MenuItem, error) {
	out := CloneMenu(items)
	sib, err := locate(out, path)
	if err != nil {
		return nil, err
	}
	target := path.Index + delta
	if target < 0 || target >= len(*sib) {
		return out, nil
	}
	s := *sib
	s[path.Index], s[target] = s[target], s[path.Index]
	return out, nil
}

// AddMenuChild appends item under top-level item parentIndex.
func AddMenuChild(items []MenuItem, parentIndex int, item MenuItem) ([]MenuItem, error) {
	out := CloneMenu(items)
	if parentIndex < 0 || parentIndex >= len(out) {
		return nil, ValidationError{Field: "parent_index", Msg: "out of range"}
	}
	out[parentIndex].Children = append(out[parentIndex].Children, CloneMenu([]MenuItem{item})...)
	return out, nil
}

// AddMenuItem appends item at the top level.
func AddMenuItem(items []MenuItem, item MenuItem) []MenuItem {
	return append(CloneMenu(items), CloneMenu([]MenuItem{item})...)
}

// ApplyMenuOp dispatches one editor action and returns the new tree.
func ApplyMenuOp(items []MenuItem, op MenuOp) ([]MenuItem, error) {
	path := MenuPath{Index: op.Index, Parent: op.ParentIndex}
	switch strings.ToLower(strings.TrimSpace(op.Op)) {
	case MenuOpAdd:
		item, err := newMenuItem(op.Item)
		if err != nil {
			return nil, err
		}
		return AddMenuItem(items, item), nil
	case MenuOpAddChild:
		if op.ParentIndex == nil {
			return nil, ValidationError{Field: "parent_index", Msg: "required for add_child"}
		}
		item, err := newMenuItem(op.Item)
		if err != nil {
			return nil, err
		}
		return AddMenuChild(items, *op.ParentIndex, item)
	case MenuOpUpdate:
		return UpdateMenuItem(items, path, op.Patch)
	case MenuOpDelete:
		return DeleteMenuItem(items, path)
	case MenuOpMoveUp:
		return MoveMenuItem(items, path, -1)
	case MenuOpMoveDown:
		return MoveMenuItem(items, path, 1)
	default:
		return nil, ValidationError{Field: "op", Msg: "unknown menu operation"}
	}
}

func newMenuItem(in *MenuItem) (MenuItem, error) {
	if in == nil {
		return MenuItem{Label: "New item", Link: "/"}, nil
	}
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return MenuItem{}, ValidationError{Field: "item.label", Msg: "required"}
	}
	return MenuItem{Label: label, Link: strings.TrimSpace(in.Link), Children: CloneMenu(in.Children)}, nil
}

// ValidateMenu checks a whole tree before it is saved.
func ValidateMenu(items []MenuItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Label) == "" {
			return ValidationError{Field: "items.label", Msg: "required"}
		}
		if err := ValidateMenu(it.Children); err != nil {
			return err
		}
	}
	return nil
}
