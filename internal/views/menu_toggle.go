package views

import "fyne.io/fyne/v2"

// MenuToggle is a checkable menu item that shows or hides one panel
type MenuToggle struct {
	id      string
	item    *fyne.MenuItem
	refresh func()
}

func newMenuToggle(id, label string, checked bool, refresh func()) *MenuToggle {
	item := fyne.NewMenuItem(label, nil)
	item.Checked = checked
	return &MenuToggle{id: id, item: item, refresh: refresh}
}

// ID returns the control identifier
func (t *MenuToggle) ID() string {
	return t.id
}

// Checked reports the check mark state
func (t *MenuToggle) Checked() bool {
	return t.item.Checked
}

// SetChecked updates the check mark without firing the action
func (t *MenuToggle) SetChecked(checked bool) {
	if t.item.Checked == checked {
		return
	}
	t.item.Checked = checked
	t.refresh()
}

// Activate runs the item action as a menu click would
func (t *MenuToggle) Activate() {
	if t.item.Action != nil {
		t.item.Action()
	}
}

// Item returns the underlying menu item
func (t *MenuToggle) Item() *fyne.MenuItem {
	return t.item
}

func (t *MenuToggle) flip() {
	t.item.Checked = !t.item.Checked
	t.refresh()
}
