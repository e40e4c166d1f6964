package nav

// State holds the open/closed flags of one navigation header. The zero value
// has every panel closed.
type State struct {
	MobileMenuOpen bool
	dropdowns      map[GroupID]bool
	accordions     map[GroupID]bool
}

func (s *State) OpenMobileMenu() {
	s.MobileMenuOpen = true
}

// CloseMobileMenu closes the drawer. Its accordions go with it.
func (s *State) CloseMobileMenu() {
	s.MobileMenuOpen = false
	s.accordions = nil
}

// DropdownOpen reports whether the desktop dropdown of group id is shown.
func (s State) DropdownOpen(id GroupID) bool {
	return s.dropdowns[id]
}

// ToggleDropdown flips the desktop dropdown of group id. Only one dropdown is
// open at a time; opening one closes the others.
func (s *State) ToggleDropdown(id GroupID) error {
	if _, err := GroupByID(id); err != nil {
		return err
	}
	open := !s.dropdowns[id]
	s.dropdowns = nil
	if open {
		s.dropdowns = map[GroupID]bool{id: true}
	}
	return nil
}

// SelectLink records the activation of a link inside group id: the dropdown
// and the mobile menu close.
func (s *State) SelectLink(id GroupID) error {
	if _, err := GroupByID(id); err != nil {
		return err
	}
	delete(s.dropdowns, id)
	s.CloseMobileMenu()
	return nil
}

// AccordionOpen reports whether the mobile section of group id is expanded.
func (s State) AccordionOpen(id GroupID) bool {
	return s.accordions[id]
}

// ToggleAccordion flips the mobile section of group id.
func (s *State) ToggleAccordion(id GroupID) error {
	if _, err := GroupByID(id); err != nil {
		return err
	}
	if s.accordions == nil {
		s.accordions = make(map[GroupID]bool)
	}
	if s.accordions[id] {
		delete(s.accordions, id)
	} else {
		s.accordions[id] = true
	}
	return nil
}

// Navigate is applied when a page is loaded. Reaching a group link counts as
// selecting it, which closes that dropdown and the mobile menu. Whatever is
// still open afterwards closes too.
func (s *State) Navigate(path string) {
	selected := false
	for _, g := range Groups {
		for _, item := range g.Items {
			if item.Active(path) {
				_ = s.SelectLink(g.ID)
				selected = true
			}
		}
	}
	clear(s.dropdowns)
	if !selected {
		s.CloseMobileMenu()
	}
}

// OpenDropdowns returns the ids of open dropdowns in display order.
func (s State) OpenDropdowns() []GroupID {
	return s.open(s.dropdowns)
}

// OpenAccordions returns the ids of expanded accordions in display order.
func (s State) OpenAccordions() []GroupID {
	return s.open(s.accordions)
}

func (s State) open(flags map[GroupID]bool) []GroupID {
	var ids []GroupID
	for _, g := range Groups {
		if flags[g.ID] {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// Restore rebuilds a State from its flags. Unknown ids are ignored.
func Restore(mobileMenuOpen bool, dropdowns, accordions []GroupID) State {
	s := State{MobileMenuOpen: mobileMenuOpen}
	for _, id := range dropdowns {
		if _, err := GroupByID(id); err == nil {
			if s.dropdowns == nil {
				s.dropdowns = make(map[GroupID]bool)
			}
			s.dropdowns[id] = true
		}
	}
	for _, id := range accordions {
		if _, err := GroupByID(id); err == nil {
			if s.accordions == nil {
				s.accordions = make(map[GroupID]bool)
			}
			s.accordions[id] = true
		}
	}
	return s
}
