package model

// Collection holds the loaded countries keyed by name. It is the single
// source of truth the view derives from; only Remove mutates it after load.
type Collection struct {
	items []Country
	index map[string]int
}

// NewCollection builds a collection from a load result. A repeated name keeps
// the position of its first occurrence and the data of its last one.
func NewCollection(countries []Country) (*Collection, int) {
	c := &Collection{items: make([]Country, 0, len(countries)), index: make(map[string]int, len(countries))}
	dupes := 0
	for _, country := range countries {
		if i, ok := c.index[country.Name]; ok {
			c.items[i] = country
			dupes++
			continue
		}
		c.index[country.Name] = len(c.items)
		c.items = append(c.items, country)
	}
	return c, dupes
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Collection) Get(name string) (Country, bool) {
	if c == nil {
		return Country{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Country{}, false
	}
	return c.items[i], true
}

// Remove deletes the entry with the given name. It reports whether an entry
// was removed; unknown names are a no-op.
func (c *Collection) Remove(name string) bool {
	if c == nil {
		return false
	}
	i, ok := c.index[name]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, name)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Name] = j
	}
	return true
}

// Snapshot returns a copy of the entries in collection order.
func (c *Collection) Snapshot() []Country {
	if c == nil {
		return nil
	}
	out := make([]Country, len(c.items))
	copy(out, c.items)
	return out
}
