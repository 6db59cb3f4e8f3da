package entity

// Container gives an actor an inventory and a purse.
type Container struct {
	// Capacity limits how many items fit; zero means unlimited.
	Capacity int
	Items    []*Actor
	Gold     int
}

// Add stores an item, rejecting it when the container is full.
func (c *Container) Add(item *Actor) bool {
	if c.Capacity > 0 && len(c.Items) >= c.Capacity {
		return false
	}
	c.Items = append(c.Items, item)
	return true
}

// Remove takes an item out of the container. It returns false if the item
// was not inside.
func (c *Container) Remove(item *Actor) bool {
	for i, it := range c.Items {
		if it == item {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Last returns the most recently added item, or nil when empty. Dropping
// works newest-first.
func (c *Container) Last() *Actor {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[len(c.Items)-1]
}

// IsEmpty reports whether the container holds nothing.
func (c *Container) IsEmpty() bool {
	return len(c.Items) == 0 && c.Gold == 0
}
