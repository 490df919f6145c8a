package combat

// Roster is the ordered hero line-up. Order drives attack order and every
// "first" lookup.
type Roster []*Hero

func (r Roster) AliveCount() int {
	n := 0
	for _, h := range r {
		if h.Health() > 0 {
			n++
		}
	}
	return n
}

func (r Roster) Alive() Roster {
	var out Roster
	for _, h := range r {
		if h.Health() > 0 {
			out = append(out, h)
		}
	}
	return out
}

// FirstFallen returns the first hero with no health left, or nil.
func (r Roster) FirstFallen() *Hero {
	for _, h := range r {
		if h.Health() <= 0 {
			return h
		}
	}
	return nil
}

func (r Roster) ByName(name string) *Hero {
	for _, h := range r {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

func (r Roster) AllDead() bool { return r.AliveCount() == 0 }
