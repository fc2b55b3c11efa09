package runner

import "github.com/kamstrup/intmap"

// Obstacle is a live obstacle owned by the controller.
type Obstacle struct {
	ID      uint32
	Variant int
	Entity  Entity
}

// obstacleSet is the unordered collection of live obstacles, keyed by id.
type obstacleSet struct {
	nextID uint32
	items  *intmap.Map[uint32, *Obstacle]
	doomed []uint32 // scratch for removals during advance
}

func newObstacleSet() *obstacleSet {
	return &obstacleSet{
		items:  intmap.New[uint32, *Obstacle](16),
		doomed: make([]uint32, 0, 4),
	}
}

func (s *obstacleSet) add(variant int, e Entity) *Obstacle {
	s.nextID++
	o := &Obstacle{ID: s.nextID, Variant: variant, Entity: e}
	s.items.Put(o.ID, o)
	return o
}

// advance moves every obstacle left by dx and destroys those whose trailing
// edge crossed x = 0. Returns the number removed.
func (s *obstacleSet) advance(dx float64) int {
	s.doomed = s.doomed[:0]
	s.items.ForEach(func(id uint32, o *Obstacle) bool {
		x, y := o.Entity.Position()
		x -= dx
		o.Entity.SetPosition(x, y)
		if w, _ := o.Entity.Size(); x+w < 0 {
			s.doomed = append(s.doomed, id)
		}
		return true
	})

	for _, id := range s.doomed {
		if o, ok := s.items.Get(id); ok {
			o.Entity.Destroy()
			s.items.Del(id)
		}
	}
	return len(s.doomed)
}

// clear destroys every obstacle.
func (s *obstacleSet) clear() {
	s.items.ForEach(func(_ uint32, o *Obstacle) bool {
		o.Entity.Destroy()
		return true
	})
	s.items.Clear()
}

func (s *obstacleSet) len() int {
	return s.items.Len()
}

// snapshot returns the live obstacles in no particular order.
func (s *obstacleSet) snapshot() []Obstacle {
	out := make([]Obstacle, 0, s.items.Len())
	s.items.ForEach(func(_ uint32, o *Obstacle) bool {
		out = append(out, *o)
		return true
	})
	return out
}
