package curriculum

// Allocator issues identifiers shared by every node kind of one build.
// It is owned by a single builder and is not safe for concurrent use.
type Allocator struct {
	last int64
}

// NewAllocator returns an allocator whose first id is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next identifier.
func (a *Allocator) Next() int64 {
	a.last++
	return a.last
}

// Peek returns the last identifier issued, or 0 if none.
func (a *Allocator) Peek() int64 {
	return a.last
}

// SkipPast moves the allocator so the next id is greater than id. It never
// moves backwards.
func (a *Allocator) SkipPast(id int64) {
	if id > a.last {
		a.last = id
	}
}

// Reset starts a fresh identifier space.
func (a *Allocator) Reset() {
	a.last = 0
}
