package progression

import "sync"

// Registry holds the active in-memory attempts, keyed by interview ID. It
// replaces ambient per-request session globals with one explicit object owned
// by the process. An abandoned attempt simply stays here unfinalized until
// evicted by a restart; nothing partial is ever persisted.
type Registry struct {
	mu     sync.Mutex
	active map[uint]*Progression
}

func NewRegistry() *Registry {
	return &Registry{active: make(map[uint]*Progression)}
}

// Get returns the active attempt for the interview, if any.
func (r *Registry) Get(interviewID uint) (*Progression, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.active[interviewID]
	return p, ok
}

// Put registers an attempt, replacing any previous one for the interview.
func (r *Registry) Put(p *Progression) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active[p.InterviewID()] = p
}

// Remove drops the attempt once it has been finalized (or abandoned).
func (r *Registry) Remove(interviewID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, interviewID)
}
