package project

import "sync"

// StudentStore holds the current snapshot of one student board.
// Dispatch swaps the whole snapshot, so readers never see a half applied action.
type StudentStore struct {
	mu    sync.RWMutex
	state StudentState
}

func NewStudentStore(initial StudentState) *StudentStore {
	return &StudentStore{state: initial.clone()}
}

// State returns a copy of the current snapshot.
func (s *StudentStore) State() StudentState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Dispatch reduces action over the current snapshot and stores the result.
// build is called under the write lock so it can derive the action from the current state.
func (s *StudentStore) Dispatch(build func(StudentState) StudentAction) (StudentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ReduceStudent(s.state, build(s.state))
	if err != nil {
		return StudentState{}, err
	}
	s.state = next
	return next.clone(), nil
}

// ProfessorStore holds the current snapshot of one professor board.
type ProfessorStore struct {
	mu    sync.RWMutex
	state ProfessorState
}

func NewProfessorStore(initial ProfessorState) *ProfessorStore {
	return &ProfessorStore{state: initial.clone()}
}

// State returns a copy of the current snapshot.
func (s *ProfessorStore) State() ProfessorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *ProfessorStore) Dispatch(action ProfessorAction) (ProfessorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ReduceProfessor(s.state, action)
	if err != nil {
		return ProfessorState{}, err
	}
	s.state = next
	return next.clone(), nil
}
