package service

import (
	"slices"
	"sync"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

// QuestionService keeps the per-user state of an in-flight multiple-choice
// question. State exists only between posing a question and receiving the
// answer; submitting an answer clears it.
type QuestionService struct {
	mu           sync.RWMutex
	states       map[int64]*domain.QuestionState
	pendingGoals map[int64]string
}

func NewQuestionService() *QuestionService {
	return &QuestionService{
		states:       make(map[int64]*domain.QuestionState),
		pendingGoals: make(map[int64]string),
	}
}

func (s *QuestionService) Set(userID int64, state domain.QuestionState) {
	s.mu.Lock()
	s.states[userID] = &state
	s.mu.Unlock()
}

func (s *QuestionService) Get(userID int64) (domain.QuestionState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	if !ok {
		return domain.QuestionState{}, false
	}
	return *state, true
}

func (s *QuestionService) Clear(userID int64) {
	s.mu.Lock()
	delete(s.states, userID)
	s.mu.Unlock()
}

// ToggleOption flips the selection of an option index. Toggling twice
// restores the previous selection. No-op when there is no pending question,
// the question is not multi-select, or the index is out of range.
func (s *QuestionService) ToggleOption(userID int64, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok || !state.IsMultiSelect {
		return
	}
	if index < 0 || index >= len(state.Options) {
		return
	}
	if i := slices.Index(state.SelectedIndices, index); i != -1 {
		state.SelectedIndices = slices.Delete(state.SelectedIndices, i, i+1)
		return
	}
	state.SelectedIndices = append(state.SelectedIndices, index)
}

// SelectedOptions returns the currently selected indices, in selection order.
// Empty for users with no pending question.
func (s *QuestionService) SelectedOptions(userID int64) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	if !ok || state.SelectedIndices == nil {
		return []int{}
	}
	selected := make([]int, len(state.SelectedIndices))
	copy(selected, state.SelectedIndices)
	return selected
}

// SetPendingGoal parks an interview goal while the user picks a provider.
func (s *QuestionService) SetPendingGoal(userID int64, goal string) {
	s.mu.Lock()
	s.pendingGoals[userID] = goal
	s.mu.Unlock()
}

// TakePendingGoal returns and clears the parked interview goal.
func (s *QuestionService) TakePendingGoal(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, ok := s.pendingGoals[userID]
	delete(s.pendingGoals, userID)
	return goal, ok
}
