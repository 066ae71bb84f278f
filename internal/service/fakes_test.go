package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/leave-service/internal/domain"
	"github.com/spec-kit/leave-service/internal/repository"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. A
// single mutex guards users and requests together so Approve keeps the
// same atomicity the real transaction provides.
type fakeStore struct {
	mu       sync.Mutex
	userSeq  int
	leaveSeq int
	users    map[string]*domain.User
	requests map[string]*domain.LeaveRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*domain.User),
		requests: make(map[string]*domain.LeaveRequest),
	}
}

func (s *fakeStore) userRepo() repository.UserRepository   { return fakeUserRepo{s} }
func (s *fakeStore) leaveRepo() repository.LeaveRepository { return fakeLeaveRepo{s} }

func copyUser(u *domain.User) *domain.User {
	cp := *u
	cp.Balances = make(map[domain.LeaveType]int, len(u.Balances))
	for k, v := range u.Balances {
		cp.Balances[k] = v
	}
	return &cp
}

type fakeUserRepo struct{ *fakeStore }

func (f fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	f.userSeq++
	user.ID = fmt.Sprintf("user-%d", f.userSeq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = copyUser(user)
	return nil
}

func (f fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return copyUser(user), nil
}

func (f fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var users []domain.User
	for _, user := range f.users {
		users = append(users, *copyUser(user))
	}
	return users, nil
}

func (f fakeUserRepo) GetBalance(_ context.Context, userID string, leaveType domain.LeaveType) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return 0, nil
	}
	return user.Balances[leaveType], nil
}

type fakeLeaveRepo struct{ *fakeStore }

func (f fakeLeaveRepo) Create(_ context.Context, request *domain.LeaveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leaveSeq++
	request.ID = fmt.Sprintf("leave-%d", f.leaveSeq)
	request.CreatedAt = time.Now()
	cp := *request
	f.requests[request.ID] = &cp
	return nil
}

func (f fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *request
	return &cp, nil
}

func (f fakeLeaveRepo) ListByUser(_ context.Context, userID string, status *domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.LeaveRequest
	for _, request := range f.requests {
		if request.UserID != userID {
			continue
		}
		if status != nil && request.Status != *status {
			continue
		}
		result = append(result, *request)
	}
	return result, nil
}

func (f fakeLeaveRepo) ListAllWithOwner(_ context.Context, status *domain.LeaveStatus) ([]domain.LeaveRequestWithOwner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.LeaveRequestWithOwner
	for _, request := range f.requests {
		if status != nil && request.Status != *status {
			continue
		}
		row := domain.LeaveRequestWithOwner{LeaveRequest: *request}
		if owner, ok := f.users[request.UserID]; ok {
			row.EmployeeName = owner.Name
		}
		result = append(result, row)
	}
	return result, nil
}

func (f fakeLeaveRepo) Approve(_ context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, repository.ErrNotPending
	}
	owner, ok := f.users[request.UserID]
	if !ok || owner.Balances[request.LeaveType] < request.Days {
		return nil, repository.ErrInsufficientBalance
	}
	owner.Balances[request.LeaveType] -= request.Days

	now := time.Now()
	request.Status = domain.LeaveStatusApproved
	request.DecisionBy = &decidedBy
	request.DecisionNote = note
	request.DecidedAt = &now
	cp := *request
	return &cp, nil
}

func (f fakeLeaveRepo) Reject(_ context.Context, id, decidedBy string, note *string) (*domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if request.Status != domain.LeaveStatusPending {
		return nil, repository.ErrNotPending
	}
	now := time.Now()
	request.Status = domain.LeaveStatusRejected
	request.DecisionBy = &decidedBy
	request.DecisionNote = note
	request.DecidedAt = &now
	cp := *request
	return &cp, nil
}

func (f fakeLeaveRepo) DeletePending(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok || request.Status != domain.LeaveStatusPending {
		return repository.ErrNotPending
	}
	delete(f.requests, id)
	return nil
}

func (s *fakeStore) balance(userID string, leaveType domain.LeaveType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return 0
	}
	return user.Balances[leaveType]
}
