package reminder

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockScheduler records jobs instead of running them.
type MockScheduler struct {
	mock.Mock
}

var _ Scheduler = (*MockScheduler)(nil)

func (m *MockScheduler) ScheduleOnce(name string, at time.Time, task func()) error {
	args := m.Called(name, at, task)
	return args.Error(0)
}
