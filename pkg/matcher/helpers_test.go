package matcher

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// --- stub matchers ---

func passes() Matcher[string] {
	return Func[string](func(string) Result {
		return NewResult(false, "passed", "failed")
	})
}

func fails() Matcher[string] {
	return Func[string](func(string) Result {
		return NewResult(true, "passed", "failed")
	})
}

// mockMatcher records every call to Match.
type mockMatcher struct {
	mock.Mock
}

func (m *mockMatcher) Match(actual string) Result {
	args := m.Called(actual)
	return args.Get(0).(Result)
}

func newMockMatcher(failed bool) *mockMatcher {
	m := &mockMatcher{}
	m.On("Match", mock.Anything).
		Return(NewResult(failed, "passed", "failed"))
	return m
}

// recordingT captures failures reported through TestingT.
type recordingT struct {
	messages  []string
	failedNow int
	helpers   int
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failedNow++
}

func (r *recordingT) Helper() {
	r.helpers++
}
