// Package require wraps testify's require package so tests across this
// module call a single, local assertion surface rather than importing
// testify directly everywhere.
package require

import (
	"fmt"

	"github.com/stretchr/testify/require"
)

// TestingT is the subset of *testing.T these helpers need.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

func Equal(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(asTestifyT(t), expected, actual, msgAndArgs...)
}

func NotEqual(t TestingT, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotEqual(asTestifyT(t), expected, actual, msgAndArgs...)
}

func True(t TestingT, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(asTestifyT(t), value, msgAndArgs...)
}

func False(t TestingT, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.False(asTestifyT(t), value, msgAndArgs...)
}

func NoError(t TestingT, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(asTestifyT(t), err, msgAndArgs...)
}

func Error(t TestingT, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(asTestifyT(t), err, msgAndArgs...)
}

func ErrorIs(t TestingT, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	require.ErrorIs(asTestifyT(t), err, target, msgAndArgs...)
}

func Nil(t TestingT, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Nil(asTestifyT(t), object, msgAndArgs...)
}

func NotNil(t TestingT, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(asTestifyT(t), object, msgAndArgs...)
}

func Zero(t TestingT, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Zero(asTestifyT(t), object, msgAndArgs...)
}

func Len(t TestingT, object interface{}, length int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(asTestifyT(t), object, length, msgAndArgs...)
}

func Contains(t TestingT, s, contains interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Contains(asTestifyT(t), s, contains, msgAndArgs...)
}

// CapturePanic runs fn and converts a panic, if any, into an error rather
// than letting it propagate. Returns nil if fn didn't panic.
func CapturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	fn()
	return
}

// asTestifyT adapts our minimal TestingT to testify's require.TestingT,
// which additionally wants an Errorf method; testify only calls Errorf
// when an assertion fails and it hasn't already called FailNow, which
// doesn't happen on this path, so a Fatalf-backed shim is sufficient.
func asTestifyT(t TestingT) require.TestingT {
	return &shim{t}
}

type shim struct {
	TestingT
}

func (s *shim) Errorf(format string, args ...interface{}) {
	s.Fatalf(format, args...)
}

func (s *shim) FailNow() {
	s.Fatalf("")
}
