package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminChecker_IsAdmin(t *testing.T) {
	checker := NewAdminChecker([]int64{1257797619078660096, 772531685438783539})

	testCases := []struct {
		name     string
		id       int64
		expected bool
	}{
		{"first admin", 1257797619078660096, true},
		{"second admin", 772531685438783539, true},
		{"regular user", 42, false},
		{"zero id", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, checker.IsAdmin(tc.id))
		})
	}
}

func TestAdminChecker_EmptyAllowList(t *testing.T) {
	checker := NewAdminChecker(nil)

	assert.Equal(t, 0, checker.Count())
	assert.False(t, checker.IsAdmin(42))
}

func TestAdminChecker_CopiesInput(t *testing.T) {
	ids := []int64{42}
	checker := NewAdminChecker(ids)
	ids[0] = 43

	assert.True(t, checker.IsAdmin(42))
	assert.False(t, checker.IsAdmin(43))
}

func TestAdminChecker_DuplicateIDs(t *testing.T) {
	checker := NewAdminChecker([]int64{42, 42, 7})

	assert.Equal(t, 2, checker.Count())
}
